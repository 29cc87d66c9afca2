package room

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"linkup_room_server/internal/dto/request"
	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/errorx"
)

// recordingNotifier 记录推送次数的通知桩
type recordingNotifier struct {
	mu    sync.Mutex
	count int
	last  []model.Room
}

func (n *recordingNotifier) NotifyRefreshed(ctx context.Context, rooms []model.Room) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
	n.last = rooms
	return nil
}

func newTestService(gw *fakeGateway) (*Service, *recordingNotifier) {
	notifier := &recordingNotifier{}
	store := NewStore(gw)
	return NewRoomService(gw, store, notifier), notifier
}

func TestListRoomsLazyLoadAndFilter(t *testing.T) {
	gw := &fakeGateway{rooms: sampleRooms()}
	svc, _ := newTestService(gw)

	resp, err := svc.ListRooms(context.Background(), request.RoomListRequest{City: "台北市"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 {
		t.Fatalf("expect 2 rooms in 台北市, got %d", resp.Total)
	}
	// 已加载后列表读取不再触发后端调用
	if _, err := svc.ListRooms(context.Background(), request.RoomListRequest{}); err != nil {
		t.Fatal(err)
	}
	if calls := atomic.LoadInt32(&gw.listCalls); calls != 1 {
		t.Fatalf("list should hit snapshot, backend calls = %d", calls)
	}
}

func TestGetRoomDetailRoles(t *testing.T) {
	detail := &model.Room{
		Id: "1", OwnerId: "U1", People: 4,
		Members: []model.Member{{Id: "U2", Name: "阿明"}},
	}
	gw := &fakeGateway{detail: map[string]*model.Room{"1": detail}}
	svc, _ := newTestService(gw)

	tests := []struct {
		viewerId  string
		wantRole  string
		wantJoin  bool
		wantSeats int
	}{
		{"U1", "Owner", true, 2},
		{"U2", "Member", true, 2},
		{"U9", "Visitor", false, 2},
		{"", "Visitor", false, 2},
	}
	for _, tt := range tests {
		resp, err := svc.GetRoomDetail(context.Background(), "1", tt.viewerId)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Role != tt.wantRole || resp.IsJoined != tt.wantJoin || resp.OpenSeats != tt.wantSeats {
			t.Errorf("viewer %q: got (%s, %v, %d), want (%s, %v, %d)",
				tt.viewerId, resp.Role, resp.IsJoined, resp.OpenSeats,
				tt.wantRole, tt.wantJoin, tt.wantSeats)
		}
	}
}

// 未登录的变更操作在发起后端请求前就被拒绝
func TestMutationsRequireLogin(t *testing.T) {
	gw := &fakeGateway{}
	svc, notifier := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, request.CreateRoomRequest{}, ""); errorx.GetCode(err) != errorx.CodeUnauthGateway {
		t.Errorf("create without login: got %v", err)
	}
	if err := svc.JoinRoom(ctx, "1", ""); errorx.GetCode(err) != errorx.CodeUnauthGateway {
		t.Errorf("join without login: got %v", err)
	}
	if err := svc.LeaveRoom(ctx, "1", ""); errorx.GetCode(err) != errorx.CodeUnauthGateway {
		t.Errorf("leave without login: got %v", err)
	}
	if err := svc.DeleteRoom(ctx, "1", ""); errorx.GetCode(err) != errorx.CodeUnauthGateway {
		t.Errorf("delete without login: got %v", err)
	}
	if calls := atomic.LoadInt32(&gw.listCalls); calls != 0 {
		t.Fatalf("rejected mutations must not touch backend, calls = %d", calls)
	}
	if notifier.count != 0 {
		t.Fatalf("rejected mutations must not push, count = %d", notifier.count)
	}
}

// 建房成功后触发刷新与推送，数值字段缺省补预设值
func TestCreateRoomSuccess(t *testing.T) {
	gw := &fakeGateway{createdId: "99", rooms: []model.Room{{Id: "99"}}}
	svc, notifier := newTestService(gw)

	resp, err := svc.CreateRoom(context.Background(), request.CreateRoomRequest{City: "台北市"}, "U1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.RoomId != "99" {
		t.Fatalf("expect room id 99, got %q", resp.RoomId)
	}
	if calls := atomic.LoadInt32(&gw.listCalls); calls != 1 {
		t.Fatalf("expect refresh after create, calls = %d", calls)
	}
	if notifier.count != 1 {
		t.Fatalf("expect 1 push after create, got %d", notifier.count)
	}
}

// 后端拒绝建房时不触发刷新，本地快照保持原样
func TestCreateRoomFailureNoRefresh(t *testing.T) {
	gw := &fakeGateway{createErr: errorx.ErrBackendReject}
	svc, notifier := newTestService(gw)

	if _, err := svc.CreateRoom(context.Background(), request.CreateRoomRequest{}, "U1"); err == nil {
		t.Fatal("expect create error")
	}
	if calls := atomic.LoadInt32(&gw.listCalls); calls != 0 {
		t.Fatalf("failed create must not refresh, calls = %d", calls)
	}
	if notifier.count != 0 {
		t.Fatalf("failed create must not push, count = %d", notifier.count)
	}
}

// 删除成功后快照刷新，被删房间从列表消失
func TestDeleteRoomRefreshesSnapshot(t *testing.T) {
	gw := &fakeGateway{rooms: []model.Room{{Id: "1"}, {Id: "2"}}}
	svc, _ := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.ListRooms(ctx, request.RoomListRequest{}); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteRoom(ctx, "1", "U1"); err != nil {
		t.Fatal(err)
	}
	resp, err := svc.ListRooms(ctx, request.RoomListRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 || resp.Rooms[0].Id != "2" {
		t.Fatalf("deleted room still visible: %v", resp.Rooms)
	}
}

// 删除成功后详情返回"房间不存在"
func TestDeleteRoomDetailBecomesNotFound(t *testing.T) {
	gw := &fakeGateway{
		rooms:  []model.Room{{Id: "5", OwnerId: "U1"}},
		detail: map[string]*model.Room{"5": {Id: "5", OwnerId: "U1", People: 4}},
	}
	svc, _ := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.GetRoomDetail(ctx, "5", ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteRoom(ctx, "5", "U1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetRoomDetail(ctx, "5", ""); !errorx.IsNotFound(err) {
		t.Fatalf("expect not found after delete, got %v", err)
	}
}

// 加入成功后重新拉详情：成员名单包含新成员，身份升级为 Member
func TestJoinRoomThenDetailShowsMember(t *testing.T) {
	gw := &fakeGateway{
		detail: map[string]*model.Room{"7": {Id: "7", OwnerId: "U1", People: 4}},
	}
	svc, _ := newTestService(gw)
	ctx := context.Background()

	if err := svc.JoinRoom(ctx, "7", "u9"); err != nil {
		t.Fatal(err)
	}
	resp, err := svc.GetRoomDetail(ctx, "7", "u9")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range resp.Members {
		if m.Id == "u9" {
			found = true
		}
	}
	if !found {
		t.Fatalf("joined member missing from detail: %v", resp.Members)
	}
	if resp.Role != "Member" || !resp.IsJoined {
		t.Fatalf("expect Member after join, got %s", resp.Role)
	}
}

// 变更成功但刷新失败：变更结果照常返回，旧快照保留
func TestMutationSucceedsWhenRefreshFails(t *testing.T) {
	gw := &fakeGateway{rooms: []model.Room{{Id: "1"}}}
	svc, notifier := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.ListRooms(ctx, request.RoomListRequest{}); err != nil {
		t.Fatal(err)
	}
	gw.mu.Lock()
	gw.listErr = errorx.ErrNetworkFailure
	gw.mu.Unlock()

	if err := svc.JoinRoom(ctx, "1", "U2"); err != nil {
		t.Fatalf("join should succeed even if refresh fails: %v", err)
	}
	if notifier.count != 0 {
		t.Fatalf("failed refresh must not push, count = %d", notifier.count)
	}
}

func TestIsJoined(t *testing.T) {
	gw := &fakeGateway{joined: true}
	svc, _ := newTestService(gw)

	resp, err := svc.IsJoined(context.Background(), "1", "U1")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.IsJoined {
		t.Fatal("expect joined = true")
	}
	if _, err := svc.IsJoined(context.Background(), "1", ""); errorx.GetCode(err) != errorx.CodeUnauthGateway {
		t.Fatalf("anonymous isJoined should be rejected, got %v", err)
	}
}
