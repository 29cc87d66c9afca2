package room

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"linkup_room_server/internal/gateway/roomapi"
	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/errorx"
)

// fakeGateway 可编程的后端桩实现
type fakeGateway struct {
	mu        sync.Mutex
	rooms     []model.Room
	listErr   error
	listCalls int32
	listDelay time.Duration

	detail     map[string]*model.Room
	detailErr  error
	createdId  string
	createErr  error
	joinErr    error
	leaveErr   error
	deleteErr  error
	joined     bool
	membersErr error
}

func (f *fakeGateway) ListRooms(ctx context.Context) ([]model.Room, error) {
	atomic.AddInt32(&f.listCalls, 1)
	if f.listDelay > 0 {
		time.Sleep(f.listDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Room, len(f.rooms))
	copy(out, f.rooms)
	return out, nil
}

func (f *fakeGateway) GetRoomDetail(ctx context.Context, roomId string) (*model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	if r, ok := f.detail[roomId]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, errorx.ErrRoomNotFound
}

func (f *fakeGateway) GetMembers(ctx context.Context, roomId string) ([]model.Member, error) {
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	if r, ok := f.detail[roomId]; ok {
		return r.Members, nil
	}
	return []model.Member{}, nil
}

func (f *fakeGateway) CreateRoom(ctx context.Context, draft roomapi.RoomDraft) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.createdId, nil
}

func (f *fakeGateway) DeleteRoom(ctx context.Context, roomId string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rooms[:0]
	for _, r := range f.rooms {
		if r.Id != roomId {
			kept = append(kept, r)
		}
	}
	f.rooms = kept
	delete(f.detail, roomId)
	return nil
}

func (f *fakeGateway) JoinRoom(ctx context.Context, roomId, userId string) error {
	if f.joinErr != nil {
		return f.joinErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.detail[roomId]; ok {
		r.Members = append(r.Members, model.Member{Id: userId})
	}
	return nil
}

func (f *fakeGateway) LeaveRoom(ctx context.Context, roomId, userId string) error {
	return f.leaveErr
}

func (f *fakeGateway) IsJoined(ctx context.Context, roomId, userId string) (bool, error) {
	return f.joined, nil
}

func TestStoreRefreshReplacesSnapshot(t *testing.T) {
	gw := &fakeGateway{rooms: []model.Room{{Id: "1"}, {Id: "2"}}}
	store := NewStore(gw)

	if store.Loaded() {
		t.Fatal("store should not be loaded before first refresh")
	}
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !store.Loaded() {
		t.Fatal("store should be loaded after refresh")
	}
	if got := store.Snapshot(); len(got) != 2 {
		t.Fatalf("expect 2 rooms, got %d", len(got))
	}

	// 后端数据变化后再次刷新，快照整体替换
	gw.mu.Lock()
	gw.rooms = []model.Room{{Id: "3"}}
	gw.mu.Unlock()
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := store.Snapshot()
	if len(got) != 1 || got[0].Id != "3" {
		t.Fatalf("snapshot not replaced wholesale: %v", got)
	}
}

// 刷新失败必须保留旧快照，宁可陈旧不可清空
func TestStoreRefreshFailureKeepsStale(t *testing.T) {
	gw := &fakeGateway{rooms: []model.Room{{Id: "1"}}}
	store := NewStore(gw)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	gw.mu.Lock()
	gw.listErr = errors.New("backend down")
	gw.mu.Unlock()
	if err := store.Refresh(context.Background()); err == nil {
		t.Fatal("expect refresh error")
	}
	got := store.Snapshot()
	if len(got) != 1 || got[0].Id != "1" {
		t.Fatalf("stale snapshot lost: %v", got)
	}
	if !store.Loaded() {
		t.Fatal("loaded flag should survive a failed refresh")
	}
}

// 并发刷新被合并为一次后端调用，等待者共享结果
func TestStoreRefreshCoalesced(t *testing.T) {
	gw := &fakeGateway{rooms: []model.Room{{Id: "1"}}, listDelay: 50 * time.Millisecond}
	store := NewStore(gw)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Refresh(context.Background()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if calls := atomic.LoadInt32(&gw.listCalls); calls != 1 {
		t.Fatalf("expect 1 backend call, got %d", calls)
	}
}

// 快照的读取方拿到的是副本，改写不影响存储
func TestStoreSnapshotIsCopy(t *testing.T) {
	gw := &fakeGateway{rooms: []model.Room{{Id: "1", City: "台北市"}}}
	store := NewStore(gw)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap := store.Snapshot()
	snap[0].City = "高雄市"
	if store.Snapshot()[0].City != "台北市" {
		t.Fatal("snapshot mutation leaked into store")
	}
}
