// Package room 实现房间数据同步核心
// 读路径：后端整表快照 → 城市/筛选派生视图；写路径：透传后端，成功后刷新快照
package room

import (
	"context"
	"time"

	"linkup_room_server/internal/dto/request"
	"linkup_room_server/internal/dto/respond"
	"linkup_room_server/internal/gateway/roomapi"
	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/constants"
	"linkup_room_server/pkg/errorx"

	"go.uber.org/zap"
)

// RefreshNotifier 快照刷新成功后的通知出口（由推送层实现）
// 定义在本包避免反向依赖推送实现
type RefreshNotifier interface {
	NotifyRefreshed(ctx context.Context, rooms []model.Room) error
}

// Service 房间服务实现
type Service struct {
	gw       roomapi.RoomGateway
	store    *Store
	notifier RefreshNotifier // 可为 nil（未启用推送）
}

// NewRoomService 创建房间服务实例
func NewRoomService(gw roomapi.RoomGateway, store *Store, notifier RefreshNotifier) *Service {
	return &Service{
		gw:       gw,
		store:    store,
		notifier: notifier,
	}
}

// ListRooms 按城市与筛选条件返回可见房间列表
// 快照未加载时先做一次刷新；已加载时直接用快照现算视图，不触发后端调用
func (s *Service) ListRooms(ctx context.Context, req request.RoomListRequest) (*respond.RoomListRespond, error) {
	if !s.store.Loaded() {
		if err := s.store.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	filters := Filters{
		Rounds:   req.Rounds,
		Flower:   req.Flower,
		DiceRule: req.DiceRule,
		Ligu:     req.Ligu,
	}
	visible := VisibleRooms(s.store.Snapshot(), req.City, filters)
	return &respond.RoomListRespond{
		Rooms:       visible,
		Total:       len(visible),
		RefreshedAt: s.store.LoadedAt().Format(time.RFC3339),
	}, nil
}

// Refresh 强制从后端整表刷新快照（下拉刷新入口）
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.store.Refresh(ctx); err != nil {
		return err
	}
	s.notifyRefreshed(ctx)
	return nil
}

// GetRoomDetail 拉取房间详情
// 详情永远现拉现算，不走快照：角色判定和空位计算必须基于权威成员名单
func (s *Service) GetRoomDetail(ctx context.Context, roomId, viewerId string) (*respond.RoomDetailRespond, error) {
	if roomId == "" {
		return nil, errorx.ErrInvalidParam
	}
	detail, err := s.gw.GetRoomDetail(ctx, roomId)
	if err != nil {
		return nil, err
	}
	members := detail.Members
	if members == nil {
		members = []model.Member{}
	}
	role := ResolveRole(*detail, members, viewerId)
	return &respond.RoomDetailRespond{
		Room:      *detail,
		Members:   members,
		Role:      role.String(),
		IsJoined:  role != RoleVisitor,
		OpenSeats: OpenSeats(*detail, members),
	}, nil
}

// GetMembers 拉取房间成员名单
func (s *Service) GetMembers(ctx context.Context, roomId string) ([]model.Member, error) {
	if roomId == "" {
		return nil, errorx.ErrInvalidParam
	}
	return s.gw.GetMembers(ctx, roomId)
}

// CreateRoom 创建房间，发起者即房主
// 未登录直接拒绝，不发后端请求；数值字段缺省补预设值；
// 后端失败时不触发刷新，本地快照保持原样
func (s *Service) CreateRoom(ctx context.Context, req request.CreateRoomRequest, userId string) (*respond.CreateRoomRespond, error) {
	if userId == "" {
		return nil, errorx.ErrUnauthenticated
	}
	draft := roomapi.RoomDraft{
		OwnerId:   userId,
		People:    req.People,
		Flower:    req.Flower,
		Date:      req.Date,
		Time:      req.Time,
		City:      req.City,
		Location:  req.Location,
		Rounds:    req.Rounds,
		DiceRule:  req.DiceRule,
		Ligu:      req.Ligu,
		BasePoint: req.BasePoint,
		TaiPoint:  req.TaiPoint,
		Note:      req.Note,
	}
	if draft.People == 0 {
		draft.People = constants.DEFAULT_PEOPLE
	}
	if draft.Rounds == 0 {
		draft.Rounds = constants.DEFAULT_ROUNDS
	}
	if draft.BasePoint == 0 {
		draft.BasePoint = constants.DEFAULT_BASE_POINT
	}
	if draft.TaiPoint == 0 {
		draft.TaiPoint = constants.DEFAULT_TAI_POINT
	}

	roomId, err := s.gw.CreateRoom(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.refreshAfterMutation(ctx, "create_room")
	return &respond.CreateRoomRespond{RoomId: roomId}, nil
}

// JoinRoom 加入房间
// join 在后端不保证幂等，调用方应在成功后重新拉详情确认成员状态
func (s *Service) JoinRoom(ctx context.Context, roomId, userId string) error {
	if userId == "" {
		return errorx.ErrUnauthenticated
	}
	if roomId == "" {
		return errorx.ErrInvalidParam
	}
	if err := s.gw.JoinRoom(ctx, roomId, userId); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx, "join_room")
	return nil
}

// LeaveRoom 离开房间
func (s *Service) LeaveRoom(ctx context.Context, roomId, userId string) error {
	if userId == "" {
		return errorx.ErrUnauthenticated
	}
	if roomId == "" {
		return errorx.ErrInvalidParam
	}
	if err := s.gw.LeaveRoom(ctx, roomId, userId); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx, "leave_room")
	return nil
}

// DeleteRoom 删除房间
// 是否有删除权限由后端裁决，这里不做房主校验
func (s *Service) DeleteRoom(ctx context.Context, roomId, userId string) error {
	if userId == "" {
		return errorx.ErrUnauthenticated
	}
	if roomId == "" {
		return errorx.ErrInvalidParam
	}
	if err := s.gw.DeleteRoom(ctx, roomId); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx, "delete_room")
	return nil
}

// IsJoined 查询用户是否已在房间中
func (s *Service) IsJoined(ctx context.Context, roomId, userId string) (*respond.IsJoinedRespond, error) {
	if userId == "" {
		return nil, errorx.ErrUnauthenticated
	}
	if roomId == "" {
		return nil, errorx.ErrInvalidParam
	}
	joined, err := s.gw.IsJoined(ctx, roomId, userId)
	if err != nil {
		return nil, err
	}
	return &respond.IsJoinedRespond{IsJoined: joined}, nil
}

// refreshAfterMutation 变更成功后的快照刷新
// 变更本身已经成功，刷新失败只记日志不上抛，旧快照等下一次刷新自愈
func (s *Service) refreshAfterMutation(ctx context.Context, op string) {
	if err := s.store.Refresh(ctx); err != nil {
		zap.L().Warn("refresh after mutation failed",
			zap.String("op", op), zap.Error(err))
		return
	}
	s.notifyRefreshed(ctx)
}

func (s *Service) notifyRefreshed(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyRefreshed(ctx, s.store.Snapshot()); err != nil {
		zap.L().Warn("notify refreshed failed", zap.Error(err))
	}
}
