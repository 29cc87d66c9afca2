// Package roomapi 封装对遗留房间后端（PHP/JSON 网关）的全部远程调用
// 这里是唯一允许接触后端线上格式的地方：id 的字符串/数字两种编码、
// 布尔值的 0/1 编码都在本包入口处规整完毕，核心其余部分只见内部类型
package roomapi

import (
	"context"

	"linkup_room_server/internal/model"
)

// RoomDraft 建房草稿，由后端分配房间 id
// 本核心不做任何字段校验（校验在接口层或后端完成）
type RoomDraft struct {
	OwnerId   string
	People    int
	Flower    bool
	Date      string
	Time      string
	City      string
	Location  string
	Rounds    int
	DiceRule  bool
	Ligu      bool
	BasePoint int
	TaiPoint  int
	Note      string
}

// RoomGateway 房间后端接口
// 所有方法以 errorx 错误码表达失败结果，绝不跨边界抛出裸错误：
// 网络/解析失败 → CodeNetworkFailure，success != true → CodeBackendReject，
// 详情查无此房 → CodeNotFound
//
// 幂等性约定：delete/leave 天然幂等；join 不保证幂等，
// 调用方必须通过重新拉取详情来确认成员状态，而不是相信 join 的返回值
type RoomGateway interface {
	// ListRooms 获取全部房间列表（不含成员明细）
	ListRooms(ctx context.Context) ([]model.Room, error)
	// GetRoomDetail 获取单个房间（含成员列表）
	GetRoomDetail(ctx context.Context, roomId string) (*model.Room, error)
	// GetMembers 获取房间成员列表
	GetMembers(ctx context.Context, roomId string) ([]model.Member, error)
	// CreateRoom 创建房间，返回后端分配的房间 id（后端旧版本可能不返回 id，此时为空串）
	CreateRoom(ctx context.Context, draft RoomDraft) (string, error)
	// DeleteRoom 删除房间
	DeleteRoom(ctx context.Context, roomId string) error
	// JoinRoom 加入房间
	JoinRoom(ctx context.Context, roomId, userId string) error
	// LeaveRoom 离开房间
	LeaveRoom(ctx context.Context, roomId, userId string) error
	// IsJoined 查询用户是否已在房间中
	IsJoined(ctx context.Context, roomId, userId string) (bool, error)
}
