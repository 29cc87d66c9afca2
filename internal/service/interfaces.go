// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"linkup_room_server/internal/dto/request"
	"linkup_room_server/internal/dto/respond"
	"linkup_room_server/internal/model"
)

// RoomService 房间业务接口
// 读路径走内存快照（派生视图），写路径全部透传给房间后端，
// 变更成功后刷新快照——本服务自身从不修改房间数据
type RoomService interface {
	// ListRooms 按城市与筛选条件返回可见房间列表
	ListRooms(ctx context.Context, req request.RoomListRequest) (*respond.RoomListRespond, error)
	// Refresh 强制从后端整表刷新快照（下拉刷新）
	Refresh(ctx context.Context) error
	// GetRoomDetail 拉取房间详情并现算观察者角色与空位
	GetRoomDetail(ctx context.Context, roomId, viewerId string) (*respond.RoomDetailRespond, error)
	// GetMembers 拉取房间成员名单
	GetMembers(ctx context.Context, roomId string) ([]model.Member, error)
	// CreateRoom 创建房间（发起者即房主）
	CreateRoom(ctx context.Context, req request.CreateRoomRequest, userId string) (*respond.CreateRoomRespond, error)
	// JoinRoom 加入房间
	JoinRoom(ctx context.Context, roomId, userId string) error
	// LeaveRoom 离开房间
	LeaveRoom(ctx context.Context, roomId, userId string) error
	// DeleteRoom 删除房间
	DeleteRoom(ctx context.Context, roomId, userId string) error
	// IsJoined 查询用户是否已在房间中
	IsJoined(ctx context.Context, roomId, userId string) (*respond.IsJoinedRespond, error)
}

// AuthService 认证业务接口
// 处理 Token 签发、刷新与单点互踢
type AuthService interface {
	// Login 登录并签发双 Token
	Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 刷新双 Token（旧 Refresh Token 即刻作废）
	RefreshToken(ctx context.Context, refreshToken string) (*respond.RefreshTokenRespond, error)
	// Logout 登出，清除服务端的 Token ID
	Logout(ctx context.Context, userId string) error
	// ValidateTokenID 验证 Refresh Token 携带的 Token ID 是否仍有效
	ValidateTokenID(ctx context.Context, userId, tokenId string) (bool, error)
}
