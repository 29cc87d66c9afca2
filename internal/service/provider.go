// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	myredis "linkup_room_server/internal/dao/redis"
	"linkup_room_server/internal/gateway/roomapi"
	"linkup_room_server/internal/service/auth"
	"linkup_room_server/internal/service/room"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Room RoomService // 房间 Service
	Auth AuthService // 认证 Service
}

// NewServices 创建并注入所有 Service 实例
// gw: 房间后端网关
// store: 房间快照存储
// notifier: 快照刷新通知出口（推送层，可为 nil）
// cache: 缓存服务
// refreshTTLHours: Refresh Token 有效期（小时）
func NewServices(gw roomapi.RoomGateway, store *room.Store, notifier room.RefreshNotifier,
	cache myredis.AsyncCacheService, refreshTTLHours int) *Services {
	return &Services{
		Room: room.NewRoomService(gw, store, notifier),
		Auth: auth.NewAuthService(cache, refreshTTLHours),
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Room.ListRooms() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
func InitServices(s *Services) {
	Svc = s
}
