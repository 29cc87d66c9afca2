// Package router 提供 HTTP 路由注册
// 本文件定义房间相关的路由
package router

import (
	"github.com/gin-gonic/gin"

	"linkup_room_server/internal/infrastructure/middleware"
)

// RegisterRoomRoutes 注册房间相关路由
// 列表/详情/成员对游客开放（详情带可选认证，登录后附带角色信息）；
// 所有变更操作需要 Access Token
func (rt *Router) RegisterRoomRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/room", middleware.OptionalAuth())
	{
		public.GET("/list", rt.handlers.Room.RoomList)
		public.GET("/detail", rt.handlers.Room.RoomDetail)
		public.GET("/members", rt.handlers.Room.RoomMembers)
	}

	authed := rg.Group("/room", middleware.JWTAuth())
	{
		authed.POST("/refresh", rt.handlers.Room.RefreshRooms)
		authed.POST("/create", rt.handlers.Room.CreateRoom)
		authed.POST("/join", rt.handlers.Room.JoinRoom)
		authed.POST("/leave", rt.handlers.Room.LeaveRoom)
		authed.POST("/delete", rt.handlers.Room.DeleteRoom)
		authed.POST("/isJoined", rt.handlers.Room.IsJoined)
	}
}
