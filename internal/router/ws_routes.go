// Package router 提供 HTTP 路由注册
// 本文件定义 WebSocket 推送相关的路由
package router

import (
	"github.com/gin-gonic/gin"

	"linkup_room_server/internal/infrastructure/middleware"
)

// RegisterWebSocketRoutes 注册 WebSocket 相关路由
// 推送连接对游客开放（可选认证），登出接口同理
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	ws := rg.Group("", middleware.OptionalAuth())
	{
		// 连接入口，请求示例: ws://host:port/wss?client_id=U123456789
		ws.GET("/wss", rt.handlers.Ws.WsFeedHandler)
		ws.POST("/wss/logout", rt.handlers.Ws.WsLogoutHandler)
	}
}
