// Package router 提供 HTTP 路由注册
// 本文件定义路由管理器，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"linkup_room_server/internal/handler"
)

// Router 路由管理器
// 持有 Handler 聚合实例，各子模块的路由注册方法定义在各自的文件中
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用，按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	root := r.Group("")
	rt.RegisterAuthRoutes(root)      // 认证路由
	rt.RegisterRoomRoutes(root)      // 房间路由
	rt.RegisterWebSocketRoutes(root) // WebSocket 推送路由
}
