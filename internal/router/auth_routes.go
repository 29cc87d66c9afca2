// Package router 提供 HTTP 路由注册
// 本文件定义认证相关的路由
package router

import (
	"github.com/gin-gonic/gin"

	"linkup_room_server/internal/infrastructure/middleware"
)

// RegisterAuthRoutes 注册认证相关路由
// login/refresh 为公开接口；logout/me 需要 Access Token
func (rt *Router) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", rt.handlers.Auth.Login)
		auth.POST("/refresh", rt.handlers.Auth.RefreshToken)
	}

	authed := rg.Group("/auth", middleware.JWTAuth())
	{
		authed.POST("/logout", rt.handlers.Auth.Logout)
		authed.GET("/me", rt.handlers.Auth.Me)
	}
}
