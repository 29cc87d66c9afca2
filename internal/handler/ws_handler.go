// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 推送连接相关的 API 请求
package handler

import (
	"net/http"

	"linkup_room_server/internal/infrastructure/middleware"
	"linkup_room_server/internal/service/feed"
	"linkup_room_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WsHandler WebSocket 请求处理器
type WsHandler struct{}

// NewWsHandler 创建 WebSocket 处理器实例
func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

// WsFeedHandler 建立房间推送连接（升级 HTTP 连接为 WebSocket）
// GET /wss?client_id=U123456789
// 已登录用户用自己的 user_id 做连接标识；游客分配随机标识
// 连接建立后按默认视角（全台、无筛选）下发一次当前快照，
// 之后每次快照刷新或客户端切换视角时下发新的可见列表
func (h *WsHandler) WsFeedHandler(c *gin.Context) {
	clientId := middleware.CurrentUserId(c)
	if clientId == "" {
		clientId = c.Query("client_id")
	}
	if clientId == "" {
		// 游客连接：分配一次性标识
		clientId = "guest_" + uuid.NewString()
	}
	feed.NewClientInit(c, clientId)
}

// WsLogoutHandler 断开推送连接
// POST /wss/logout?client_id=xxx
func (h *WsHandler) WsLogoutHandler(c *gin.Context) {
	clientId := middleware.CurrentUserId(c)
	if clientId == "" {
		clientId = c.Query("client_id")
	}
	if clientId == "" {
		zap.L().Error("clientId获取失败")
		c.JSON(http.StatusOK, gin.H{
			"code": errorx.CodeInvalidParam,
			"msg":  "clientId获取失败",
		})
		return
	}
	if err := feed.ClientLogout(clientId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
