// Package handler 提供 HTTP 请求处理器
// 本文件处理房间相关的 API 请求
package handler

import (
	"linkup_room_server/internal/dto/request"
	"linkup_room_server/internal/infrastructure/middleware"
	"linkup_room_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler 房间请求处理器
// 通过构造函数注入 RoomService，遵循依赖倒置原则
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler 创建房间处理器实例
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// RoomList 房间列表
// GET /room/list?city=台北市&rounds=8&rounds=16&flower=true
// 查询参数: request.RoomListRequest
// 响应: respond.RoomListRespond
func (h *RoomHandler) RoomList(c *gin.Context) {
	var req request.RoomListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.roomSvc.ListRooms(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshRooms 强制刷新房间快照（下拉刷新）
// POST /room/refresh
func (h *RoomHandler) RefreshRooms(c *gin.Context) {
	if err := h.roomSvc.Refresh(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RoomDetail 房间详情（游客可访问，带 Token 则附带角色信息）
// GET /room/detail?room_id=123
// 响应: respond.RoomDetailRespond
func (h *RoomHandler) RoomDetail(c *gin.Context) {
	roomId := c.Query("room_id")
	viewerId := middleware.CurrentUserId(c)
	data, err := h.roomSvc.GetRoomDetail(c.Request.Context(), roomId, viewerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RoomMembers 房间成员列表
// GET /room/members?room_id=123
// 响应: []model.Member
func (h *RoomHandler) RoomMembers(c *gin.Context) {
	roomId := c.Query("room_id")
	data, err := h.roomSvc.GetMembers(c.Request.Context(), roomId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateRoom 创建房间
// POST /room/create
// 请求体: request.CreateRoomRequest
// 响应: respond.CreateRoomRespond
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req request.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.roomSvc.CreateRoom(c.Request.Context(), req, middleware.CurrentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// JoinRoom 加入房间
// POST /room/join
// 请求体: request.JoinRoomRequest
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req request.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.roomSvc.JoinRoom(c.Request.Context(), req.RoomId, middleware.CurrentUserId(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// LeaveRoom 离开房间
// POST /room/leave
// 请求体: request.LeaveRoomRequest
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	var req request.LeaveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.roomSvc.LeaveRoom(c.Request.Context(), req.RoomId, middleware.CurrentUserId(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteRoom 删除房间
// POST /room/delete
// 请求体: request.DeleteRoomRequest
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	var req request.DeleteRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.roomSvc.DeleteRoom(c.Request.Context(), req.RoomId, middleware.CurrentUserId(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// IsJoined 查询是否已加入房间
// POST /room/isJoined
// 请求体: request.IsJoinedRequest
// 响应: respond.IsJoinedRespond
func (h *RoomHandler) IsJoined(c *gin.Context) {
	var req request.IsJoinedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.roomSvc.IsJoined(c.Request.Context(), req.RoomId, middleware.CurrentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
