package request

// LeaveRoomRequest 离开房间请求
// 使用位置:
//   - internal/handler/room_handler.go: LeaveRoomHandler
type LeaveRoomRequest struct {
	RoomId string `json:"room_id" binding:"required"`
}
