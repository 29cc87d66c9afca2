package request

// DeleteRoomRequest 删除房间请求
// 使用位置:
//   - internal/handler/room_handler.go: DeleteRoomHandler
type DeleteRoomRequest struct {
	RoomId string `json:"room_id" binding:"required"`
}
