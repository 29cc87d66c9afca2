package request

// JoinRoomRequest 加入房间请求
// 使用位置:
//   - internal/handler/room_handler.go: JoinRoomHandler
type JoinRoomRequest struct {
	RoomId string `json:"room_id" binding:"required"`
}
