package request

// IsJoinedRequest 查询是否已加入房间
// 使用位置:
//   - internal/handler/room_handler.go: IsJoinedHandler
type IsJoinedRequest struct {
	RoomId string `json:"room_id" binding:"required"`
}
