package respond

// CreateRoomRespond 建房响应
// 后端旧版本可能不返回房间 id，此时 RoomId 为空串
// 使用位置:
//   - internal/service/room/service.go: CreateRoom
type CreateRoomRespond struct {
	RoomId string `json:"room_id"`
}
