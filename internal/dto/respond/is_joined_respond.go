package respond

// IsJoinedRespond 是否已加入房间
// 使用位置:
//   - internal/service/room/service.go: IsJoined
type IsJoinedRespond struct {
	IsJoined bool `json:"is_joined"`
}
