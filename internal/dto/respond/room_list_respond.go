package respond

import "linkup_room_server/internal/model"

// RoomListRespond 房间列表响应
// Rooms 已按观察者的城市与筛选条件过滤
// 使用位置:
//   - internal/service/room/service.go: ListRooms
type RoomListRespond struct {
	Rooms       []model.Room `json:"rooms"`
	Total       int          `json:"total"`
	RefreshedAt string       `json:"refreshed_at,omitempty"` // 快照时间，RFC3339
}
