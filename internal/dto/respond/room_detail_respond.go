package respond

import "linkup_room_server/internal/model"

// RoomDetailRespond 房间详情响应
// Role/IsJoined/OpenSeats 均由详情记录上的权威成员名单现算，
// 不依赖列表里的 member_count
// 使用位置:
//   - internal/service/room/service.go: GetRoomDetail
type RoomDetailRespond struct {
	Room      model.Room     `json:"room"`
	Members   []model.Member `json:"members"`
	Role      string         `json:"role"` // Owner / Member / Visitor
	IsJoined  bool           `json:"is_joined"`
	OpenSeats int            `json:"open_seats"`
}
