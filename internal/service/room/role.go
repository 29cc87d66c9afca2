package room

import (
	"linkup_room_server/internal/model"
)

// ViewerRole 观察者相对某个房间的身份
type ViewerRole int8

const (
	RoleVisitor ViewerRole = iota // 未加入（或未登录）
	RoleMember                    // 在成员名单中
	RoleOwner                     // 房主
)

func (r ViewerRole) String() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleMember:
		return "Member"
	default:
		return "Visitor"
	}
}

func (r ViewerRole) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// ResolveRole 解析观察者身份，纯函数
// 房主判定优先于成员名单：即使后端把房主也写进了 members，身份仍是 Owner
// viewerId 为空串表示未登录，一律 Visitor
func ResolveRole(room model.Room, members []model.Member, viewerId string) ViewerRole {
	if viewerId == "" {
		return RoleVisitor
	}
	if viewerId == room.OwnerId {
		return RoleOwner
	}
	for _, m := range members {
		if m.Id == viewerId {
			return RoleMember
		}
	}
	return RoleVisitor
}

// OpenSeats 计算剩余空位：总人数减去房主、再减去非房主成员数
// 后端数据异常（成员超编）时收底为 0，不向 UI 暴露负数
func OpenSeats(room model.Room, members []model.Member) int {
	nonOwner := 0
	for _, m := range members {
		if m.Id != room.OwnerId {
			nonOwner++
		}
	}
	seats := room.People - 1 - nonOwner
	if seats < 0 {
		return 0
	}
	return seats
}
