package room

import (
	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/constants"
)

// VisibleRooms 派生视图：集合 × 城市选择 × 筛选条件 → 可见列表
// 三个输入彼此独立，任一变化时重新调用即可；纯函数，不做任何 I/O，
// 相同输入必得相同输出
func VisibleRooms(rooms []model.Room, city string, f Filters) []model.Room {
	scoped := rooms
	// 空串与哨兵值等价：不按城市过滤
	if city != "" && city != constants.CITY_ALL {
		scoped = make([]model.Room, 0, len(rooms))
		for _, r := range rooms {
			if r.City == city {
				scoped = append(scoped, r)
			}
		}
	}
	return ApplyFilters(scoped, f)
}
