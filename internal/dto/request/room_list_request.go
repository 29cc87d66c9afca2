package request

// RoomListRequest 房间列表查询参数
// city 为空或"全台"表示不按城市过滤；rounds 可重复出现表示集合；
// 三个规则参数缺省表示不限
// 使用位置:
//   - internal/handler/room_handler.go: RoomListHandler
type RoomListRequest struct {
	City     string `form:"city"`
	Rounds   []int  `form:"rounds"`
	Flower   *bool  `form:"flower"`
	DiceRule *bool  `form:"dice_rule"`
	Ligu     *bool  `form:"ligu"`
}
