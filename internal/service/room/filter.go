package room

import (
	"linkup_room_server/internal/model"
)

// Filters 房间筛选条件，纯值类型，UI 每次变更都整体替换
// Rounds 为空切片表示圈数不限；三个指针字段为 nil 表示该规则不限
type Filters struct {
	Rounds   []int `json:"rounds"`    // 圈数集合，如 8、16、32；空 = 不限
	Flower   *bool `json:"flower"`    // nil=不限, true=有花, false=无花
	DiceRule *bool `json:"dice_rule"` // nil=不限
	Ligu     *bool `json:"ligu"`      // nil=不限
}

// ApplyFilters 对房间列表套用筛选条件
// 纯函数，保持输入的相对顺序（列表渲染的稳定性依赖这一点）
func ApplyFilters(source []model.Room, f Filters) []model.Room {
	result := make([]model.Room, 0, len(source))
	for _, r := range source {
		roundsOk := len(f.Rounds) == 0 || containsInt(f.Rounds, r.Rounds)
		flowerOk := f.Flower == nil || r.Flower == *f.Flower
		diceOk := f.DiceRule == nil || r.DiceRule == *f.DiceRule
		liguOk := f.Ligu == nil || r.Ligu == *f.Ligu
		if roundsOk && flowerOk && diceOk && liguOk {
			result = append(result, r)
		}
	}
	return result
}

func containsInt(list []int, v int) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
