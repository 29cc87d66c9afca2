package room

import (
	"reflect"
	"testing"

	"linkup_room_server/internal/model"
)

func boolPtr(v bool) *bool { return &v }

func sampleRooms() []model.Room {
	return []model.Room{
		{Id: "1", City: "台北市", Rounds: 8, Flower: true, DiceRule: true, Ligu: false},
		{Id: "2", City: "台中市", Rounds: 16, Flower: false, DiceRule: false, Ligu: true},
		{Id: "3", City: "台北市", Rounds: 8, Flower: false, DiceRule: true, Ligu: true},
		{Id: "4", City: "高雄市", Rounds: 32, Flower: true, DiceRule: false, Ligu: false},
	}
}

// 空筛选条件必须原样返回全部房间
func TestApplyFiltersIdentity(t *testing.T) {
	rooms := sampleRooms()
	got := ApplyFilters(rooms, Filters{})
	if !reflect.DeepEqual(got, rooms) {
		t.Fatalf("empty filters should keep all rooms, got %d of %d", len(got), len(rooms))
	}
}

func TestApplyFiltersRounds(t *testing.T) {
	got := ApplyFilters(sampleRooms(), Filters{Rounds: []int{8, 32}})
	if len(got) != 3 {
		t.Fatalf("expect 3 rooms, got %d", len(got))
	}
	for _, r := range got {
		if r.Rounds != 8 && r.Rounds != 32 {
			t.Errorf("room %s rounds %d not in filter set", r.Id, r.Rounds)
		}
	}
}

// 三态规则：nil 不过滤，true/false 严格匹配
func TestApplyFiltersTriState(t *testing.T) {
	rooms := sampleRooms()

	if got := ApplyFilters(rooms, Filters{Flower: boolPtr(true)}); len(got) != 2 {
		t.Fatalf("flower=true expect 2 rooms, got %d", len(got))
	}
	if got := ApplyFilters(rooms, Filters{Flower: boolPtr(false)}); len(got) != 2 {
		t.Fatalf("flower=false expect 2 rooms, got %d", len(got))
	}
	got := ApplyFilters(rooms, Filters{DiceRule: boolPtr(true), Ligu: boolPtr(true)})
	if len(got) != 1 || got[0].Id != "3" {
		t.Fatalf("expect only room 3, got %v", got)
	}
}

// 筛选结果必须保持输入的相对顺序
func TestApplyFiltersKeepsOrder(t *testing.T) {
	got := ApplyFilters(sampleRooms(), Filters{Rounds: []int{8}})
	if len(got) != 2 || got[0].Id != "1" || got[1].Id != "3" {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestApplyFiltersEmptyInput(t *testing.T) {
	got := ApplyFilters(nil, Filters{Rounds: []int{8}})
	if len(got) != 0 {
		t.Fatalf("expect empty result, got %d", len(got))
	}
}
