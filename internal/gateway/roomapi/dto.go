package roomapi

import (
	"bytes"
	"encoding/json"
	"strconv"

	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/constants"
)

// 后端历代版本对同一字段的编码并不稳定：
// id 可能是数字也可能是字符串，布尔值可能是 true/false 也可能是 0/1。
// flexId/flexBool/flexInt 在反序列化时吞下这些差异，统一成内部类型。

// flexId 接受 JSON 字符串或数字，规整为字符串
type flexId string

func (f *flexId) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexId(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexId(n.String())
	return nil
}

// flexBool 接受 true/false、0/1、"0"/"1"
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "true", "1", `"1"`, `"true"`:
		*f = true
		return nil
	case "false", "0", `"0"`, `"false"`, "null", `""`:
		*f = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexBool(v)
	return nil
}

// flexInt 接受数字或数字字符串
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// roomDTO 房间线上格式
type roomDTO struct {
	Id          flexId      `json:"id"`
	OwnerId     flexId      `json:"owner_id"`
	OwnerName   string      `json:"owner_name"`
	AvatarUrl   string      `json:"avatar_url"`
	People      flexInt     `json:"people"`
	Flower      flexBool    `json:"flower"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	City        string      `json:"city"`
	Location    string      `json:"location"`
	Rounds      flexInt     `json:"rounds"`
	DiceRule    flexBool    `json:"dice_rule"`
	Ligu        flexBool    `json:"ligu"`
	BasePoint   flexInt     `json:"base_point"`
	TaiPoint    flexInt     `json:"tai_point"`
	Note        string      `json:"note"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Members     []memberDTO `json:"members"`
	MemberCount flexInt     `json:"member_count"`
}

// memberDTO 成员线上格式
type memberDTO struct {
	Id    flexId `json:"id"`
	Name  string `json:"name"`
	Intro string `json:"intro"`
}

// toModel 映射到内部类型并补缺省值（与前端建房预设一致）
func (d roomDTO) toModel() model.Room {
	room := model.Room{
		Id:          string(d.Id),
		OwnerId:     string(d.OwnerId),
		OwnerName:   d.OwnerName,
		AvatarUrl:   d.AvatarUrl,
		People:      int(d.People),
		Flower:      bool(d.Flower),
		Date:        d.Date,
		Time:        d.Time,
		City:        d.City,
		Location:    d.Location,
		Rounds:      int(d.Rounds),
		DiceRule:    bool(d.DiceRule),
		Ligu:        bool(d.Ligu),
		BasePoint:   int(d.BasePoint),
		TaiPoint:    int(d.TaiPoint),
		Note:        d.Note,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		MemberCount: int(d.MemberCount),
	}
	if room.People == 0 {
		room.People = constants.DEFAULT_PEOPLE
	}
	if room.Rounds == 0 {
		room.Rounds = constants.DEFAULT_ROUNDS
	}
	if room.BasePoint == 0 {
		room.BasePoint = constants.DEFAULT_BASE_POINT
	}
	if room.TaiPoint == 0 {
		room.TaiPoint = constants.DEFAULT_TAI_POINT
	}
	if len(d.Members) > 0 {
		room.Members = make([]model.Member, 0, len(d.Members))
		for _, m := range d.Members {
			room.Members = append(room.Members, m.toModel())
		}
	}
	return room
}

func (d memberDTO) toModel() model.Member {
	member := model.Member{
		Id:    string(d.Id),
		Name:  d.Name,
		Intro: d.Intro,
	}
	if member.Name == "" {
		member.Name = constants.DEFAULT_MEMBER_NAME
	}
	return member
}

// 各接口的响应信封，均携带 success 字段
// HTTP 状态码不可信，success != true 一律视为失败

type listEnvelope struct {
	Success flexBool  `json:"success"`
	Rooms   []roomDTO `json:"rooms"`
}

type detailEnvelope struct {
	Success flexBool `json:"success"`
	Room    *roomDTO `json:"room"`
}

type membersEnvelope struct {
	Success flexBool    `json:"success"`
	Members []memberDTO `json:"members"`
}

type createEnvelope struct {
	Success flexBool `json:"success"`
	RoomId  flexId   `json:"room_id"`
}

type joinedEnvelope struct {
	Success  flexBool `json:"success"`
	IsJoined flexBool `json:"is_joined"`
}

type baseEnvelope struct {
	Success flexBool `json:"success"`
	Message string   `json:"message"`
}
