package model

// Room 麻将房间
// 后端才是房间数据的唯一权威：客户端从不就地修改 Room，
// 每次更新都是从后端重新拉取后的整体替换
//
// 注意 MemberCount 与 Members 并不保证一致：
// MemberCount 只用于列表展示；角色与空位计算一律以详情记录上的 Members 为准
type Room struct {
	Id          string   `json:"id"`                   // 房间 id（后端分配，统一规整为字符串）
	OwnerId     string   `json:"owner_id"`             // 房主 id
	OwnerName   string   `json:"owner_name,omitempty"` // 房主显示名（可缺失）
	AvatarUrl   string   `json:"avatar_url,omitempty"` // 房主头像
	People      int      `json:"people"`               // 人数上限
	Flower      bool     `json:"flower"`               // 有无花牌
	Date        string   `json:"date"`                 // 日期（自由文本）
	Time        string   `json:"time"`                 // 时间（自由文本）
	City        string   `json:"city"`                 // 城市
	Location    string   `json:"location"`             // 地点
	Rounds      int      `json:"rounds"`               // 圈数
	DiceRule    bool     `json:"dice_rule"`            // 骰子规则
	Ligu        bool     `json:"ligu"`                 // 立咕
	BasePoint   int      `json:"base_point"`           // 底
	TaiPoint    int      `json:"tai_point"`            // 台
	Note        string   `json:"note,omitempty"`       // 备注
	CreatedAt   string   `json:"created_at,omitempty"` // 创建时间（仅展示用）
	UpdatedAt   string   `json:"updated_at,omitempty"` // 更新时间（仅展示用）
	Members     []Member `json:"members,omitempty"`    // 成员列表（详情记录才有）
	MemberCount int      `json:"member_count"`         // 成员数（列表展示用）
}
