package model

// Member 房间成员
// 成员隶属于所在房间：加入成功后出现在详情记录里，离开后消失，
// 客户端侧没有独立的成员生命周期
type Member struct {
	Id    string `json:"id"`    // 用户 id
	Name  string `json:"name"`  // 显示名
	Intro string `json:"intro"` // 自我介绍（自由文本）
}
