package request

// CreateRoomRequest 建房请求
// 数值字段缺省时由服务层补预设值（4人/4圈/底30/台10）
// 使用位置:
//   - internal/handler/room_handler.go: CreateRoomHandler
//   - internal/service/room/service.go: CreateRoom
type CreateRoomRequest struct {
	People    int    `json:"people" binding:"omitempty,gte=2,lte=4"`
	Flower    bool   `json:"flower"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	City      string `json:"city"`
	Location  string `json:"location"`
	Rounds    int    `json:"rounds" binding:"omitempty,gte=1"`
	DiceRule  bool   `json:"dice_rule"`
	Ligu      bool   `json:"ligu"`
	BasePoint int    `json:"base_point" binding:"omitempty,gte=0"`
	TaiPoint  int    `json:"tai_point" binding:"omitempty,gte=0"`
	Note      string `json:"note" binding:"max=500"`
}
