package constants

const (
	CHANNEL_SIZE               = 100 // 通道大小
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天

	// CITY_ALL 城市选择的哨兵值，表示不按城市过滤
	CITY_ALL = "全台"

	// 房间规则缺省值（后端字段缺失时的兜底，与前端建房预设一致）
	DEFAULT_PEOPLE     = 4  // 人数
	DEFAULT_ROUNDS     = 4  // 圈数
	DEFAULT_BASE_POINT = 30 // 底
	DEFAULT_TAI_POINT  = 10 // 台

	// DEFAULT_MEMBER_NAME 成员名字缺失时的兜底显示
	DEFAULT_MEMBER_NAME = "未知玩家"
)

// CityList 可选城市列表，首项为不过滤哨兵
var CityList = []string{
	CITY_ALL, "台北市", "新北市", "基隆市", "桃園市", "新竹市", "新竹縣", "苗栗縣",
	"台中市", "彰化縣", "南投縣", "雲林縣", "嘉義市", "嘉義縣", "台南市",
	"高雄市", "屏東縣", "宜蘭縣", "花蓮縣", "台東縣", "澎湖縣", "金門縣", "連江縣",
}
