package roomapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"linkup_room_server/internal/config"
	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/errorx"

	"go.uber.org/zap"
)

// httpGateway RoomGateway 的 HTTP 实现，对接遗留 PHP 网关
type httpGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway 创建 HTTP 网关客户端
func NewHTTPGateway(cfg *config.GatewayConfig) RoomGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpGateway{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// getJSON 发起 GET 请求并反序列化响应
// 传输层失败和响应不可解析统一归为网络失败
func (g *httpGateway) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeNetworkFailure, "构造请求失败")
	}
	return g.do(req, path, out)
}

// postJSON 发起 POST 请求并反序列化响应
func (g *httpGateway) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeNetworkFailure, "序列化请求体失败")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errorx.Wrap(err, errorx.CodeNetworkFailure, "构造请求失败")
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, path, out)
}

func (g *httpGateway) do(req *http.Request, path string, out any) error {
	resp, err := g.client.Do(req)
	if err != nil {
		zap.L().Error("room gateway request failed",
			zap.String("path", path), zap.Error(err))
		return errorx.Wrap(err, errorx.CodeNetworkFailure, "请求房间后端失败")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeNetworkFailure, "读取房间后端响应失败")
	}
	// 后端的 HTTP 状态码不可信，一律以 body 里的 success 字段为准
	if err := json.Unmarshal(data, out); err != nil {
		zap.L().Error("room gateway response unparsable",
			zap.String("path", path), zap.String("body", string(data)), zap.Error(err))
		return errorx.Wrap(err, errorx.CodeNetworkFailure, "房间后端响应不可解析")
	}
	return nil
}

// tsQuery 附加时间戳参数绕过后端/中间层缓存
func tsQuery(kv map[string]string) url.Values {
	q := url.Values{}
	for k, v := range kv {
		q.Set(k, v)
	}
	q.Set("_ts", strconv.FormatInt(time.Now().UnixMilli(), 10))
	return q
}

// ListRooms 获取全部房间列表
func (g *httpGateway) ListRooms(ctx context.Context) ([]model.Room, error) {
	var env listEnvelope
	if err := g.getJSON(ctx, "/get_rooms.php", nil, &env); err != nil {
		return nil, err
	}
	if !bool(env.Success) {
		return nil, errorx.ErrBackendReject
	}
	// 初始化 len=0，确保空列表语义与"失败"可区分
	rooms := make([]model.Room, 0, len(env.Rooms))
	for _, dto := range env.Rooms {
		rooms = append(rooms, dto.toModel())
	}
	return rooms, nil
}

// GetRoomDetail 获取单个房间（含成员列表）
// 遗留后端对"房间不存在"的表达是 success:false 或 room:null，
// 这两种情况统一规整为 CodeNotFound，与网络失败严格区分
func (g *httpGateway) GetRoomDetail(ctx context.Context, roomId string) (*model.Room, error) {
	var env detailEnvelope
	if err := g.getJSON(ctx, "/get_room_detail.php", tsQuery(map[string]string{"room_id": roomId}), &env); err != nil {
		return nil, err
	}
	if !bool(env.Success) || env.Room == nil {
		return nil, errorx.ErrRoomNotFound
	}
	room := env.Room.toModel()
	return &room, nil
}

// GetMembers 获取房间成员列表
func (g *httpGateway) GetMembers(ctx context.Context, roomId string) ([]model.Member, error) {
	var env membersEnvelope
	if err := g.getJSON(ctx, "/get_members.php", tsQuery(map[string]string{"room_id": roomId}), &env); err != nil {
		return nil, err
	}
	if !bool(env.Success) {
		return nil, errorx.ErrBackendReject
	}
	members := make([]model.Member, 0, len(env.Members))
	for _, dto := range env.Members {
		members = append(members, dto.toModel())
	}
	return members, nil
}

// CreateRoom 创建房间
// 请求体编码沿用后端约定：布尔规则写成 0/1，空白的时间地点 token 写成 null
func (g *httpGateway) CreateRoom(ctx context.Context, draft RoomDraft) (string, error) {
	payload := map[string]any{
		"owner_id":   draft.OwnerId,
		"people":     draft.People,
		"flower":     boolTo01(draft.Flower),
		"date":       blankToNull(draft.Date),
		"time":       blankToNull(draft.Time),
		"city":       blankToNull(draft.City),
		"location":   blankToNull(draft.Location),
		"rounds":     draft.Rounds,
		"dice_rule":  boolTo01(draft.DiceRule),
		"ligu":       boolTo01(draft.Ligu),
		"base_point": draft.BasePoint,
		"tai_point":  draft.TaiPoint,
		"note":       draft.Note,
	}
	var env createEnvelope
	if err := g.postJSON(ctx, "/create_room.php", payload, &env); err != nil {
		return "", err
	}
	if !bool(env.Success) {
		return "", errorx.ErrBackendReject
	}
	return string(env.RoomId), nil
}

// DeleteRoom 删除房间
func (g *httpGateway) DeleteRoom(ctx context.Context, roomId string) error {
	return g.postAction(ctx, "/delete_room.php", map[string]any{"room_id": roomId})
}

// JoinRoom 加入房间
func (g *httpGateway) JoinRoom(ctx context.Context, roomId, userId string) error {
	return g.postAction(ctx, "/join_room.php", map[string]any{
		"room_id": roomId,
		"user_id": userId,
	})
}

// LeaveRoom 离开房间
func (g *httpGateway) LeaveRoom(ctx context.Context, roomId, userId string) error {
	return g.postAction(ctx, "/leave_room.php", map[string]any{
		"room_id": roomId,
		"user_id": userId,
	})
}

// IsJoined 查询用户是否已在房间中
func (g *httpGateway) IsJoined(ctx context.Context, roomId, userId string) (bool, error) {
	var env joinedEnvelope
	err := g.postJSON(ctx, "/is_joined.php", map[string]any{
		"room_id": roomId,
		"user_id": userId,
	}, &env)
	if err != nil {
		return false, err
	}
	if !bool(env.Success) {
		return false, errorx.ErrBackendReject
	}
	return bool(env.IsJoined), nil
}

// postAction 发起只关心成败的变更请求
func (g *httpGateway) postAction(ctx context.Context, path string, payload map[string]any) error {
	var env baseEnvelope
	if err := g.postJSON(ctx, path, payload, &env); err != nil {
		return err
	}
	if !bool(env.Success) {
		if env.Message != "" {
			return errorx.Newf(errorx.CodeBackendReject, "房间后端拒绝了本次操作: %s", env.Message)
		}
		return errorx.ErrBackendReject
	}
	return nil
}

func boolTo01(v bool) int {
	if v {
		return 1
	}
	return 0
}

func blankToNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
