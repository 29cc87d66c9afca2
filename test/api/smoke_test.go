package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linkup_room_server/internal/dto/request"
	"linkup_room_server/internal/dto/respond"
	"linkup_room_server/internal/handler"
	"linkup_room_server/internal/https_server"
	"linkup_room_server/internal/model"
	"linkup_room_server/internal/service"
	"linkup_room_server/internal/service/feed"
	"linkup_room_server/pkg/errorx"
	"linkup_room_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type stubRoomService struct{}

type stubAuthService struct{}

func (s stubRoomService) ListRooms(ctx context.Context, req request.RoomListRequest) (*respond.RoomListRespond, error) {
	rooms := []model.Room{{Id: "1", OwnerId: "U1", City: "台北市", People: 4}}
	return &respond.RoomListRespond{Rooms: rooms, Total: len(rooms)}, nil
}
func (s stubRoomService) Refresh(ctx context.Context) error { return nil }
func (s stubRoomService) GetRoomDetail(ctx context.Context, roomId, viewerId string) (*respond.RoomDetailRespond, error) {
	if roomId == "404" {
		return nil, errorx.ErrRoomNotFound
	}
	role := "Visitor"
	if viewerId == "U1" {
		role = "Owner"
	}
	return &respond.RoomDetailRespond{
		Room:      model.Room{Id: roomId, OwnerId: "U1", People: 4},
		Members:   []model.Member{},
		Role:      role,
		IsJoined:  role != "Visitor",
		OpenSeats: 3,
	}, nil
}
func (s stubRoomService) GetMembers(ctx context.Context, roomId string) ([]model.Member, error) {
	return []model.Member{}, nil
}
func (s stubRoomService) CreateRoom(ctx context.Context, req request.CreateRoomRequest, userId string) (*respond.CreateRoomRespond, error) {
	return &respond.CreateRoomRespond{RoomId: "R_TEST"}, nil
}
func (s stubRoomService) JoinRoom(ctx context.Context, roomId, userId string) error  { return nil }
func (s stubRoomService) LeaveRoom(ctx context.Context, roomId, userId string) error { return nil }
func (s stubRoomService) DeleteRoom(ctx context.Context, roomId, userId string) error {
	return nil
}
func (s stubRoomService) IsJoined(ctx context.Context, roomId, userId string) (*respond.IsJoinedRespond, error) {
	return &respond.IsJoinedRespond{IsJoined: true}, nil
}

func (s stubAuthService) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{UserId: req.UserId}, nil
}
func (s stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (*respond.RefreshTokenRespond, error) {
	return &respond.RefreshTokenRespond{}, nil
}
func (s stubAuthService) Logout(ctx context.Context, userId string) error { return nil }
func (s stubAuthService) ValidateTokenID(ctx context.Context, userId, tokenId string) (bool, error) {
	return true, nil
}

type apiResponse struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret-for-smoke-test-only", 15, 168)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatal(err)
	}
	feed.GlobalBroker = feed.NewStandaloneFeed()
	feed.SetRoomSource(
		func() []model.Room { return []model.Room{{Id: "1", City: "台北市", People: 4}} },
		func(ctx context.Context) error { return nil },
	)
	go feed.GlobalBroker.Start()
	t.Cleanup(feed.GlobalBroker.Close)

	svcs := &service.Services{Room: stubRoomService{}, Auth: stubAuthService{}}
	engine := https_server.Init(handler.NewHandlers(svcs))
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return resp, out
}

func TestPublicRoomRoutes(t *testing.T) {
	srv := newTestServer(t)

	_, out := doJSON(t, http.MethodGet, srv.URL+"/room/list?city=台北市", "", nil)
	if out.Code != errorx.CodeSuccess {
		t.Fatalf("room list code = %d", out.Code)
	}
	var list respond.RoomListRespond
	if err := json.Unmarshal(out.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 {
		t.Fatalf("expect 1 room, got %d", list.Total)
	}

	// 游客访问详情，角色为 Visitor
	_, out = doJSON(t, http.MethodGet, srv.URL+"/room/detail?room_id=1", "", nil)
	if out.Code != errorx.CodeSuccess {
		t.Fatalf("room detail code = %d", out.Code)
	}
	var detail respond.RoomDetailRespond
	if err := json.Unmarshal(out.Data, &detail); err != nil {
		t.Fatal(err)
	}
	if detail.Role != "Visitor" || detail.IsJoined {
		t.Fatalf("anonymous viewer got role %s", detail.Role)
	}

	_, out = doJSON(t, http.MethodGet, srv.URL+"/room/detail?room_id=404", "", nil)
	if out.Code != errorx.CodeNotFound {
		t.Fatalf("missing room code = %d", out.Code)
	}
}

// 详情接口带合法 Token 时注入观察者身份
func TestRoomDetailWithToken(t *testing.T) {
	srv := newTestServer(t)
	token, err := jwt.GenerateAccessToken("U1")
	if err != nil {
		t.Fatal(err)
	}

	_, out := doJSON(t, http.MethodGet, srv.URL+"/room/detail?room_id=1", token, nil)
	if out.Code != errorx.CodeSuccess {
		t.Fatalf("detail code = %d", out.Code)
	}
	var detail respond.RoomDetailRespond
	if err := json.Unmarshal(out.Data, &detail); err != nil {
		t.Fatal(err)
	}
	if detail.Role != "Owner" {
		t.Fatalf("expect Owner, got %s", detail.Role)
	}
}

func TestMutationRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/room/join", "", request.JoinRoomRequest{RoomId: "1"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("join without token status = %d", resp.StatusCode)
	}

	token, err := jwt.GenerateAccessToken("U2")
	if err != nil {
		t.Fatal(err)
	}
	_, out := doJSON(t, http.MethodPost, srv.URL+"/room/join", token, request.JoinRoomRequest{RoomId: "1"})
	if out.Code != errorx.CodeSuccess {
		t.Fatalf("join with token code = %d", out.Code)
	}

	// 参数缺失时返回参数错误而不是透传给 Service
	_, out = doJSON(t, http.MethodPost, srv.URL+"/room/join", token, map[string]any{})
	if out.Code != errorx.CodeInvalidParam {
		t.Fatalf("join without room_id code = %d", out.Code)
	}
}

func TestAuthRoutes(t *testing.T) {
	srv := newTestServer(t)

	_, out := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", request.LoginRequest{UserId: "U1"})
	if out.Code != errorx.CodeSuccess {
		t.Fatalf("login code = %d", out.Code)
	}

	token, err := jwt.GenerateAccessToken("U1")
	if err != nil {
		t.Fatal(err)
	}
	_, out = doJSON(t, http.MethodGet, srv.URL+"/auth/me", token, nil)
	if out.Code != errorx.CodeSuccess {
		t.Fatalf("me code = %d", out.Code)
	}
	var me struct {
		UserId string `json:"user_id"`
	}
	if err := json.Unmarshal(out.Data, &me); err != nil {
		t.Fatal(err)
	}
	if me.UserId != "U1" {
		t.Fatalf("me user_id = %q", me.UserId)
	}
}

// 推送连接建立后立即收到一帧当前快照
func TestWsFeedInitialPush(t *testing.T) {
	srv := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/wss?client_id=U_WS"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var frame struct {
		Type string                  `json:"type"`
		Data respond.RoomListRespond `json:"data"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Type != "rooms" || frame.Data.Total != 1 {
		t.Fatalf("unexpected initial frame: %s", payload)
	}

	// 切换城市后收到按新视角现算的一帧
	if err := conn.WriteJSON(map[string]any{"type": "set_city", "city": "高雄市"}); err != nil {
		t.Fatal(err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err = conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Data.Total != 0 {
		t.Fatalf("city switch not applied: %s", payload)
	}
}
