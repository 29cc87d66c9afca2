// Package feed 实现房间列表的实时推送
// ws_gateway.go
// 核心职责：WebSocket 连接生命周期管理
// 1. 建立 WebSocket 连接 (Upgrade)
// 2. 封装 ClientConn 对象，管理读写协程 (Read/Write Loop)
// 3. 读协程只接收控制帧（切城市/改筛选/要求刷新），写协程下发可见列表
package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"linkup_room_server/internal/dto/respond"
	"linkup_room_server/internal/model"
	"linkup_room_server/internal/service/room"
	"linkup_room_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// controlFrame 客户端上行控制帧
// type: set_city / set_filters / refresh
type controlFrame struct {
	Type    string       `json:"type"`
	City    string       `json:"city,omitempty"`
	Filters room.Filters `json:"filters,omitempty"`
}

// roomsFrame 下行帧，携带按该连接视角现算的可见列表
type roomsFrame struct {
	Type string                  `json:"type"` // 恒为 "rooms"
	Data respond.RoomListRespond `json:"data"`
}

// ClientConn 表示一个 WebSocket 客户端连接
// 每个连接维护自己的城市选择与筛选条件，推送内容按连接各自现算
type ClientConn struct {
	Conn     *websocket.Conn
	Uuid     string      // 用户 id（同一用户重复连接时后者踢前者）
	SendBack chan []byte // 给前端

	done      chan struct{} // 关闭后写协程退出，推送路径不再投递
	closeOnce sync.Once

	mu      sync.Mutex
	city    string
	filters room.Filters
}

// newClientConn 创建一个带默认视角（全台）的连接对象
func newClientConn(conn *websocket.Conn, clientId string) *ClientConn {
	return &ClientConn{
		Conn:     conn,
		Uuid:     clientId,
		SendBack: make(chan []byte, constants.CHANNEL_SIZE),
		done:     make(chan struct{}),
		city:     constants.CITY_ALL,
	}
}

// Release 关闭底层连接并通知写协程退出，幂等
// SendBack 不在这里 close：广播路径可能正持有连接引用准备投递，
// 投递前检查 done 即可，残留在缓冲里的帧随连接对象一起回收
func (c *ClientConn) Release() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.Conn == nil {
			return
		}
		if err := c.Conn.Close(); err != nil {
			zap.L().Debug("close ws conn", zap.Error(err))
		}
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 检查连接的Origin头
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var ctx = context.Background()

// View 返回该连接当前的城市与筛选条件
func (c *ClientConn) View() (string, room.Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.city, c.filters
}

// Read 读取控制帧并更新连接视角
// 任何视角变化都立即按当前快照重推一次，不等下一次刷新
func (c *ClientConn) Read() {
	zap.L().Info("ws read goroutine start", zap.String("client", c.Uuid))
	for {
		_, jsonMessage, err := c.Conn.ReadMessage()
		if err != nil {
			zap.L().Info("ws read closed", zap.String("client", c.Uuid), zap.Error(err))
			GlobalBroker.UnregisterClient(c)
			c.Release()
			return
		}
		var frame controlFrame
		if err := json.Unmarshal(jsonMessage, &frame); err != nil {
			zap.L().Warn("ws control frame unparsable", zap.String("client", c.Uuid), zap.Error(err))
			continue
		}
		switch frame.Type {
		case "set_city":
			c.mu.Lock()
			c.city = frame.City
			c.mu.Unlock()
			c.pushCurrentView()
		case "set_filters":
			c.mu.Lock()
			c.filters = frame.Filters
			c.mu.Unlock()
			c.pushCurrentView()
		case "refresh":
			if refreshFunc != nil {
				if err := refreshFunc(ctx); err != nil {
					zap.L().Warn("ws triggered refresh failed", zap.Error(err))
					continue
				}
				if err := GlobalBroker.NotifyRefreshed(ctx, snapshotFunc()); err != nil {
					zap.L().Warn("ws notify refreshed failed", zap.Error(err))
				}
			}
		default:
			zap.L().Warn("unknown ws control frame", zap.String("type", frame.Type))
		}
	}
}

// Write 从 SendBack 通道读取消息并发送给 WebSocket
func (c *ClientConn) Write() {
	zap.L().Info("ws write goroutine start", zap.String("client", c.Uuid))
	for {
		select {
		case message := <-c.SendBack:
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				zap.L().Error(err.Error())
				return
			}
		case <-c.done:
			return
		}
	}
}

// pushCurrentView 按连接当前视角推送一次快照
func (c *ClientConn) pushCurrentView() {
	if snapshotFunc == nil {
		return
	}
	pushView(c, snapshotFunc())
}

// pushView 对单个连接现算可见列表并投递
// 已释放的连接直接跳过；SendBack 满时丢弃本次推送，
// 不阻塞刷新路径（下一次刷新会补上）
func pushView(c *ClientConn, rooms []model.Room) {
	city, filters := c.View()
	visible := room.VisibleRooms(rooms, city, filters)
	payload, err := json.Marshal(roomsFrame{
		Type: "rooms",
		Data: respond.RoomListRespond{Rooms: visible, Total: len(visible)},
	})
	if err != nil {
		zap.L().Error("marshal rooms frame failed", zap.Error(err))
		return
	}
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.SendBack <- payload:
	default:
		zap.L().Warn("client send buffer full, drop push", zap.String("client", c.Uuid))
	}
}

// NewClientInit 当前端建立推送连接时调用
// 连接建立后立即按默认视角（全台、无筛选）下发一次当前快照
func NewClientInit(c *gin.Context, clientId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := newClientConn(conn, clientId)
	GlobalBroker.RegisterClient(client)
	go client.Read()
	go client.Write()
	client.pushCurrentView()
	zap.L().Info("ws连接成功", zap.String("client", clientId))
}

// ClientLogout 注销连接并释放资源
func ClientLogout(clientId string) error {
	client := GlobalBroker.GetClient(clientId)
	if client != nil {
		GlobalBroker.UnregisterClient(client)
		client.Release()
	}
	return nil
}
