// Package feed 实现房间列表的实时推送
// standalone_feed.go
// 核心职责：Channel 模式的单机推送实现
// 刷新事件进程内转发，不依赖任何外部中间件，适合单实例部署
package feed

import (
	"context"
	"sync"

	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/constants"

	"go.uber.org/zap"
)

// StandaloneFeed Channel 模式推送实现
// 刷新事件写入 transmit 通道，Start 消费循环逐连接现算并下发
type StandaloneFeed struct {
	clients  sync.Map // uuid -> *ClientConn
	transmit chan []model.Room
	done     chan struct{}
}

// NewStandaloneFeed 创建单机推送实例
func NewStandaloneFeed() *StandaloneFeed {
	return &StandaloneFeed{
		transmit: make(chan []model.Room, constants.CHANNEL_SIZE),
		done:     make(chan struct{}),
	}
}

// NotifyRefreshed 投递刷新事件
// transmit 满时丢弃本次事件：推送的是全量快照，丢中间帧无损最终状态
func (f *StandaloneFeed) NotifyRefreshed(ctx context.Context, rooms []model.Room) error {
	select {
	case f.transmit <- rooms:
	default:
		zap.L().Warn("feed transmit channel full, drop refresh event")
	}
	return nil
}

// RegisterClient 注册客户端连接
// 同一用户重复连接时，旧连接被踢下线
func (f *StandaloneFeed) RegisterClient(client *ClientConn) {
	if old, ok := f.clients.Load(client.Uuid); ok {
		f.clients.Delete(client.Uuid)
		old.(*ClientConn).Release()
		zap.L().Info("kick duplicated ws client", zap.String("client", client.Uuid))
	}
	f.clients.Store(client.Uuid, client)
}

// UnregisterClient 注销客户端连接
func (f *StandaloneFeed) UnregisterClient(client *ClientConn) {
	if cur, ok := f.clients.Load(client.Uuid); ok && cur == client {
		f.clients.Delete(client.Uuid)
	}
}

// GetClient 获取指定连接，不存在返回 nil
func (f *StandaloneFeed) GetClient(clientId string) *ClientConn {
	if v, ok := f.clients.Load(clientId); ok {
		return v.(*ClientConn)
	}
	return nil
}

// Start 启动推送消费循环，应在独立协程中运行
func (f *StandaloneFeed) Start() {
	zap.L().Info("standalone feed start")
	for {
		select {
		case rooms := <-f.transmit:
			f.fanOut(rooms)
		case <-f.done:
			zap.L().Info("standalone feed stopped")
			return
		}
	}
}

// Close 停止消费循环并释放所有连接
func (f *StandaloneFeed) Close() {
	close(f.done)
	f.clients.Range(func(key, value any) bool {
		f.clients.Delete(key)
		value.(*ClientConn).Release()
		return true
	})
}

// fanOut 对所有在线连接逐一现算可见列表并下发
func (f *StandaloneFeed) fanOut(rooms []model.Room) {
	f.clients.Range(func(_, value any) bool {
		pushView(value.(*ClientConn), rooms)
		return true
	})
}
