// Package feed 实现房间列表的实时推送
// kafka_feed.go
// 核心职责：Kafka 模式的分布式推送实现
// 任一实例的快照刷新成功后向主题写入事件；每个实例消费到事件后
// 刷新本地快照并向本实例的在线连接扇出。本地连接管理复用 StandaloneFeed
package feed

import (
	"context"
	"encoding/json"
	"time"

	"linkup_room_server/internal/model"

	"go.uber.org/zap"
)

// refreshEvent 写入 Kafka 的刷新事件
// 只携带时间戳不携带房间数据：各实例消费后自行回源刷新，
// 避免把整表快照塞进消息队列
type refreshEvent struct {
	RefreshedAt string `json:"refreshed_at"`
}

// KafkaFeed Kafka 模式推送实现
type KafkaFeed struct {
	local  *StandaloneFeed // 本实例连接管理与扇出
	client *KafkaClient
	done   chan struct{}
}

// NewKafkaFeed 创建 Kafka 推送实例
func NewKafkaFeed(client *KafkaClient) *KafkaFeed {
	return &KafkaFeed{
		local:  NewStandaloneFeed(),
		client: client,
		done:   make(chan struct{}),
	}
}

// NotifyRefreshed 向主题写入刷新事件
// 本实例的扇出同样走消费路径：发起方会消费到自己的事件，
// 触发的二次刷新会被快照层合并，代价很小
func (f *KafkaFeed) NotifyRefreshed(ctx context.Context, rooms []model.Room) error {
	payload, err := json.Marshal(refreshEvent{RefreshedAt: time.Now().Format(time.RFC3339)})
	if err != nil {
		return err
	}
	return f.client.SendMessage(ctx, []byte("room_refresh"), payload)
}

// RegisterClient 注册客户端连接
func (f *KafkaFeed) RegisterClient(client *ClientConn) {
	f.local.RegisterClient(client)
}

// UnregisterClient 注销客户端连接
func (f *KafkaFeed) UnregisterClient(client *ClientConn) {
	f.local.UnregisterClient(client)
}

// GetClient 获取指定连接
func (f *KafkaFeed) GetClient(clientId string) *ClientConn {
	return f.local.GetClient(clientId)
}

// Start 启动消费循环：收到刷新事件 → 刷新本地快照 → 向本实例连接扇出
func (f *KafkaFeed) Start() {
	go f.local.Start()
	zap.L().Info("kafka feed start")
	for {
		select {
		case <-f.done:
			zap.L().Info("kafka feed stopped")
			return
		default:
		}
		msg, err := f.client.Consumer.ReadMessage(context.Background())
		if err != nil {
			zap.L().Error("kafka read message failed", zap.Error(err))
			return
		}
		var event refreshEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			zap.L().Warn("kafka refresh event unparsable", zap.Error(err))
			continue
		}
		if refreshFunc == nil || snapshotFunc == nil {
			continue
		}
		if err := refreshFunc(context.Background()); err != nil {
			zap.L().Warn("refresh on kafka event failed, keep stale data", zap.Error(err))
			continue
		}
		_ = f.local.NotifyRefreshed(context.Background(), snapshotFunc())
	}
}

// Close 关闭 Kafka 资源并停止本地扇出
func (f *KafkaFeed) Close() {
	close(f.done)
	f.client.KafkaClose()
	f.local.Close()
}
