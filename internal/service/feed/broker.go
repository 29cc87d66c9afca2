// Package feed 实现房间列表的实时推送
// broker.go
// 核心职责：定义刷新事件代理接口
// 快照每次成功刷新后，按每个连接各自的城市与筛选条件现算可见列表并下发，
// 支持 Kafka（多实例）和 Channel（单机）两种实现
package feed

import (
	"context"

	"linkup_room_server/internal/model"
)

// Broker 刷新事件代理接口
// 支持多种实现：KafkaFeed (分布式), StandaloneFeed (单机)
type Broker interface {
	// NotifyRefreshed 快照刷新成功后调用，触发向所有在线连接推送
	NotifyRefreshed(ctx context.Context, rooms []model.Room) error
	// RegisterClient 注册客户端连接
	RegisterClient(client *ClientConn)
	// UnregisterClient 注销客户端连接
	UnregisterClient(client *ClientConn)
	// GetClient 获取指定连接
	GetClient(clientId string) *ClientConn
	// Start 启动推送消费循环
	Start()
	// Close 关闭代理资源
	Close()
}

// GlobalBroker 全局刷新事件代理实例
// 在 main.go 中根据配置初始化为 KafkaFeed 或 StandaloneFeed
var GlobalBroker Broker

// roomSource 推送层对快照的只读视角，由 main.go 注入
// snapshot 取当前快照副本；refresh 触发一次合并刷新（Kafka 消费侧使用）
var (
	snapshotFunc func() []model.Room
	refreshFunc  func(ctx context.Context) error
)

// SetRoomSource 注入快照读取与刷新入口（依赖倒置: feed → room）
func SetRoomSource(snapshot func() []model.Room, refresh func(ctx context.Context) error) {
	snapshotFunc = snapshot
	refreshFunc = refresh
}
