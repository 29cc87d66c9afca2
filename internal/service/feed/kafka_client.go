// Package feed 实现房间列表的实时推送
// kafka_client.go
// 核心职责：Kafka 基础设施管理
// 1. 封装 Kafka 底层连接 (Writer/Reader)
// 2. 提供刷新事件写入接口 (SendMessage)
// 3. 纯技术组件，不包含房间业务逻辑
package feed

import (
	"context"
	"time"

	myconfig "linkup_room_server/internal/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaClient Kafka 客户端结构
type KafkaClient struct {
	Producer *kafka.Writer // 生产者：写入刷新事件
	Consumer *kafka.Reader // 消费者：读取刷新事件
}

// NewKafkaClient 创建 Kafka 客户端实例
func NewKafkaClient() *KafkaClient {
	return &KafkaClient{}
}

// KafkaInit 初始化 Kafka 客户端
// 消费组按实例随机命名：刷新事件要广播到每个实例，而不是组内分摊
func (k *KafkaClient) KafkaInit() {
	feedConfig := myconfig.GetConfig().FeedConfig
	timeout := time.Duration(feedConfig.TimeoutSeconds) * time.Second
	k.Producer = &kafka.Writer{
		Addr:                   kafka.TCP(feedConfig.HostPort),
		Topic:                  feedConfig.RoomTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           timeout,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	k.Consumer = kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{feedConfig.HostPort},
		Topic:          feedConfig.RoomTopic,
		CommitInterval: timeout,
		GroupID:        "room_feed_" + uuid.NewString(),
		StartOffset:    kafka.LastOffset,
	})
}

// KafkaClose 关闭 Kafka 资源
func (k *KafkaClient) KafkaClose() {
	if err := k.Producer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := k.Consumer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}

// SendMessage 写入一条刷新事件
func (k *KafkaClient) SendMessage(ctx context.Context, key, value []byte) error {
	return k.Producer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}
