package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"linkup_room_server/internal/config"
	myredis "linkup_room_server/internal/dao/redis"
	"linkup_room_server/internal/gateway/roomapi"
	"linkup_room_server/internal/handler"
	"linkup_room_server/internal/https_server"
	"linkup_room_server/internal/infrastructure/logger"
	"linkup_room_server/internal/service"
	"linkup_room_server/internal/service/feed"
	"linkup_room_server/internal/service/room"
	"linkup_room_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化 Redis
	if err := myredis.Init(); err != nil {
		zap.L().Fatal("Redis 初始化失败", zap.Error(err))
	}
	zap.L().Info("Redis 初始化成功")

	// 4. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 5. 初始化 validator 翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("validator 翻译器初始化失败", zap.Error(err))
	}
	zap.L().Info("validator 翻译器初始化成功")

	// 6. 初始化房间后端网关与快照存储
	gw := roomapi.NewHTTPGateway(&conf.GatewayConfig)
	store := room.NewStore(gw)

	// 7. 初始化推送代理（按配置选择 Channel / Kafka 模式）
	if conf.FeedConfig.FeedMode == "kafka" {
		kafkaClient := feed.NewKafkaClient()
		kafkaClient.KafkaInit()
		feed.GlobalBroker = feed.NewKafkaFeed(kafkaClient)
	} else {
		feed.GlobalBroker = feed.NewStandaloneFeed()
	}
	feed.SetRoomSource(store.Snapshot, store.Refresh)
	zap.L().Info("推送代理初始化成功", zap.String("mode", conf.FeedConfig.FeedMode))

	// 8. 初始化 Service 层 (依赖注入)
	svcs := service.NewServices(gw, store, feed.GlobalBroker, myredis.Cache, conf.JWTConfig.RefreshTokenExpiry)
	service.InitServices(svcs)
	zap.L().Info("Service 层初始化成功")

	// 9. 初始化 Handler 与 HTTP 服务器
	handlers := handler.NewHandlers(svcs)
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 10. 启动推送消费循环
	go feed.GlobalBroker.Start()

	// 11. 预热房间快照（失败不阻塞启动，首个请求会再触发刷新）
	go func() {
		if err := store.Refresh(context.Background()); err != nil {
			zap.L().Warn("房间快照预热失败", zap.Error(err))
		}
	}()

	// 12. 启动 HTTP 服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	feed.GlobalBroker.Close()
	zap.L().Info("服务器已关闭")
}
