package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"linkup_room_server/internal/config"
)

// Cache 全局缓存服务实例，main.go 中初始化
var Cache *RedisCache

// Init 按配置建立 Redis 连接并初始化全局缓存实例
func Init() error {
	conf := config.GetConfig().RedisConfig
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Password: conf.Password,
		DB:       conf.Db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	Cache = NewRedisCache(client, 4, 256)
	return nil
}
