package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"linkup_room_server/pkg/errorx"
)

// RedisCache CacheService 的 Redis 实现
// 同时实现 AsyncCacheService，不同模块按需声明依赖最小的接口
type RedisCache struct {
	client   *redis.Client
	taskChan chan func()
}

// NewRedisCache 创建 Redis 缓存实例并启动后台 worker
func NewRedisCache(client *redis.Client, workerNum, taskChanSize int) *RedisCache {
	rc := &RedisCache{
		client:   client,
		taskChan: make(chan func(), taskChanSize),
	}
	for i := 0; i < workerNum; i++ {
		go rc.startWorker()
	}
	zap.L().Info("Redis Cache Workers started", zap.Int("workers", workerNum), zap.Int("buffer", taskChanSize))
	return rc
}

// startWorker 单个 worker 消费循环，panic 后自动重启
func (r *RedisCache) startWorker() {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("Redis Worker panic", zap.Any("recover", rec))
			go r.startWorker()
		}
	}()
	for task := range r.taskChan {
		if task != nil {
			task()
		}
	}
}

// SubmitTask 提交异步任务，队列满时降级为同步执行
func (r *RedisCache) SubmitTask(action func()) {
	select {
	case r.taskChan <- action:
	default:
		zap.L().Warn("Redis cache task channel full, executing synchronously")
		action()
	}
}

// Set 写入键值
func (r *RedisCache) Set(ctx context.Context, key, value string, expire time.Duration) error {
	if err := r.client.Set(ctx, key, value, expire).Err(); err != nil {
		zap.L().Error("redis set failed", zap.String("key", key), zap.Error(err))
		return errorx.Wrap(err, errorx.CodeCacheError, "缓存写入失败")
	}
	return nil
}

// Get 读取键值，键不存在返回空串
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		zap.L().Error("redis get failed", zap.String("key", key), zap.Error(err))
		return "", errorx.Wrap(err, errorx.CodeCacheError, "缓存读取失败")
	}
	return val, nil
}

// Delete 删除键
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		zap.L().Error("redis delete failed", zap.String("key", key), zap.Error(err))
		return errorx.Wrap(err, errorx.CodeCacheError, "缓存删除失败")
	}
	return nil
}
