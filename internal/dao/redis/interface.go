// Package redis 提供缓存服务接口及其 Redis 实现
// 上层模块只依赖 CacheService 接口，便于测试时替换为内存实现
package redis

import (
	"context"
	"time"
)

// CacheService 基础缓存接口
// 只暴露会话层需要的最小方法集
type CacheService interface {
	// Set 写入键值，expire 为 0 表示不过期
	Set(ctx context.Context, key, value string, expire time.Duration) error
	// Get 读取键值，键不存在时返回空串且 err 为 nil
	Get(ctx context.Context, key string) (string, error)
	// Delete 删除键
	Delete(ctx context.Context, key string) error
}

// AsyncCacheService 带异步任务队列的缓存接口
// 非关键路径的缓存写入可以投递到后台 worker 执行
type AsyncCacheService interface {
	CacheService
	// SubmitTask 提交异步任务，队列满时降级为同步执行
	SubmitTask(action func())
}
