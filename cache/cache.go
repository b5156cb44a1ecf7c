// Package cache 提供语言记录的进程内 TTL 缓存.
//
// 原生解析对同一标签是纯函数，结果可以安全缓存. 缓存按值存储
// 记录并在读取时交出副本，调用方改动自己的记录不会污染缓存.
package cache

import (
	"context"
	"time"

	"github.com/Tsukikage7/slang-go/logger"
	"github.com/Tsukikage7/slang-go/resolver"
)

// 默认配置值.
const (
	DefaultTTL             = 10 * time.Minute
	DefaultMaxEntries      = 4096
	DefaultCleanupInterval = time.Minute
)

// Cache 语言记录缓存接口.
type Cache interface {
	// Get 按标签读取记录，命中时返回副本.
	Get(ctx context.Context, tag string) (*resolver.Record, bool)

	// Set 按标签写入记录.
	Set(ctx context.Context, tag string, rec *resolver.Record)

	// Del 删除若干标签.
	Del(ctx context.Context, tags ...string)

	// Len 返回当前条目数（含未清理的过期条目）.
	Len() int

	// Close 停止后台清理并清空缓存.
	Close() error
}

// New 创建缓存实例.
// log 是必需参数，不能为 nil.
func New(config *Config, log logger.Logger) (Cache, error) {
	if log == nil {
		return nil, ErrNilLogger
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.ApplyDefaults()

	return newMemoryCache(config, log), nil
}

// MustNew 创建缓存实例，失败时 panic.
func MustNew(config *Config, log logger.Logger) Cache {
	c, err := New(config, log)
	if err != nil {
		panic(err)
	}
	return c
}
