package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Tsukikage7/slang-go/logger"
	"github.com/Tsukikage7/slang-go/resolver"
)

// memoryCache 内存缓存实现.
type memoryCache struct {
	data      map[string]*cacheItem
	mu        sync.RWMutex
	config    *Config
	logger    logger.Logger
	closeCh   chan struct{}
	closeOnce sync.Once
}

// cacheItem 缓存项，记录按值持有.
type cacheItem struct {
	record   resolver.Record
	expireAt time.Time
	noExpire bool
}

// isExpired 检查是否过期.
func (i *cacheItem) isExpired() bool {
	if i.noExpire {
		return false
	}
	return time.Now().After(i.expireAt)
}

// newMemoryCache 创建内存缓存并启动清理协程.
func newMemoryCache(config *Config, log logger.Logger) *memoryCache {
	c := &memoryCache{
		data:    make(map[string]*cacheItem),
		config:  config,
		logger:  log,
		closeCh: make(chan struct{}),
	}

	go c.cleanupLoop()

	log.Debug("[cache] memory record cache initialized")

	return c
}

// cleanupLoop 定期清理过期项.
func (m *memoryCache) cleanupLoop() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.closeCh:
			return
		}
	}
}

// cleanup 清理过期项.
func (m *memoryCache) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for tag, item := range m.data {
		if item.isExpired() {
			delete(m.data, tag)
		}
	}
}

// Get 按标签读取记录.
func (m *memoryCache) Get(ctx context.Context, tag string) (*resolver.Record, bool) {
	m.mu.RLock()
	item, ok := m.data[tag]
	m.mu.RUnlock()

	if !ok || item.isExpired() {
		return nil, false
	}

	// 交出副本，调用方独占所有权.
	rec := item.record
	return &rec, true
}

// Set 按标签写入记录.
func (m *memoryCache) Set(ctx context.Context, tag string, rec *resolver.Record) {
	if rec == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[tag]; !exists && len(m.data) >= m.config.MaxEntries {
		m.evictOne()
	}

	item := &cacheItem{record: *rec}
	if m.config.TTL > 0 {
		item.expireAt = time.Now().Add(m.config.TTL)
	} else {
		item.noExpire = true
	}

	m.data[tag] = item
}

// evictOne 淘汰一个缓存项，优先选择已过期的.
func (m *memoryCache) evictOne() {
	for tag, item := range m.data {
		if item.isExpired() {
			delete(m.data, tag)
			return
		}
	}
	for tag := range m.data {
		delete(m.data, tag)
		return
	}
}

// Del 删除若干标签.
func (m *memoryCache) Del(ctx context.Context, tags ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tag := range tags {
		delete(m.data, tag)
	}
}

// Len 返回当前条目数.
func (m *memoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close 停止清理协程并清空缓存.
func (m *memoryCache) Close() error {
	m.closeOnce.Do(func() {
		close(m.closeCh)
		m.mu.Lock()
		m.data = make(map[string]*cacheItem)
		m.mu.Unlock()
	})
	return nil
}
