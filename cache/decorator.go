package cache

import (
	"context"

	"github.com/Tsukikage7/slang-go/logger"
	"github.com/Tsukikage7/slang-go/resolver"
)

// Collector 缓存命中指标的最小接口.
//
// metrics.Collector 天然满足该接口；装饰器不直接依赖 metrics 包，
// 避免把指标后端的选择绑死在缓存层.
type Collector interface {
	RecordCacheHit()
	RecordCacheMiss()
}

// cachingResolver 在解析器外层加缓存的装饰器.
//
// 只缓存成功结果：非零错误码和绑定级失败都原样透传，不进缓存.
type cachingResolver struct {
	inner     resolver.Resolver
	cache     Cache
	logger    logger.Logger
	collector Collector
}

// Option 装饰器选项.
type Option func(*cachingResolver)

// WithCollector 把命中和未命中上报给指标收集器.
func WithCollector(col Collector) Option {
	return func(r *cachingResolver) {
		r.collector = col
	}
}

// WrapResolver 用缓存装饰解析器.
//
// 返回的解析器先查缓存，未命中时调用内层解析器并缓存成功结果.
// Close 同时关闭缓存和内层解析器.
func WrapResolver(inner resolver.Resolver, c Cache, log logger.Logger, opts ...Option) (resolver.Resolver, error) {
	if inner == nil {
		return nil, ErrNilResolver
	}
	if c == nil {
		return nil, ErrNilCache
	}
	if log == nil {
		return nil, ErrNilLogger
	}

	r := &cachingResolver{
		inner:  inner,
		cache:  c,
		logger: log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustWrapResolver 用缓存装饰解析器，失败时 panic.
func MustWrapResolver(inner resolver.Resolver, c Cache, log logger.Logger, opts ...Option) resolver.Resolver {
	r, err := WrapResolver(inner, c, log, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve 实现 resolver.Resolver 接口.
func (r *cachingResolver) Resolve(ctx context.Context, tag string) (*resolver.Record, error) {
	if rec, ok := r.cache.Get(ctx, tag); ok {
		if r.collector != nil {
			r.collector.RecordCacheHit()
		}
		r.logger.WithContext(ctx).Debugf("[cache] hit for tag %q", tag)
		return rec, nil
	}

	if r.collector != nil {
		r.collector.RecordCacheMiss()
	}

	rec, err := r.inner.Resolve(ctx, tag)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, tag, rec)
	return rec, nil
}

// Close 实现 resolver.Resolver 接口.
func (r *cachingResolver) Close() error {
	cacheErr := r.cache.Close()
	if err := r.inner.Close(); err != nil {
		return err
	}
	return cacheErr
}
