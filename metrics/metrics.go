// Package metrics 提供 Prometheus 指标收集功能.
package metrics

import (
	"net/http"
	"time"
)

// 解析结果标签值.
const (
	OutcomeSuccess      = "success"
	OutcomeNoSuchLang   = "no_such_lang"
	OutcomeResolveError = "resolve_error"
	OutcomeDecodeError  = "decode_error"
	OutcomeError        = "error"
)

// Collector 指标收集器接口.
type Collector interface {
	// 解析指标
	RecordResolve(outcome string, duration time.Duration)
	RecordDecodeFailure()

	// 缓存指标
	RecordCacheHit()
	RecordCacheMiss()

	// Handler
	GetHandler() http.Handler
	GetPath() string
}

// NewMetrics 创建指标收集器.
func NewMetrics(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return NewPrometheus(cfg)
}

// MustNewMetrics 创建指标收集器，失败时 panic.
func MustNewMetrics(cfg *Config) *PrometheusCollector {
	c, err := NewMetrics(cfg)
	if err != nil {
		panic(err)
	}
	return c
}
