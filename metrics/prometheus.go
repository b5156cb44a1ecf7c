package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollector Prometheus 指标收集器实现.
type PrometheusCollector struct {
	config *Config

	// 解析指标
	resolvesTotal       *prometheus.CounterVec
	resolveDuration     prometheus.Histogram
	decodeFailuresTotal prometheus.Counter

	// 缓存指标
	cacheHitsTotal   prometheus.Counter
	cacheMissesTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewPrometheus 创建 Prometheus 指标收集器.
func NewPrometheus(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "slang"
	}

	// 创建新的注册表，避免与默认注册表冲突
	registry := prometheus.NewRegistry()

	c := &PrometheusCollector{
		config:   cfg,
		registry: registry,
	}

	c.resolvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "resolves_total",
			Help:      "Total number of resolve calls by outcome",
		},
		[]string{"outcome"},
	)

	c.resolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "resolve_duration_seconds",
			Help:      "Native resolve call duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
		},
	)

	c.decodeFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "decode_failures_total",
			Help:      "Total number of payloads violating the 8-field wire contract",
		},
	)

	c.cacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of record cache hits",
		},
	)

	c.cacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of record cache misses",
		},
	)

	registry.MustRegister(
		c.resolvesTotal,
		c.resolveDuration,
		c.decodeFailuresTotal,
		c.cacheHitsTotal,
		c.cacheMissesTotal,
	)

	return c, nil
}

// RecordResolve 记录一次解析调用.
func (c *PrometheusCollector) RecordResolve(outcome string, duration time.Duration) {
	c.resolvesTotal.WithLabelValues(outcome).Inc()
	c.resolveDuration.Observe(duration.Seconds())
}

// RecordDecodeFailure 记录一次线格式约定失配.
func (c *PrometheusCollector) RecordDecodeFailure() {
	c.decodeFailuresTotal.Inc()
}

// RecordCacheHit 记录一次缓存命中.
func (c *PrometheusCollector) RecordCacheHit() {
	c.cacheHitsTotal.Inc()
}

// RecordCacheMiss 记录一次缓存未命中.
func (c *PrometheusCollector) RecordCacheMiss() {
	c.cacheMissesTotal.Inc()
}

// GetHandler 返回指标暴露的 HTTP handler.
func (c *PrometheusCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// GetPath 返回指标暴露路径.
func (c *PrometheusCollector) GetPath() string {
	if c.config.Path == "" {
		return "/metrics"
	}
	return c.config.Path
}

// Registry 返回底层注册表，供测试和自定义采集使用.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
