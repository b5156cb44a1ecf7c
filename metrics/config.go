package metrics

import "errors"

// Config 指标监控配置.
type Config struct {
	// Path 指标暴露路径，默认 /metrics
	Path string `json:"path" yaml:"path" mapstructure:"path"`
	// Namespace 指标命名空间
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`
}

// DefaultConfig 返回默认配置.
func DefaultConfig() *Config {
	return &Config{
		Path:      "/metrics",
		Namespace: "slang",
	}
}

// 预定义错误.
var (
	// ErrNilConfig 指标配置为空.
	ErrNilConfig = errors.New("指标配置为空")

	// ErrNilCollector 指标收集器为空.
	ErrNilCollector = errors.New("指标收集器为空")

	// ErrNilResolver 被装饰的解析器为空.
	ErrNilResolver = errors.New("被装饰的解析器为空")
)
