package locale

import (
	"github.com/Tsukikage7/slang-go/logger"
	"github.com/Tsukikage7/slang-go/resolver"
)

// Options 中间件选项.
type Options struct {
	// Resolver 不为 nil 时，按偏好顺序解析候选标签并把
	// 命中的记录存入 context
	Resolver resolver.Resolver

	// Logger 记录解析器的非业务失败，默认丢弃
	Logger logger.Logger

	// FallbackTag 所有候选都落空时追加的兜底标签
	FallbackTag string
}

// Option 中间件选项函数.
type Option func(*Options)

// WithResolver 启用语言记录解析.
func WithResolver(r resolver.Resolver) Option {
	return func(o *Options) {
		o.Resolver = r
	}
}

// WithLogger 设置日志记录器.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// WithFallbackTag 设置兜底标签.
func WithFallbackTag(tag string) Option {
	return func(o *Options) {
		o.FallbackTag = tag
	}
}

// newOptions 应用选项并补齐默认值.
func newOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger == nil {
		options.Logger = logger.NewNop()
	}
	return options
}
