package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Options 配置加载选项.
type Options struct {
	// EnvPrefix 环境变量前缀，SLANG 把 SLANG_RESOLVER_LIBRARY_PATH
	// 映射到 resolver.library_path
	EnvPrefix string

	// EnvKeyReplacer 环境变量键替换器，默认将 . 替换为 _
	EnvKeyReplacer *strings.Replacer

	// AllowEmptyEnv 是否允许空环境变量值覆盖配置
	AllowEmptyEnv bool

	// ConfigType 显式指定配置文件类型（yaml, json, toml 等）
	ConfigType string

	// Defaults 默认配置值
	Defaults map[string]any
}

// Option 配置选项函数.
type Option func(*Options)

// newOptions 构造选项并应用所有 Option.
func newOptions(opts ...Option) *Options {
	o := &Options{
		EnvKeyReplacer: strings.NewReplacer(".", "_"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// configure 把选项落到 viper 实例上.
//
// 环境变量绑定总是开启，设置了 EnvPrefix 才会实际生效.
func (o *Options) configure(v *viper.Viper) {
	for key, value := range o.Defaults {
		v.SetDefault(key, value)
	}

	if o.EnvPrefix != "" {
		v.SetEnvPrefix(o.EnvPrefix)
	}
	if o.EnvKeyReplacer != nil {
		v.SetEnvKeyReplacer(o.EnvKeyReplacer)
	}
	v.AutomaticEnv()
	v.AllowEmptyEnv(o.AllowEmptyEnv)
}

// WithEnvPrefix 设置环境变量前缀.
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}

// WithDefaults 设置默认值.
func WithDefaults(defaults map[string]any) Option {
	return func(o *Options) {
		o.Defaults = defaults
	}
}

// WithConfigType 显式指定配置文件类型.
func WithConfigType(configType string) Option {
	return func(o *Options) {
		o.ConfigType = configType
	}
}
