package cache

import "time"

// Config 缓存配置.
type Config struct {
	// TTL 条目存活时间，0 使用默认值，负值表示永不过期
	TTL time.Duration `json:"ttl" toml:"ttl" yaml:"ttl" mapstructure:"ttl"`

	// MaxEntries 最大条目数，写满后优先淘汰过期条目
	MaxEntries int `json:"max_entries" toml:"max_entries" yaml:"max_entries" mapstructure:"max_entries"`

	// CleanupInterval 后台清理周期
	CleanupInterval time.Duration `json:"cleanup_interval" toml:"cleanup_interval" yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// Validate 验证配置.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.MaxEntries < 0 {
		return ErrInvalidMaxEntries
	}
	return nil
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = DefaultCleanupInterval
	}
}
