// Package config 提供 slang 绑定的配置加载功能.
//
// 基于 viper 的泛型加载器：支持 yaml/json/toml 配置文件，SLANG_ 前缀
// 的环境变量覆盖文件中的同名键，配置结构实现 Validatable 时在加载后
// 自动验证.
//
// 示例：
//
//	type AppConfig struct {
//	    Resolver resolver.Config `mapstructure:"resolver"`
//	}
//
//	cfg, err := config.Load[AppConfig]("slang.yaml",
//	    config.WithEnvPrefix(config.DefaultEnvPrefix),
//	)
//	// SLANG_RESOLVER_LIBRARY_PATH 覆盖 resolver.library_path
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// 默认配置值.
const (
	// DefaultEnvPrefix 环境变量前缀.
	DefaultEnvPrefix = "SLANG"

	// DefaultConfigName 默认配置文件名（不含扩展名）.
	DefaultConfigName = "slang"
)

// DefaultSearchPaths 返回默认的配置文件搜索路径：
// 工作目录、可执行文件目录、/etc/slang.
//
// 与原生库的布局约定一致：slang.so 和 slang.h 放在可执行文件旁，
// 配置文件也从那里找.
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}
	return append(paths, "/etc/slang")
}

// Validatable 可验证的配置接口.
type Validatable interface {
	Validate() error
}

// GetConfigType 根据文件扩展名获取配置类型.
func GetConfigType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	case ".ini":
		return "ini"
	case ".env":
		return "env"
	case ".properties":
		return "properties"
	default:
		return ""
	}
}
