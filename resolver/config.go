package resolver

import (
	"os"
	"path/filepath"
)

// 默认配置值.
//
// 原生库和伴随头文件默认放在可执行文件同目录，
// 与原生构建产物的布局保持一致.
const (
	DefaultLibraryName = "slang.so"
	DefaultHeaderName  = "slang.h"
)

// Config 解析器配置.
type Config struct {
	// LibraryPath 原生共享库路径，空值使用可执行文件目录下的 slang.so
	LibraryPath string `json:"library_path" toml:"library_path" yaml:"library_path" mapstructure:"library_path"`

	// HeaderPath 伴随头文件路径，空值使用可执行文件目录下的 slang.h
	HeaderPath string `json:"header_path" toml:"header_path" yaml:"header_path" mapstructure:"header_path"`
}

// Validate 验证配置.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	return nil
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	dir := executableDir()
	if c.LibraryPath == "" {
		c.LibraryPath = filepath.Join(dir, DefaultLibraryName)
	}
	if c.HeaderPath == "" {
		c.HeaderPath = filepath.Join(dir, DefaultHeaderName)
	}
}

// executableDir 返回当前可执行文件所在目录.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
