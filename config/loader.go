package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Load 从指定文件加载配置.
//
// 格式根据扩展名识别，可用 WithConfigType 显式指定.
// 配置类型实现 Validatable 时加载后自动验证.
func Load[T any](configPath string, opts ...Option) (*T, error) {
	o := newOptions(opts...)

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if o.ConfigType != "" {
		v.SetConfigType(o.ConfigType)
	}
	o.configure(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	return decode[T](v)
}

// MustLoad 加载配置，失败时 panic.
func MustLoad[T any](configPath string, opts ...Option) *T {
	config, err := Load[T](configPath, opts...)
	if err != nil {
		panic(err)
	}
	return config
}

// LoadFromBytes 从字节内容加载配置，configType 必须显式给出.
func LoadFromBytes[T any](data []byte, configType string, opts ...Option) (*T, error) {
	o := newOptions(opts...)

	v := viper.New()
	v.SetConfigType(configType)
	o.configure(v)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	return decode[T](v)
}

// LoadWithSearch 在若干目录中按名字搜索配置文件并加载.
//
// 任何目录都没有名为 configName 的配置时返回 ErrFileNotFound，
// 调用方可以据此回退到纯默认值（slang-parse 就是这么做的）.
func LoadWithSearch[T any](configName string, searchPaths []string, opts ...Option) (*T, error) {
	o := newOptions(opts...)

	v := viper.New()
	v.SetConfigName(configName)
	for _, path := range searchPaths {
		v.AddConfigPath(path)
	}
	o.configure(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, configName)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	return decode[T](v)
}

// decode 解析配置并按需验证.
func decode[T any](v *viper.Viper) (*T, error) {
	config := new(T)
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}

	if validator, ok := any(config).(Validatable); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return config, nil
}
