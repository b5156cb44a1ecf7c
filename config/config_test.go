package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite 配置测试套件.
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "config_test")
	s.Require().NoError(err)
	s.tempDir = tempDir
}

func (s *ConfigTestSuite) TearDownSuite() {
	os.RemoveAll(s.tempDir)
}

// BindingConfig 测试用的绑定配置结构.
type BindingConfig struct {
	Resolver ResolverSection `mapstructure:"resolver"`
	Cache    CacheSection    `mapstructure:"cache"`
}

type ResolverSection struct {
	LibraryPath string `mapstructure:"library_path"`
	HeaderPath  string `mapstructure:"header_path"`
}

type CacheSection struct {
	TTL        string `mapstructure:"ttl"`
	MaxEntries int    `mapstructure:"max_entries"`
}

// ValidatableConfig 实现 Validatable 接口的配置.
type ValidatableConfig struct {
	LibraryPath string `mapstructure:"library_path"`
}

func (c *ValidatableConfig) Validate() error {
	if c.LibraryPath == "" {
		return errors.New("library_path 不能为空")
	}
	return nil
}

func (s *ConfigTestSuite) createFile(name, content string) string {
	path := filepath.Join(s.tempDir, name)
	err := os.WriteFile(path, []byte(content), 0o644)
	s.Require().NoError(err)
	return path
}

func (s *ConfigTestSuite) TestLoad_YAML() {
	content := `
resolver:
  library_path: /opt/slang/slang.so
  header_path: /opt/slang/slang.h
cache:
  ttl: 10m
  max_entries: 1024
`
	path := s.createFile("binding.yaml", content)

	config, err := Load[BindingConfig](path)
	s.NoError(err)
	s.Require().NotNil(config)
	s.Equal("/opt/slang/slang.so", config.Resolver.LibraryPath)
	s.Equal("/opt/slang/slang.h", config.Resolver.HeaderPath)
	s.Equal("10m", config.Cache.TTL)
	s.Equal(1024, config.Cache.MaxEntries)
}

func (s *ConfigTestSuite) TestLoad_JSON() {
	content := `{
  "resolver": {"library_path": "./slang.so", "header_path": "./slang.h"},
  "cache": {"max_entries": 64}
}`
	path := s.createFile("binding.json", content)

	config, err := Load[BindingConfig](path)
	s.NoError(err)
	s.Equal("./slang.so", config.Resolver.LibraryPath)
	s.Equal(64, config.Cache.MaxEntries)
}

func (s *ConfigTestSuite) TestLoad_TOML() {
	content := `
[resolver]
library_path = "slang.so"
`
	path := s.createFile("binding.toml", content)

	config, err := Load[BindingConfig](path)
	s.NoError(err)
	s.Equal("slang.so", config.Resolver.LibraryPath)
}

func (s *ConfigTestSuite) TestLoad_FileNotFound() {
	_, err := Load[BindingConfig](filepath.Join(s.tempDir, "missing.yaml"))
	s.Error(err)
	s.ErrorIs(err, ErrFileNotFound)
}

func (s *ConfigTestSuite) TestLoad_BadContentWrapsReadError() {
	path := s.createFile("broken.yaml", "{not yaml: [")

	_, err := Load[BindingConfig](path)
	s.Error(err)
	s.ErrorIs(err, ErrReadConfig)
}

func (s *ConfigTestSuite) TestLoad_ValidatableSuccess() {
	path := s.createFile("valid.yaml", "library_path: slang.so\n")

	config, err := Load[ValidatableConfig](path)
	s.NoError(err)
	s.Equal("slang.so", config.LibraryPath)
}

func (s *ConfigTestSuite) TestLoad_ValidatableFailure() {
	path := s.createFile("invalid.yaml", "library_path: \"\"\n")

	_, err := Load[ValidatableConfig](path)
	s.Error(err)
	s.ErrorIs(err, ErrValidation)
	s.Contains(err.Error(), "library_path")
}

func (s *ConfigTestSuite) TestLoad_WithDefaults() {
	path := s.createFile("partial.yaml", "resolver:\n  library_path: slang.so\n")

	config, err := Load[BindingConfig](path, WithDefaults(map[string]any{
		"cache.max_entries": 512,
	}))
	s.NoError(err)
	s.Equal(512, config.Cache.MaxEntries)
}

func (s *ConfigTestSuite) TestLoad_EnvOverride() {
	path := s.createFile("env.yaml", "resolver:\n  library_path: from-file\n")

	s.T().Setenv("SLANG_RESOLVER_LIBRARY_PATH", "from-env")

	config, err := Load[BindingConfig](path, WithEnvPrefix("SLANG"))
	s.NoError(err)
	s.Equal("from-env", config.Resolver.LibraryPath)
}

func (s *ConfigTestSuite) TestLoadFromBytes() {
	config, err := LoadFromBytes[BindingConfig]([]byte("resolver:\n  header_path: slang.h\n"), "yaml")
	s.NoError(err)
	s.Equal("slang.h", config.Resolver.HeaderPath)
}

func (s *ConfigTestSuite) TestLoadFromBytes_BadContent() {
	_, err := LoadFromBytes[BindingConfig]([]byte("{not yaml: ["), "yaml")
	s.Error(err)
}

func (s *ConfigTestSuite) TestMustLoad_Panics() {
	s.Panics(func() {
		MustLoad[BindingConfig](filepath.Join(s.tempDir, "missing.yaml"))
	})
}

func (s *ConfigTestSuite) TestLoadWithSearch() {
	s.createFile("search.yaml", "resolver:\n  library_path: found\n")

	config, err := LoadWithSearch[BindingConfig]("search", []string{s.tempDir})
	s.NoError(err)
	s.Equal("found", config.Resolver.LibraryPath)
}

func (s *ConfigTestSuite) TestLoadWithSearch_NotFound() {
	_, err := LoadWithSearch[BindingConfig]("no-such-config", []string{s.tempDir})
	s.Error(err)
	s.ErrorIs(err, ErrFileNotFound)
}

func (s *ConfigTestSuite) TestLoad_EnvOverrideWithDefaultPrefix() {
	path := s.createFile("prefix.yaml", "resolver:\n  header_path: from-file\n")

	s.T().Setenv("SLANG_RESOLVER_HEADER_PATH", "from-env")

	config, err := Load[BindingConfig](path, WithEnvPrefix(DefaultEnvPrefix))
	s.NoError(err)
	s.Equal("from-env", config.Resolver.HeaderPath)
}

func TestDefaultSearchPaths(t *testing.T) {
	paths := DefaultSearchPaths()
	if len(paths) < 2 {
		t.Fatalf("DefaultSearchPaths() = %v, want at least cwd and /etc/slang", paths)
	}
	if paths[0] != "." {
		t.Errorf("paths[0] = %q, want .", paths[0])
	}
	if paths[len(paths)-1] != "/etc/slang" {
		t.Errorf("last path = %q, want /etc/slang", paths[len(paths)-1])
	}
}

func TestGetConfigType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{filename: "a.yaml", want: "yaml"},
		{filename: "a.yml", want: "yaml"},
		{filename: "a.json", want: "json"},
		{filename: "a.toml", want: "toml"},
		{filename: "a.ini", want: "ini"},
		{filename: "a.env", want: "env"},
		{filename: "a.properties", want: "properties"},
		{filename: "a.conf", want: ""},
		{filename: "noext", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := GetConfigType(tt.filename); got != tt.want {
				t.Errorf("GetConfigType(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
