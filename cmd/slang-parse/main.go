// slang-parse 把一个语言标签解析为结构化的语言记录.
//
// 用法：
//
//	slang-parse <lang_code>
//
// 环境变量：
//
//	SLANG_LIBRARY    原生库路径（默认可执行文件目录下的 slang.so）
//	SLANG_HEADER     伴随头文件路径（默认可执行文件目录下的 slang.h）
//	SLANG_CONFIG     配置文件路径（yaml/json/toml），环境变量优先；
//	                 未设置时在工作目录、可执行文件目录和 /etc/slang
//	                 下搜索名为 slang 的配置文件，找不到用纯默认值
//	SLANG_LOG_LEVEL  日志级别（默认 error，日志写到 stderr）
//
// 成功时向 stdout 输出单行 JSON 记录并以 0 退出；标签无法识别时
// 输出 Error: 0xNN 并以 1 退出；初始化或解码失败时输出错误信息
// 到 stderr 并以 1 退出.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tsukikage7/slang-go/config"
	"github.com/Tsukikage7/slang-go/logger"
	"github.com/Tsukikage7/slang-go/resolver"
)

const programName = "slang-parse"

// cliConfig 配置文件结构.
type cliConfig struct {
	Resolver resolver.Config `json:"resolver" toml:"resolver" yaml:"resolver" mapstructure:"resolver"`
	Log      logger.Config   `json:"log" toml:"log" yaml:"log" mapstructure:"log"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Printf("Usage: %s <lang_code>\n", programName)
		return 1
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	r, err := resolver.New(&cfg.Resolver, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer r.Close()

	rec, err := r.Resolve(context.Background(), args[0])
	if err != nil {
		// 非零错误码按原生 CLI 的惯例输出两位十六进制，
		// 绑定级失败（含解码失败）以可读信息区分.
		if code, ok := resolver.ErrorCode(err); ok {
			fmt.Printf("Error: 0x%02X\n", code)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	out, err := json.Marshal(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// loadConfig 组装 CLI 配置：配置文件提供基线，环境变量覆盖.
//
// SLANG_CONFIG 指定的文件必须存在；否则在默认路径下搜索，
// 搜不到不是错误，所有路径走默认值.
func loadConfig() (*cliConfig, error) {
	cfg := &cliConfig{}

	if path := os.Getenv("SLANG_CONFIG"); path != "" {
		loaded, err := config.Load[cliConfig](path,
			config.WithEnvPrefix(config.DefaultEnvPrefix),
			config.WithConfigType(config.GetConfigType(filepath.Base(path))),
		)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadWithSearch[cliConfig](config.DefaultConfigName, config.DefaultSearchPaths(),
			config.WithEnvPrefix(config.DefaultEnvPrefix),
		)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, config.ErrFileNotFound):
		default:
			return nil, err
		}
	}

	if lib := os.Getenv("SLANG_LIBRARY"); lib != "" {
		cfg.Resolver.LibraryPath = lib
	}
	if header := os.Getenv("SLANG_HEADER"); header != "" {
		cfg.Resolver.HeaderPath = header
	}

	// 日志写到 stderr，stdout 只输出结果.
	cfg.Log.Output = logger.OutputStderr
	if cfg.Log.Level == "" {
		cfg.Log.Level = logger.LevelError
	}
	if level := os.Getenv("SLANG_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}
