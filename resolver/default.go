package resolver

import (
	"context"
	"sync"

	"github.com/Tsukikage7/slang-go/logger"
)

// 包级默认解析器，延迟到首次使用时初始化.
//
// 初始化错误是粘性的：一旦失败，后续调用返回同一个错误，
// 不会重试. 导入本包没有任何副作用.
var (
	defaultOnce     sync.Once
	defaultResolver Resolver
	defaultErr      error
)

// Default 返回默认配置的单例解析器.
//
// 原生库和头文件从可执行文件同目录加载，日志被丢弃.
// 需要自定义路径或日志时使用 New.
func Default() (Resolver, error) {
	defaultOnce.Do(func() {
		defaultResolver, defaultErr = New(&Config{}, logger.NewNop())
	})
	return defaultResolver, defaultErr
}

// Resolve 使用默认解析器解析语言标签.
func Resolve(ctx context.Context, tag string) (*Record, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Resolve(ctx, tag)
}
