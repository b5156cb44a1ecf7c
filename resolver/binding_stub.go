//go:build !((linux || darwin) && (amd64 || arm64))

package resolver

import (
	"fmt"
	"runtime"
)

// openBinding 在不支持动态加载的平台上直接报告初始化失败.
func openBinding(config *Config) (binding, error) {
	return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, runtime.GOOS, runtime.GOARCH)
}
