package cache

import "errors"

// 预定义错误常量.
var (
	// ErrNilConfig 缓存配置为空.
	ErrNilConfig = errors.New("缓存配置为空")

	// ErrNilLogger 日志记录器为空.
	ErrNilLogger = errors.New("日志记录器为空")

	// ErrNilResolver 被装饰的解析器为空.
	ErrNilResolver = errors.New("被装饰的解析器为空")

	// ErrNilCache 缓存实例为空.
	ErrNilCache = errors.New("缓存实例为空")

	// ErrInvalidMaxEntries 最大条目数不能为负.
	ErrInvalidMaxEntries = errors.New("最大条目数不能为负")
)
