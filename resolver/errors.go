package resolver

import (
	"errors"
	"fmt"
)

// 预定义错误常量，均为初始化类失败.
var (
	// ErrNilConfig 配置为空.
	ErrNilConfig = errors.New("解析器配置为空")

	// ErrNilLogger 日志记录器为空.
	ErrNilLogger = errors.New("日志记录器为空")

	// ErrClosed 解析器已关闭.
	ErrClosed = errors.New("解析器已关闭")

	// ErrLibraryNotFound 原生库文件不存在.
	ErrLibraryNotFound = errors.New("原生库文件不存在")

	// ErrLibraryOpen 加载原生库失败.
	ErrLibraryOpen = errors.New("加载原生库失败")

	// ErrSymbolNotFound 原生库缺少导出符号.
	ErrSymbolNotFound = errors.New("原生库缺少导出符号")

	// ErrUnsupportedPlatform 当前平台不支持动态加载原生库.
	ErrUnsupportedPlatform = errors.New("当前平台不支持动态加载原生库")
)

// ResolveError 原生例程返回的非零错误码.
//
// 这是调用方需要分支处理的正常业务结果（如标签无法识别），
// 与初始化失败和解码失败是不同的错误类别.
type ResolveError struct {
	Tag  string
	Code uint8
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolver: native error 0x%02X for tag %q", e.Code, e.Tag)
}

// DecodeError 成功结果的文本不符合绑定与原生库的约定.
//
// 字段数不是 8 或 clidHex 不是合法十六进制时返回，
// 表明绑定和原生库的版本失配.
type DecodeError struct {
	Reason  string
	Payload string
}

func (e *DecodeError) Error() string {
	return "resolver: decode failure: " + e.Reason
}

// ErrorCode 提取错误中携带的原生错误码.
func ErrorCode(err error) (uint8, bool) {
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Code, true
	}
	return 0, false
}

// IsNoSuchLang 判断错误是否为“标签无法识别”.
func IsNoSuchLang(err error) bool {
	code, ok := ErrorCode(err)
	return ok && code == CodeNoSuchLang
}
