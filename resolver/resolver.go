// Package resolver 提供 slang 原生库的语言标签解析绑定.
//
// 原生库以 c-shared 形式分发，导出唯一入口 SlangParseLang：
// 输入为 (指针, 长度) 描述的 UTF-8 语言标签，输出为错误码加一段
// 制表符分隔的结果文本. 本包负责加载库、校验伴随头文件中的调用
// 约定声明、跨边界传参并把结果解码为 Record.
//
// 标签的匹配和规范化完全由原生库完成，绑定不做任何预处理.
//
// 示例：
//
//	r, err := resolver.New(&resolver.Config{LibraryPath: "slang.so", HeaderPath: "slang.h"}, log)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	rec, err := r.Resolve(ctx, "en-US")
package resolver

import (
	"context"
	"sync/atomic"

	"github.com/Tsukikage7/slang-go/logger"
)

// 原生错误码常量，与导出层约定一致.
const (
	// CodeSuccess 解析成功.
	CodeSuccess uint8 = 0x00

	// CodeParse 原生侧语言数据库加载失败.
	CodeParse uint8 = 0x01

	// CodeNoSuchLang 语言标签无法识别.
	CodeNoSuchLang uint8 = 0x02
)

// Resolver 语言标签解析器接口.
type Resolver interface {
	// Resolve 将语言标签解析为结构化的 Record.
	//
	// ctx 仅用于日志和链路关联，原生调用本身不可取消.
	// 标签无法识别时返回 *ResolveError，原生返回的结果文本
	// 不符合约定时返回 *DecodeError.
	Resolve(ctx context.Context, tag string) (*Record, error)

	// Close 关闭解析器，之后的调用返回 ErrClosed.
	Close() error
}

// binding 对原生调用的最小抽象.
//
// 真实实现由平台相关文件提供，测试中可以用假实现替换，
// 使解码和错误分类逻辑在没有原生库的环境下也可验证.
type binding interface {
	invoke(tag string) (code uint8, payload string)
	close() error
}

// nativeResolver 基于已加载原生库的解析器实现.
type nativeResolver struct {
	binding binding
	logger  logger.Logger
	closed  atomic.Bool
}

// New 创建解析器并立即完成初始化.
//
// 初始化包括定位并加载原生库、提取和校验头文件中的接口声明、
// 注册导出符号. 任何一步失败都立即返回可区分的错误，不会交出
// 半初始化的实例. logger 是必需参数，不能为 nil.
func New(config *Config, log logger.Logger) (Resolver, error) {
	if log == nil {
		return nil, ErrNilLogger
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.ApplyDefaults()

	b, err := openBinding(config)
	if err != nil {
		return nil, err
	}

	log.Infof("[resolver] native library loaded: %s", config.LibraryPath)

	return &nativeResolver{
		binding: b,
		logger:  log,
	}, nil
}

// MustNew 创建解析器，失败时 panic.
func MustNew(config *Config, log logger.Logger) Resolver {
	r, err := New(config, log)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve 实现 Resolver 接口.
func (r *nativeResolver) Resolve(ctx context.Context, tag string) (*Record, error) {
	if r.closed.Load() {
		return nil, ErrClosed
	}

	code, payload := r.binding.invoke(tag)
	if code != CodeSuccess {
		// 非零错误码是正常的业务结果，结果文本不做任何解码.
		return nil, &ResolveError{Tag: tag, Code: code}
	}

	rec, err := decodeRecord(payload)
	if err != nil {
		// 约定失配，必须响亮地暴露而不是默默容忍.
		r.logger.WithContext(ctx).Errorf("[resolver] decode failure for tag %q: %v", tag, err)
		return nil, err
	}

	return rec, nil
}

// Close 实现 Resolver 接口.
//
// 原生库本身保持映射直到进程退出（卸载 c-shared 运行时的行为
// 未定义），Close 仅在绑定侧标记句柄不可用.
func (r *nativeResolver) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.binding.close()
}
