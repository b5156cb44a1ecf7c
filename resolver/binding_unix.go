//go:build (linux || darwin) && (amd64 || arm64)

package resolver

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"

	"github.com/Tsukikage7/slang-go/cdef"
)

// slangString 对应头文件中的 SlangString：(指针, 长度) 描述的
// 字节序列，原生侧不要求 NUL 结尾.
type slangString struct {
	P *byte
	N int
}

// slangParseLangResult 对应头文件中的 SlangParseLangResult.
type slangParseLangResult struct {
	Errcode int8
	Tabstr  *byte
}

// puregoBinding 基于 purego dlopen 的原生绑定实现.
type puregoBinding struct {
	handle    uintptr
	parseLang func(slangString) slangParseLangResult
	free      func(unsafe.Pointer)
}

// openBinding 加载原生库并注册导出符号.
//
// 头文件中的接口声明先经 cdef 提取、解析并与本文件编译时假定的
// 调用约定核对，核对通过后才注册符号，避免带着漂移的约定发起调用.
func openBinding(config *Config) (binding, error) {
	decl, err := cdef.ExtractFile(config.HeaderPath)
	if err != nil {
		return nil, err
	}
	decls, err := cdef.Parse(decl)
	if err != nil {
		return nil, err
	}
	if err := cdef.Verify(decls); err != nil {
		return nil, err
	}

	if _, err := os.Stat(config.LibraryPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, config.LibraryPath)
	}

	handle, err := purego.Dlopen(config.LibraryPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryOpen, config.LibraryPath, err)
	}

	b := &puregoBinding{handle: handle}
	if err := b.register(config.LibraryPath); err != nil {
		return nil, err
	}
	return b, nil
}

// register 注册导出符号.
//
// purego.RegisterLibFunc 在符号缺失时 panic，这里转换为可判别的错误.
func (b *puregoBinding) register(libPath string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, libPath, r)
		}
	}()

	purego.RegisterLibFunc(&b.parseLang, b.handle, "SlangParseLang")
	// 结果文本在原生堆上分配，通过库自身链接的 free 释放.
	purego.RegisterLibFunc(&b.free, b.handle, "free")
	return nil
}

// invoke 发起一次原生调用并取回结果.
func (b *puregoBinding) invoke(tag string) (uint8, string) {
	data := []byte(tag)
	var p *byte
	if len(data) > 0 {
		p = &data[0]
	}

	res := b.parseLang(slangString{P: p, N: len(data)})
	runtime.KeepAlive(data)

	if res.Tabstr == nil {
		return uint8(res.Errcode), ""
	}

	payload := unix.BytePtrToString(res.Tabstr)
	b.free(unsafe.Pointer(res.Tabstr))
	return uint8(res.Errcode), payload
}

// close 丢弃句柄引用.
//
// 不调用 dlclose：卸载 c-shared 运行时的行为未定义，
// 库保持映射直到进程退出.
func (b *puregoBinding) close() error {
	b.handle = 0
	return nil
}
