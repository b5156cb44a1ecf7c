// Package cdef 提供原生接口声明的提取和校验功能.
//
// slang 原生库的 C 头文件同时服务于原生构建和绑定构建：
// 绑定侧需要的调用约定声明被两个哨兵标记包裹，提取时取两个
// 标记之间的文本并做必要的清理.
//
// 示例：
//
//	decl, err := cdef.ExtractFile("slang.h")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decls, err := cdef.Parse(decl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := cdef.Verify(decls); err != nil {
//	    log.Fatal(err)
//	}
package cdef

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// 哨兵标记常量.
const (
	// MarkerStart 声明区起始标记.
	MarkerStart = "#define SLANG_GO_CFFI_DEF_START"

	// MarkerEnd 声明区结束标记.
	MarkerEnd = "#ifndef SLANG_GO_CFFI_DEF_END"

	// MarkerClose 可选的起始闭合标记，出现在声明区开头时需要剥离.
	MarkerClose = "#endif"
)

// 预定义错误.
var (
	// ErrMissingStartMarker 头文件中缺少起始标记.
	ErrMissingStartMarker = errors.New("cdef: 头文件中缺少起始标记")

	// ErrMissingEndMarker 起始标记之后缺少结束标记.
	ErrMissingEndMarker = errors.New("cdef: 起始标记之后缺少结束标记")

	// ErrEmptyDeclaration 提取出的声明为空.
	ErrEmptyDeclaration = errors.New("cdef: 提取出的声明为空")

	// ErrBadDeclaration 声明文本语法错误.
	ErrBadDeclaration = errors.New("cdef: 声明文本语法错误")

	// ErrContractMismatch 声明与绑定编译时的调用约定不一致.
	ErrContractMismatch = errors.New("cdef: 声明与绑定的调用约定不一致")
)

// Extract 从头文件内容中提取哨兵标记之间的接口声明.
//
// 语义与原生构建保持一致：取 MarkerStart 的首次出现与其后
// MarkerEnd 的首次出现之间的文本，去除首尾空白；若剩余文本以
// MarkerClose 开头（头文件用 #ifndef/#endif 保护起始标记时会出现），
// 剥离一次后再去除空白.
func Extract(header string) (string, error) {
	start := strings.Index(header, MarkerStart)
	if start < 0 {
		return "", ErrMissingStartMarker
	}
	start += len(MarkerStart)

	end := strings.Index(header[start:], MarkerEnd)
	if end < 0 {
		return "", ErrMissingEndMarker
	}

	decl := strings.TrimSpace(header[start : start+end])
	if strings.HasPrefix(decl, MarkerClose) {
		decl = strings.TrimSpace(decl[len(MarkerClose):])
	}

	if decl == "" {
		return "", ErrEmptyDeclaration
	}
	return decl, nil
}

// ExtractFile 读取头文件并提取接口声明.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cdef: 读取头文件失败: %w", err)
	}
	return Extract(string(data))
}
