package cdef

import "fmt"

// 绑定编译时假定的调用约定.
//
// 与 resolver 包中注册的 Go 侧签名一一对应，任何一处发生漂移都
// 说明头文件和二进制库的版本与绑定不匹配.
const (
	typeInt8   = "SlangInt8"
	typeString = "SlangString"
	typeResult = "SlangParseLangResult"
	funcParse  = "SlangParseLang"
)

// Verify 校验解析出的声明仍与绑定的调用约定一致.
//
// 校验内容：SlangInt8 别名、SlangString 与 SlangParseLangResult
// 的字段顺序和类型、SlangParseLang 的签名. 任何偏差都包装
// ErrContractMismatch 返回.
func Verify(decls *Declarations) error {
	if decls == nil {
		return fmt.Errorf("%w: 声明为空", ErrContractMismatch)
	}

	if err := verifyInt8(decls); err != nil {
		return err
	}
	if err := verifyString(decls); err != nil {
		return err
	}
	if err := verifyResult(decls); err != nil {
		return err
	}
	return verifyParseFunc(decls)
}

func verifyInt8(decls *Declarations) error {
	t, ok := decls.Typedef(typeInt8)
	if !ok {
		return fmt.Errorf("%w: 缺少类型别名 %s", ErrContractMismatch, typeInt8)
	}
	if t.Type != "signed char" {
		return fmt.Errorf("%w: %s 应为 signed char，实际为 %q", ErrContractMismatch, typeInt8, t.Type)
	}
	return nil
}

func verifyString(decls *Declarations) error {
	s, ok := decls.Struct(typeString)
	if !ok {
		return fmt.Errorf("%w: 缺少结构体 %s", ErrContractMismatch, typeString)
	}
	want := []Field{
		{Name: "p", Type: "const char*"},
		{Name: "n", Type: "ptrdiff_t"},
	}
	return verifyFields(typeString, s.Fields, want)
}

func verifyResult(decls *Declarations) error {
	s, ok := decls.Struct(typeResult)
	if !ok {
		return fmt.Errorf("%w: 缺少结构体 %s", ErrContractMismatch, typeResult)
	}
	want := []Field{
		{Name: "errcode", Type: typeInt8},
		{Name: "tabstr", Type: "char*"},
	}
	return verifyFields(typeResult, s.Fields, want)
}

func verifyFields(owner string, got, want []Field) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %s 应有 %d 个字段，实际为 %d 个",
			ErrContractMismatch, owner, len(want), len(got))
	}
	for i, w := range want {
		g := got[i]
		if g.Name != w.Name || g.Type != w.Type {
			return fmt.Errorf("%w: %s 第 %d 个字段应为 %s %s，实际为 %s %s",
				ErrContractMismatch, owner, i+1, w.Type, w.Name, g.Type, g.Name)
		}
	}
	return nil
}

func verifyParseFunc(decls *Declarations) error {
	f, ok := decls.Func(funcParse)
	if !ok {
		return fmt.Errorf("%w: 缺少函数 %s", ErrContractMismatch, funcParse)
	}
	if f.Return != typeResult {
		return fmt.Errorf("%w: %s 返回类型应为 %s，实际为 %q",
			ErrContractMismatch, funcParse, typeResult, f.Return)
	}
	if len(f.Params) != 1 || f.Params[0].Type != typeString {
		return fmt.Errorf("%w: %s 应接受单个 %s 参数",
			ErrContractMismatch, funcParse, typeString)
	}
	return nil
}
