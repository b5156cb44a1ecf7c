package cdef

import (
	"fmt"
	"strings"
)

// Typedef 类型别名声明，如 typedef signed char SlangInt8.
type Typedef struct {
	Name string
	Type string
}

// Field 结构体字段.
//
// Type 为规范化后的类型文本，指针星号紧跟类型末尾，如 "const char*".
type Field struct {
	Name string
	Type string
}

// Struct 结构体类型声明.
type Struct struct {
	Tag    string
	Name   string
	Fields []Field
}

// Param 函数参数.
type Param struct {
	Name string
	Type string
}

// Func 导出函数声明.
type Func struct {
	Name   string
	Return string
	Params []Param
}

// Declarations 一段接口声明文本解析出的全部声明.
type Declarations struct {
	Typedefs []Typedef
	Structs  []Struct
	Funcs    []Func
}

// Typedef 按名称查找类型别名.
func (d *Declarations) Typedef(name string) (Typedef, bool) {
	for _, t := range d.Typedefs {
		if t.Name == name {
			return t, true
		}
	}
	return Typedef{}, false
}

// Struct 按名称查找结构体.
func (d *Declarations) Struct(name string) (Struct, bool) {
	for _, s := range d.Structs {
		if s.Name == name {
			return s, true
		}
	}
	return Struct{}, false
}

// Func 按名称查找函数.
func (d *Declarations) Func(name string) (Func, bool) {
	for _, f := range d.Funcs {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}

// Parse 解析提取出的接口声明文本.
//
// 支持的语法仅覆盖 slang 头文件实际使用的子集：
// typedef 别名、typedef struct 和 extern 函数声明.
func Parse(decl string) (*Declarations, error) {
	toks, err := tokenize(decl)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	decls := &Declarations{}

	for !p.done() {
		switch p.peek() {
		case "typedef":
			if err := p.parseTypedef(decls); err != nil {
				return nil, err
			}
		case "extern":
			if err := p.parseFunc(decls); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: 意外的标记 %q", ErrBadDeclaration, p.peek())
		}
	}

	return decls, nil
}

// tokenize 将声明文本切分为标识符和标点标记.
func tokenize(src string) ([]string, error) {
	var toks []string
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isIdentChar(c):
			j := i
			for j < len(src) && isIdentChar(src[j]) {
				j++
			}
			toks = append(toks, src[i:j])
			i = j
		case strings.IndexByte("{}();,*", c) >= 0:
			toks = append(toks, string(c))
			i++
		default:
			return nil, fmt.Errorf("%w: 非法字符 %q", ErrBadDeclaration, c)
		}
	}
	return toks, nil
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parser 基于标记流的递归下降解析器.
type parser struct {
	toks []string
	pos  int
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) expect(tok string) error {
	if got := p.next(); got != tok {
		return fmt.Errorf("%w: 期望 %q 但遇到 %q", ErrBadDeclaration, tok, got)
	}
	return nil
}

// collectUntil 收集直到任一终止标记（不消费终止标记）.
func (p *parser) collectUntil(stops ...string) ([]string, error) {
	var out []string
	for {
		if p.done() {
			return nil, fmt.Errorf("%w: 声明未结束", ErrBadDeclaration)
		}
		t := p.peek()
		for _, s := range stops {
			if t == s {
				return out, nil
			}
		}
		out = append(out, p.next())
	}
}

// parseTypedef 解析 typedef 别名或 typedef struct.
func (p *parser) parseTypedef(decls *Declarations) error {
	if err := p.expect("typedef"); err != nil {
		return err
	}

	if p.peek() == "struct" {
		return p.parseStruct(decls)
	}

	toks, err := p.collectUntil(";")
	if err != nil {
		return err
	}
	if err := p.expect(";"); err != nil {
		return err
	}
	if len(toks) < 2 {
		return fmt.Errorf("%w: typedef 缺少类型或名称", ErrBadDeclaration)
	}

	name := toks[len(toks)-1]
	typ := normalizeType(toks[:len(toks)-1])
	decls.Typedefs = append(decls.Typedefs, Typedef{Name: name, Type: typ})
	return nil
}

// parseStruct 解析 typedef struct [tag] { fields } name ;
func (p *parser) parseStruct(decls *Declarations) error {
	if err := p.expect("struct"); err != nil {
		return err
	}

	var tag string
	if p.peek() != "{" {
		tag = p.next()
	}
	if err := p.expect("{"); err != nil {
		return err
	}

	var fields []Field
	for p.peek() != "}" {
		toks, err := p.collectUntil(";", "}")
		if err != nil {
			return err
		}
		if err := p.expect(";"); err != nil {
			return err
		}

		name, typ, err := splitDeclarator(toks)
		if err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("%w: 结构体字段缺少名称", ErrBadDeclaration)
		}
		fields = append(fields, Field{Name: name, Type: typ})
	}
	if err := p.expect("}"); err != nil {
		return err
	}

	name := p.next()
	if name == "" || name == ";" {
		return fmt.Errorf("%w: typedef struct 缺少名称", ErrBadDeclaration)
	}
	if err := p.expect(";"); err != nil {
		return err
	}

	decls.Structs = append(decls.Structs, Struct{Tag: tag, Name: name, Fields: fields})
	return nil
}

// parseFunc 解析 extern 返回类型 名称 ( 参数列表 ) ;
func (p *parser) parseFunc(decls *Declarations) error {
	if err := p.expect("extern"); err != nil {
		return err
	}

	head, err := p.collectUntil("(")
	if err != nil {
		return err
	}
	if err := p.expect("("); err != nil {
		return err
	}
	if len(head) < 2 {
		return fmt.Errorf("%w: 函数声明缺少返回类型或名称", ErrBadDeclaration)
	}

	fn := Func{
		Name:   head[len(head)-1],
		Return: normalizeType(head[:len(head)-1]),
	}

	for p.peek() != ")" {
		toks, err := p.collectUntil(",", ")")
		if err != nil {
			return err
		}
		if p.peek() == "," {
			p.next()
		}

		name, typ, err := splitDeclarator(toks)
		if err != nil {
			return err
		}
		fn.Params = append(fn.Params, Param{Name: name, Type: typ})
	}
	if err := p.expect(")"); err != nil {
		return err
	}
	if err := p.expect(";"); err != nil {
		return err
	}

	decls.Funcs = append(decls.Funcs, fn)
	return nil
}

// splitDeclarator 将一段声明符标记拆为名称和类型.
//
// 规则与头文件实际用法匹配：末尾的标识符是名称，其余构成类型；
// 仅有一个标识符（如未命名参数 "SlangString"）时名称为空.
func splitDeclarator(toks []string) (name, typ string, err error) {
	if len(toks) == 0 {
		return "", "", fmt.Errorf("%w: 空声明符", ErrBadDeclaration)
	}

	last := toks[len(toks)-1]
	if last == "*" {
		return "", normalizeType(toks), nil
	}
	if len(toks) == 1 {
		return "", normalizeType(toks), nil
	}
	return last, normalizeType(toks[:len(toks)-1]), nil
}

// normalizeType 规范化类型文本：标识符以单个空格连接，星号紧贴前文.
func normalizeType(toks []string) string {
	var b strings.Builder
	for _, t := range toks {
		if t == "*" {
			b.WriteString("*")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t)
	}
	return b.String()
}
