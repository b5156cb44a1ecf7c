package cdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExtract(t *testing.T) string {
	t.Helper()
	decl, err := Extract(slangHeader)
	require.NoError(t, err)
	return decl
}

func TestParse_RealDeclaration(t *testing.T) {
	decls, err := Parse(mustExtract(t))
	require.NoError(t, err)

	alias, ok := decls.Typedef("SlangInt8")
	require.True(t, ok)
	assert.Equal(t, "signed char", alias.Type)

	str, ok := decls.Struct("SlangString")
	require.True(t, ok)
	assert.Empty(t, str.Tag)
	require.Len(t, str.Fields, 2)
	assert.Equal(t, Field{Name: "p", Type: "const char*"}, str.Fields[0])
	assert.Equal(t, Field{Name: "n", Type: "ptrdiff_t"}, str.Fields[1])

	res, ok := decls.Struct("SlangParseLangResult")
	require.True(t, ok)
	assert.Equal(t, "SlangParseLangResult", res.Tag)
	require.Len(t, res.Fields, 2)
	assert.Equal(t, Field{Name: "errcode", Type: "SlangInt8"}, res.Fields[0])
	assert.Equal(t, Field{Name: "tabstr", Type: "char*"}, res.Fields[1])

	fn, ok := decls.Func("SlangParseLang")
	require.True(t, ok)
	assert.Equal(t, "SlangParseLangResult", fn.Return)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, Param{Name: "langCode", Type: "SlangString"}, fn.Params[0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		decl string
	}{
		{name: "unexpected token", decl: "static int x;"},
		{name: "illegal character", decl: "typedef int x[4];"},
		{name: "unterminated typedef", decl: "typedef signed char SlangInt8"},
		{name: "typedef without name", decl: "typedef int;"},
		{name: "struct without name", decl: "typedef struct { int a; };"},
		{name: "unterminated struct", decl: "typedef struct { int a;"},
		{name: "func without semicolon", decl: "extern int f(int a)"},
		{name: "func without name", decl: "extern f();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.decl)
			assert.ErrorIs(t, err, ErrBadDeclaration)
		})
	}
}

func TestParse_UnnamedAndPointerParams(t *testing.T) {
	decls, err := Parse("extern char* f(SlangString, const char *s, int n);")
	require.NoError(t, err)

	fn, ok := decls.Func("f")
	require.True(t, ok)
	assert.Equal(t, "char*", fn.Return)
	require.Len(t, fn.Params, 3)
	assert.Equal(t, Param{Name: "", Type: "SlangString"}, fn.Params[0])
	assert.Equal(t, Param{Name: "s", Type: "const char*"}, fn.Params[1])
	assert.Equal(t, Param{Name: "n", Type: "int"}, fn.Params[2])
}

func TestVerify(t *testing.T) {
	decls, err := Parse(mustExtract(t))
	require.NoError(t, err)
	assert.NoError(t, Verify(decls))
}

func TestVerify_Drift(t *testing.T) {
	tests := []struct {
		name string
		decl string
	}{
		{
			name: "nil declarations",
			decl: "",
		},
		{
			name: "missing int8 alias",
			decl: `typedef struct { const char *p; ptrdiff_t n; } SlangString;`,
		},
		{
			name: "wrong alias type",
			decl: `typedef unsigned char SlangInt8;
				typedef struct { const char *p; ptrdiff_t n; } SlangString;
				typedef struct { SlangInt8 errcode; char* tabstr; } SlangParseLangResult;
				extern SlangParseLangResult SlangParseLang(SlangString langCode);`,
		},
		{
			name: "swapped string fields",
			decl: `typedef signed char SlangInt8;
				typedef struct { ptrdiff_t n; const char *p; } SlangString;
				typedef struct { SlangInt8 errcode; char* tabstr; } SlangParseLangResult;
				extern SlangParseLangResult SlangParseLang(SlangString langCode);`,
		},
		{
			name: "extra result field",
			decl: `typedef signed char SlangInt8;
				typedef struct { const char *p; ptrdiff_t n; } SlangString;
				typedef struct { SlangInt8 errcode; char* tabstr; int extra; } SlangParseLangResult;
				extern SlangParseLangResult SlangParseLang(SlangString langCode);`,
		},
		{
			name: "renamed function",
			decl: `typedef signed char SlangInt8;
				typedef struct { const char *p; ptrdiff_t n; } SlangString;
				typedef struct { SlangInt8 errcode; char* tabstr; } SlangParseLangResult;
				extern SlangParseLangResult SlangResolveLang(SlangString langCode);`,
		},
		{
			name: "wrong return type",
			decl: `typedef signed char SlangInt8;
				typedef struct { const char *p; ptrdiff_t n; } SlangString;
				typedef struct { SlangInt8 errcode; char* tabstr; } SlangParseLangResult;
				extern SlangInt8 SlangParseLang(SlangString langCode);`,
		},
		{
			name: "wrong parameter type",
			decl: `typedef signed char SlangInt8;
				typedef struct { const char *p; ptrdiff_t n; } SlangString;
				typedef struct { SlangInt8 errcode; char* tabstr; } SlangParseLangResult;
				extern SlangParseLangResult SlangParseLang(const char *s);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decls *Declarations
			if tt.decl != "" {
				var err error
				decls, err = Parse(tt.decl)
				require.NoError(t, err)
			}
			assert.ErrorIs(t, Verify(decls), ErrContractMismatch)
		})
	}
}
