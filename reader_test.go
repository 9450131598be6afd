package mal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStr_Atoms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{"positive number", "42", Number(42)},
		{"negative number", "-17", Number(-17)},
		{"true literal", "true", True},
		{"false literal", "false", False},
		{"nil literal", "nil", Nil},
		{"symbol", "abc", Symbol{Name: "abc"}},
		{"keyword", ":key", Keyword{Name: "key"}},
		{"string with escapes", `"a\nb\"c\\d"`, Str{Value: "a\nb\"c\\d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ReadStr(tt.input)
			require.NoError(t, err)
			assert.True(t, Equal(tt.expected, v))
		})
	}
}

func TestReadStr_Collections(t *testing.T) {
	v, err := ReadStr("(1 2 (3))")
	require.NoError(t, err)
	assert.True(t, Equal(NewList(Number(1), Number(2), NewList(Number(3))), v))

	v, err = ReadStr("[1 2 3]")
	require.NoError(t, err)
	assert.True(t, Equal(NewVector(Number(1), Number(2), Number(3)), v))

	v, err = ReadStr(`{"a" 1 :b 2}`)
	require.NoError(t, err)
	hm, ok := v.(*HashMap)
	require.True(t, ok)
	assert.Len(t, hm.Entries, 2)
}

func TestReadStr_ReaderMacros(t *testing.T) {
	tests := []struct {
		input    string
		expected Value
	}{
		{"'x", NewList(NewSymbol("quote"), Symbol{Name: "x"})},
		{"`x", NewList(NewSymbol("quasiquote"), Symbol{Name: "x"})},
		{"~x", NewList(NewSymbol("unquote"), Symbol{Name: "x"})},
		{"~@x", NewList(NewSymbol("splice-unquote"), Symbol{Name: "x"})},
		{"@x", NewList(NewSymbol("deref"), Symbol{Name: "x"})},
		{"^{:a 1} x", NewList(NewSymbol("with-meta"), Symbol{Name: "x"}, mustReadMap(t))},
	}
	for _, tt := range tests {
		v, err := ReadStr(tt.input)
		require.NoError(t, err)
		assert.True(t, Equal(tt.expected, v), "input %q: got %s", tt.input, PrStr(v, true))
	}
}

func mustReadMap(t *testing.T) Value {
	t.Helper()
	v, err := ReadStr(`{:a 1}`)
	require.NoError(t, err)
	return v
}

func TestReadStr_EmptyInputIsSilentNoOp(t *testing.T) {
	_, err := ReadStr("   ; just a comment\n  ")
	require.Error(t, err)
	assert.True(t, isReadNothing(err))
}

func TestReadStr_Errors(t *testing.T) {
	tests := []string{
		"(1 2",
		`"unterminated`,
		"(1 2]",
	}
	for _, input := range tests {
		_, err := ReadStr(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestReadStr_HashMapOddArityIsError(t *testing.T) {
	_, err := ReadStr(`{"a" 1 "b"}`)
	assert.Error(t, err)
}

func TestReadStr_HashMapRejectsNonStringKeys(t *testing.T) {
	_, err := ReadStr(`{1 2}`)
	assert.Error(t, err)
}
