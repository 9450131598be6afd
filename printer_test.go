package mal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrStr_Readable(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		expected string
	}{
		{"nil", Nil, "nil"},
		{"true", True, "true"},
		{"number", Number(-3), "-3"},
		{"symbol", Symbol{Name: "abc"}, "abc"},
		{"keyword", Keyword{Name: "key"}, ":key"},
		{"string with escapes", Str{Value: "a\nb\"c\\d"}, `"a\nb\"c\\d"`},
		{"list", NewList(Number(1), Number(2)), "(1 2)"},
		{"vector", NewVector(Number(1), Number(2)), "[1 2]"},
		{"nested list", NewList(Number(1), NewList(Number(2), Number(3))), "(1 (2 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrStr(tt.v, true))
		})
	}
}

func TestPrStr_DisplayDoesNotQuoteStrings(t *testing.T) {
	assert.Equal(t, "hello", PrStr(Str{Value: "hello"}, false))
}

func TestPrStr_FunctionsAreOpaque(t *testing.T) {
	assert.Equal(t, "#<function>", PrStr(&BuiltinFn{}, true))
	assert.Equal(t, "#<function>", PrStr(&Closure{}, true))
}

func TestPrStr_Atom(t *testing.T) {
	a := NewAtom(Number(10))
	assert.Equal(t, "(atom 10)", PrStr(a, true))
}

func TestRoundTrip_GroundValues(t *testing.T) {
	inputs := []string{
		"42", "-1", "true", "false", "nil", "abc", ":kw",
		`"hello world"`, "(1 2 3)", "[1 2 [3 4]]",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := ReadStr(in)
			assert.NoError(t, err)
			printed := PrStr(v, true)
			v2, err := ReadStr(printed)
			assert.NoError(t, err)
			assert.True(t, Equal(v, v2))
		})
	}
}
