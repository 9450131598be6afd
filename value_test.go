package mal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"nil equals nil", Nil, Nil, true},
		{"true equals true", True, True, true},
		{"true does not equal false", True, False, false},
		{"numbers compare by value", Number(7), Number(7), true},
		{"different numbers", Number(7), Number(8), false},
		{"symbols compare by name", Symbol{Name: "x"}, Symbol{Name: "x"}, true},
		{"keyword vs symbol of same name", Keyword{Name: "x"}, Symbol{Name: "x"}, false},
		{"strings compare by value", Str{Value: "hi"}, Str{Value: "hi"}, true},
		{
			"list equals vector with same items",
			NewList(Number(1), Number(2)),
			NewVector(Number(1), Number(2)),
			true,
		},
		{
			"list differs by length",
			NewList(Number(1)),
			NewList(Number(1), Number(2)),
			false,
		},
		{
			"hash-maps compare as set of entries",
			mustHashMap(t, Str{Value: "a"}, Number(1)),
			mustHashMap(t, Str{Value: "a"}, Number(1)),
			true,
		},
		{
			"metadata never participates in equality",
			&List{Items: []Value{Number(1)}, Meta: Str{Value: "m1"}},
			&List{Items: []Value{Number(1)}, Meta: Str{Value: "m2"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}

func TestEqual_ClosuresAndBuiltinsAreReferenceIdentity(t *testing.T) {
	cl1 := &Closure{Body: Nil}
	cl2 := &Closure{Body: Nil}
	assert.True(t, Equal(cl1, cl1))
	assert.False(t, Equal(cl1, cl2))

	fn1 := &BuiltinFn{Name: "f", Fn: func([]Value) (Value, error) { return Nil, nil }}
	assert.True(t, Equal(fn1, fn1))
}

func TestAtomSharesCellAcrossHolders(t *testing.T) {
	a := NewAtom(Number(10))
	holder := a
	holder.Reset(Number(20))
	assert.Equal(t, Number(20), a.Deref())
}

func TestWithMetaDoesNotAffectEquality(t *testing.T) {
	l := NewList(Number(1))
	withMeta, err := WithMeta(l, Str{Value: "tag"})
	assert.NoError(t, err)
	assert.True(t, Equal(l, withMeta))

	meta, err := Meta(withMeta)
	assert.NoError(t, err)
	assert.Equal(t, Str{Value: "tag"}, meta)
}

func TestMetaOnScalarIsError(t *testing.T) {
	_, err := Meta(Number(1))
	assert.Error(t, err)
}

func mustHashMap(t *testing.T, kv ...Value) *HashMap {
	t.Helper()
	hm := NewHashMap()
	for i := 0; i < len(kv); i += 2 {
		k, err := NewHashKey(kv[i])
		assert.NoError(t, err)
		hm.Entries[k] = kv[i+1]
	}
	return hm
}
