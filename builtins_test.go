package mal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins_PrStrAndStr(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, Str{Value: `"hi" 1`}, evalStr(t, `(pr-str "hi" 1)`, env))
	assert.Equal(t, Str{Value: "hi1"}, evalStr(t, `(str "hi" 1)`, env))
}

func TestBuiltins_SeqOperations(t *testing.T) {
	env := newTestEnv(t)
	assert.True(t, Equal(NewList(Number(0), Number(1), Number(2)), evalStr(t, "(concat (list 0) (list 1 2))", env)))
	assert.True(t, Equal(NewVector(Number(1), Number(2)), evalStr(t, "(vec (list 1 2))", env)))
	assert.True(t, Equal(NewList(Number(2), Number(1)), evalStr(t, "(conj (list 1) 2)", env)))
	assert.True(t, Equal(NewVector(Number(1), Number(2)), evalStr(t, "(conj [1] 2)", env)))
}

func TestBuiltins_SeqOnStrings(t *testing.T) {
	env := newTestEnv(t)
	v := evalStr(t, `(seq "ab")`, env)
	assert.True(t, Equal(NewList(Str{Value: "a"}, Str{Value: "b"}), v))
	assert.Equal(t, Nil, evalStr(t, `(seq "")`, env))
	assert.Equal(t, Nil, evalStr(t, `(seq nil)`, env))
}

func TestBuiltins_MapAndApply(t *testing.T) {
	env := newTestEnv(t)
	evalStr(t, "(def! double (fn* (x) (* x 2)))", env)
	v := evalStr(t, "(map double (list 1 2 3))", env)
	assert.True(t, Equal(NewList(Number(2), Number(4), Number(6)), v))

	v = evalStr(t, "(apply list 1 2 (list 3 4))", env)
	assert.True(t, Equal(NewList(Number(1), Number(2), Number(3), Number(4)), v))
}

func TestBuiltins_HashMapOperations(t *testing.T) {
	env := newTestEnv(t)
	evalStr(t, `(def! m (hash-map "a" 1))`, env)
	v := evalStr(t, `(assoc m "b" 2)`, env)
	hm, ok := v.(*HashMap)
	require.True(t, ok)
	assert.Len(t, hm.Entries, 2)

	// assoc must not mutate the original map
	orig := evalStr(t, "m", env).(*HashMap)
	assert.Len(t, orig.Entries, 1)

	v = evalStr(t, `(dissoc (assoc m "b" 2) "a")`, env)
	hm2 := v.(*HashMap)
	assert.Len(t, hm2.Entries, 1)

	assert.Equal(t, Number(1), evalStr(t, `(get m "a")`, env))
	assert.Equal(t, Nil, evalStr(t, `(get m "missing")`, env))
	assert.Equal(t, Nil, evalStr(t, `(get nil "a")`, env))
	assert.Equal(t, True, evalStr(t, `(contains? m "a")`, env))
}

func TestBuiltins_TypePredicates(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, True, evalStr(t, "(nil? nil)", env))
	assert.Equal(t, True, evalStr(t, "(list? (list 1))", env))
	assert.Equal(t, False, evalStr(t, "(list? [1])", env))
	assert.Equal(t, True, evalStr(t, "(sequential? [1])", env))
	assert.Equal(t, True, evalStr(t, "(fn? +)", env))
	evalStr(t, "(defmacro! m (fn* () 1))", env)
	assert.Equal(t, True, evalStr(t, "(macro? m)", env))
	assert.Equal(t, False, evalStr(t, "(fn? m)", env))
}

func TestBuiltins_ReadStringAndSymbolKeyword(t *testing.T) {
	env := newTestEnv(t)
	v := evalStr(t, `(read-string "(1 2 3)")`, env)
	assert.True(t, Equal(NewList(Number(1), Number(2), Number(3)), v))

	form, err := ReadStr(`(read-string "")`)
	require.NoError(t, err)
	_, err = Eval(form, env)
	require.Error(t, err)
	assert.Equal(t, "nothing to evaluate", err.Error())

	assert.True(t, Equal(Symbol{Name: "abc"}, evalStr(t, `(symbol "abc")`, env)))
	assert.True(t, Equal(Keyword{Name: "abc"}, evalStr(t, `(keyword "abc")`, env)))
	assert.True(t, Equal(Keyword{Name: "abc"}, evalStr(t, `(keyword :abc)`, env)))
}

func TestBuiltins_MetaRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	v := evalStr(t, `(meta (with-meta (fn* (a) a) {"k" 1}))`, env)
	hm, ok := v.(*HashMap)
	require.True(t, ok)
	assert.Len(t, hm.Entries, 1)
}

func TestBuiltins_HostLanguageAndArgv(t *testing.T) {
	opts := NewOptions()
	opts.Argv = []string{"x", "y"}
	env, err := NewRootEnv(opts)
	require.NoError(t, err)
	assert.Equal(t, Str{Value: "go"}, evalStr(t, "*host-language*", env))
	v := evalStr(t, "*ARGV*", env)
	assert.True(t, Equal(NewList(Str{Value: "x"}, Str{Value: "y"}), v))
}
