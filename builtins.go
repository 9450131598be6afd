package mal

import (
	"strings"
	"time"
)

// NewRootEnv builds the root environment: every built-in primitive
// bound under its Mal name, *ARGV* and *host-language* bound per opts,
// then the three library forms from lib.go self-evaluated on top.
func NewRootEnv(opts Options) (*Env, error) {
	env := NewEnv(nil)
	for name, fn := range namespace() {
		env.Define(name, &BuiltinFn{Name: name, Fn: fn})
	}

	argv := make([]Value, len(opts.Argv))
	for i, a := range opts.Argv {
		argv[i] = Str{Value: a}
	}
	env.Define("*ARGV*", NewList(argv...))
	env.Define("*host-language*", Str{Value: opts.HostLanguage})

	if err := loadLibrary(env); err != nil {
		return nil, err
	}
	return env, nil
}

// namespace returns every built-in, split by sub-concern: this file
// holds arithmetic, comparison, printing, type predicates,
// constructors, metadata, atoms, throw and time-ms; sequence/map/IO
// builtins live in their own files.
func namespace() map[string]Fn {
	ns := map[string]Fn{}
	addArith(ns)
	addPrinting(ns)
	addTypePredicates(ns)
	addConstructors(ns)
	addMeta(ns)
	addAtoms(ns)
	addThrow(ns)
	mergeInto(ns, sequenceBuiltins())
	mergeInto(ns, mapBuiltins())
	mergeInto(ns, ioBuiltins())
	return ns
}

func mergeInto(dst, src map[string]Fn) {
	for k, v := range src {
		dst[k] = v
	}
}

func asNumber(v Value) (int64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, NewError("expected number, got %s", TypeName(v))
	}
	return int64(n), nil
}

func checkArity(name string, args []Value, want int) error {
	if len(args) != want {
		return NewError("%s: expected %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func addArith(ns map[string]Fn) {
	binNum := func(name string, f func(a, b int64) (int64, error)) Fn {
		return func(args []Value) (Value, error) {
			if err := checkArity(name, args, 2); err != nil {
				return nil, err
			}
			a, err := asNumber(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asNumber(args[1])
			if err != nil {
				return nil, err
			}
			r, err := f(a, b)
			if err != nil {
				return nil, err
			}
			return Number(r), nil
		}
	}
	ns["+"] = binNum("+", func(a, b int64) (int64, error) { return a + b, nil })
	ns["-"] = binNum("-", func(a, b int64) (int64, error) { return a - b, nil })
	ns["*"] = binNum("*", func(a, b int64) (int64, error) { return a * b, nil })
	ns["/"] = binNum("/", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, NewError("division by zero")
		}
		return a / b, nil
	})

	cmp := func(name string, f func(a, b int64) bool) Fn {
		return func(args []Value) (Value, error) {
			if err := checkArity(name, args, 2); err != nil {
				return nil, err
			}
			a, err := asNumber(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asNumber(args[1])
			if err != nil {
				return nil, err
			}
			return BoolOf(f(a, b)), nil
		}
	}
	ns["<"] = cmp("<", func(a, b int64) bool { return a < b })
	ns["<="] = cmp("<=", func(a, b int64) bool { return a <= b })
	ns[">"] = cmp(">", func(a, b int64) bool { return a > b })
	ns[">="] = cmp(">=", func(a, b int64) bool { return a >= b })

	ns["="] = func(args []Value) (Value, error) {
		if err := checkArity("=", args, 2); err != nil {
			return nil, err
		}
		return BoolOf(Equal(args[0], args[1])), nil
	}
}

func addPrinting(ns map[string]Fn) {
	ns["prn"] = func(args []Value) (Value, error) {
		printJoined(args, true, " ")
		stdout.WriteString("\n")
		stdout.Flush()
		return Nil, nil
	}
	ns["println"] = func(args []Value) (Value, error) {
		printJoined(args, false, " ")
		stdout.WriteString("\n")
		stdout.Flush()
		return Nil, nil
	}
	ns["pr-str"] = func(args []Value) (Value, error) {
		return Str{Value: joinValues(args, true, " ")}, nil
	}
	ns["str"] = func(args []Value) (Value, error) {
		return Str{Value: joinValues(args, false, "")}, nil
	}
}

func joinValues(args []Value, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = PrStr(a, readable)
	}
	return strings.Join(parts, sep)
}

func printJoined(args []Value, readable bool, sep string) {
	stdout.WriteString(joinValues(args, readable, sep))
}

func addTypePredicates(ns map[string]Fn) {
	pred := func(f func(Value) bool) Fn {
		return func(args []Value) (Value, error) {
			if err := checkArity("predicate", args, 1); err != nil {
				return nil, err
			}
			return BoolOf(f(args[0])), nil
		}
	}
	ns["nil?"] = pred(func(v Value) bool { return v == Nil })
	ns["true?"] = pred(func(v Value) bool { return v == True })
	ns["false?"] = pred(func(v Value) bool { return v == False })
	ns["symbol?"] = pred(func(v Value) bool { _, ok := v.(Symbol); return ok })
	ns["keyword?"] = pred(func(v Value) bool { _, ok := v.(Keyword); return ok })
	ns["string?"] = pred(func(v Value) bool { _, ok := v.(Str); return ok })
	ns["number?"] = pred(func(v Value) bool { _, ok := v.(Number); return ok })
	ns["list?"] = pred(func(v Value) bool { _, ok := v.(*List); return ok })
	ns["vector?"] = pred(func(v Value) bool { _, ok := v.(*Vector); return ok })
	ns["map?"] = pred(func(v Value) bool { _, ok := v.(*HashMap); return ok })
	ns["atom?"] = pred(func(v Value) bool { _, ok := v.(*Atom); return ok })
	ns["sequential?"] = pred(func(v Value) bool {
		switch v.(type) {
		case *List, *Vector:
			return true
		default:
			return false
		}
	})
	ns["fn?"] = pred(func(v Value) bool {
		switch t := v.(type) {
		case *BuiltinFn:
			return true
		case *Closure:
			return !t.IsMacro
		default:
			return false
		}
	})
	ns["macro?"] = pred(func(v Value) bool {
		cl, ok := v.(*Closure)
		return ok && cl.IsMacro
	})
}

func addConstructors(ns map[string]Fn) {
	ns["symbol"] = func(args []Value) (Value, error) {
		if err := checkArity("symbol", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, NewError("symbol: expected string, got %s", TypeName(args[0]))
		}
		return Symbol{Name: s.Value}, nil
	}
	ns["keyword"] = func(args []Value) (Value, error) {
		if err := checkArity("keyword", args, 1); err != nil {
			return nil, err
		}
		switch t := args[0].(type) {
		case Str:
			return Keyword{Name: t.Value}, nil
		case Keyword:
			return t, nil
		default:
			return nil, NewError("keyword: expected string or keyword, got %s", TypeName(args[0]))
		}
	}
}

func addMeta(ns map[string]Fn) {
	ns["meta"] = func(args []Value) (Value, error) {
		if err := checkArity("meta", args, 1); err != nil {
			return nil, err
		}
		return Meta(args[0])
	}
	ns["with-meta"] = func(args []Value) (Value, error) {
		if err := checkArity("with-meta", args, 2); err != nil {
			return nil, err
		}
		return WithMeta(args[0], args[1])
	}
}

func addAtoms(ns map[string]Fn) {
	ns["atom"] = func(args []Value) (Value, error) {
		if err := checkArity("atom", args, 1); err != nil {
			return nil, err
		}
		return NewAtom(args[0]), nil
	}
	ns["deref"] = func(args []Value) (Value, error) {
		if err := checkArity("deref", args, 1); err != nil {
			return nil, err
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, NewError("deref: expected atom, got %s", TypeName(args[0]))
		}
		return a.Deref(), nil
	}
	ns["reset!"] = func(args []Value) (Value, error) {
		if err := checkArity("reset!", args, 2); err != nil {
			return nil, err
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, NewError("reset!: expected atom, got %s", TypeName(args[0]))
		}
		return a.Reset(args[1]), nil
	}
	ns["swap!"] = func(args []Value) (Value, error) {
		if len(args) < 2 {
			return nil, NewError("swap!: expected at least 2 arguments, got %d", len(args))
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, NewError("swap!: expected atom, got %s", TypeName(args[0]))
		}
		callArgs := append([]Value{a.Deref()}, args[2:]...)
		result, err := Apply(args[1], callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(result), nil
	}
}

func addThrow(ns map[string]Fn) {
	ns["throw"] = func(args []Value) (Value, error) {
		if err := checkArity("throw", args, 1); err != nil {
			return nil, err
		}
		return nil, NewThrow(args[0])
	}
	ns["time-ms"] = func(args []Value) (Value, error) {
		if err := checkArity("time-ms", args, 0); err != nil {
			return nil, err
		}
		return Number(time.Now().UnixMilli()), nil
	}
}
