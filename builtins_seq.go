package mal

// sequenceBuiltins holds list/vector operations: constructors,
// predicates, and the traversal primitives (map, apply, conj, seq, ...)
// that need to call back into user code via Apply.
func sequenceBuiltins() map[string]Fn {
	return map[string]Fn{
		"list": func(args []Value) (Value, error) {
			return NewList(args...), nil
		},
		"vector": func(args []Value) (Value, error) {
			return NewVector(args...), nil
		},
		"empty?": func(args []Value) (Value, error) {
			if err := checkArity("empty?", args, 1); err != nil {
				return nil, err
			}
			items, err := asSeqItems(args[0])
			if err != nil {
				return nil, err
			}
			return BoolOf(len(items) == 0), nil
		},
		"count": func(args []Value) (Value, error) {
			if err := checkArity("count", args, 1); err != nil {
				return nil, err
			}
			if args[0] == Nil {
				return Number(0), nil
			}
			items, err := asSeqItems(args[0])
			if err != nil {
				return nil, err
			}
			return Number(len(items)), nil
		},
		"cons": func(args []Value) (Value, error) {
			if err := checkArity("cons", args, 2); err != nil {
				return nil, err
			}
			tail, err := asSeqItems(args[1])
			if err != nil {
				return nil, err
			}
			out := make([]Value, 0, len(tail)+1)
			out = append(out, args[0])
			out = append(out, tail...)
			return NewList(out...), nil
		},
		"concat": func(args []Value) (Value, error) {
			var out []Value
			for _, a := range args {
				items, err := asSeqItems(a)
				if err != nil {
					return nil, err
				}
				out = append(out, items...)
			}
			return NewList(out...), nil
		},
		"vec": func(args []Value) (Value, error) {
			if err := checkArity("vec", args, 1); err != nil {
				return nil, err
			}
			switch t := args[0].(type) {
			case *Vector:
				return t, nil
			case *List:
				return NewVector(t.Items...), nil
			default:
				return nil, NewError("vec: expected list or vector, got %s", TypeName(args[0]))
			}
		},
		"nth": func(args []Value) (Value, error) {
			if err := checkArity("nth", args, 2); err != nil {
				return nil, err
			}
			items, err := asSeqItems(args[0])
			if err != nil {
				return nil, err
			}
			idx, err := asNumber(args[1])
			if err != nil {
				return nil, err
			}
			if idx < 0 || int(idx) >= len(items) {
				return nil, NewError("nth: index %d out of range", idx)
			}
			return items[idx], nil
		},
		"first": func(args []Value) (Value, error) {
			if err := checkArity("first", args, 1); err != nil {
				return nil, err
			}
			if args[0] == Nil {
				return Nil, nil
			}
			items, err := asSeqItems(args[0])
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return Nil, nil
			}
			return items[0], nil
		},
		"rest": func(args []Value) (Value, error) {
			if err := checkArity("rest", args, 1); err != nil {
				return nil, err
			}
			if args[0] == Nil {
				return NewList(), nil
			}
			items, err := asSeqItems(args[0])
			if err != nil {
				return nil, err
			}
			if len(items) <= 1 {
				return NewList(), nil
			}
			return NewList(items[1:]...), nil
		},
		"map": func(args []Value) (Value, error) {
			if err := checkArity("map", args, 2); err != nil {
				return nil, err
			}
			items, err := asSeqItems(args[1])
			if err != nil {
				return nil, err
			}
			out := make([]Value, len(items))
			for i, it := range items {
				v, err := Apply(args[0], []Value{it})
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return NewList(out...), nil
		},
		"apply": func(args []Value) (Value, error) {
			if len(args) < 2 {
				return nil, NewError("apply: expected at least 2 arguments, got %d", len(args))
			}
			trailing, err := asSeqItems(args[len(args)-1])
			if err != nil {
				return nil, err
			}
			callArgs := append([]Value{}, args[1:len(args)-1]...)
			callArgs = append(callArgs, trailing...)
			return Apply(args[0], callArgs)
		},
		"conj": func(args []Value) (Value, error) {
			if len(args) < 1 {
				return nil, NewError("conj: expected at least 1 argument, got 0")
			}
			switch t := args[0].(type) {
			case *List:
				out := make([]Value, 0, len(t.Items)+len(args)-1)
				for i := len(args) - 1; i >= 1; i-- {
					out = append(out, args[i])
				}
				out = append(out, t.Items...)
				return NewList(out...), nil
			case *Vector:
				out := make([]Value, 0, len(t.Items)+len(args)-1)
				out = append(out, t.Items...)
				out = append(out, args[1:]...)
				return NewVector(out...), nil
			default:
				return nil, NewError("conj: expected list or vector, got %s", TypeName(args[0]))
			}
		},
		"seq": func(args []Value) (Value, error) {
			if err := checkArity("seq", args, 1); err != nil {
				return nil, err
			}
			switch t := args[0].(type) {
			case nilValue:
				return Nil, nil
			case *List:
				if len(t.Items) == 0 {
					return Nil, nil
				}
				return t, nil
			case *Vector:
				if len(t.Items) == 0 {
					return Nil, nil
				}
				return NewList(t.Items...), nil
			case Str:
				if len(t.Value) == 0 {
					return Nil, nil
				}
				chars := make([]Value, 0, len(t.Value))
				for _, r := range t.Value {
					chars = append(chars, Str{Value: string(r)})
				}
				return NewList(chars...), nil
			default:
				return nil, NewError("seq: expected list, vector, string or nil, got %s", TypeName(args[0]))
			}
		},
	}
}
