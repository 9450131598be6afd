package mal

// mapBuiltins holds the hash-map namespace: construction, assoc/dissoc,
// lookup and the keys/vals accessors.
func mapBuiltins() map[string]Fn {
	return map[string]Fn{
		"hash-map": func(args []Value) (Value, error) {
			if len(args)%2 != 0 {
				return nil, NewError("hash-map: expected an even number of arguments, got %d", len(args))
			}
			hm := NewHashMap()
			for i := 0; i < len(args); i += 2 {
				k, err := NewHashKey(args[i])
				if err != nil {
					return nil, err
				}
				hm.Entries[k] = args[i+1]
			}
			return hm, nil
		},
		"assoc": func(args []Value) (Value, error) {
			if len(args) < 1 || len(args)%2 != 1 {
				return nil, NewError("assoc: expected a map and an even number of key/value arguments")
			}
			src, ok := args[0].(*HashMap)
			if !ok {
				return nil, NewError("assoc: expected hash-map, got %s", TypeName(args[0]))
			}
			out := cloneHashMap(src)
			for i := 1; i < len(args); i += 2 {
				k, err := NewHashKey(args[i])
				if err != nil {
					return nil, err
				}
				out.Entries[k] = args[i+1]
			}
			return out, nil
		},
		"dissoc": func(args []Value) (Value, error) {
			if len(args) < 1 {
				return nil, NewError("dissoc: expected a map and zero or more keys")
			}
			src, ok := args[0].(*HashMap)
			if !ok {
				return nil, NewError("dissoc: expected hash-map, got %s", TypeName(args[0]))
			}
			out := cloneHashMap(src)
			for _, kv := range args[1:] {
				k, err := NewHashKey(kv)
				if err != nil {
					return nil, err
				}
				delete(out.Entries, k)
			}
			return out, nil
		},
		"get": func(args []Value) (Value, error) {
			if err := checkArity("get", args, 2); err != nil {
				return nil, err
			}
			if args[0] == Nil {
				return Nil, nil
			}
			hm, ok := args[0].(*HashMap)
			if !ok {
				return nil, NewError("get: expected hash-map or nil, got %s", TypeName(args[0]))
			}
			k, err := NewHashKey(args[1])
			if err != nil {
				return nil, err
			}
			if v, ok := hm.Entries[k]; ok {
				return v, nil
			}
			return Nil, nil
		},
		"contains?": func(args []Value) (Value, error) {
			if err := checkArity("contains?", args, 2); err != nil {
				return nil, err
			}
			hm, ok := args[0].(*HashMap)
			if !ok {
				return nil, NewError("contains?: expected hash-map, got %s", TypeName(args[0]))
			}
			k, err := NewHashKey(args[1])
			if err != nil {
				return nil, err
			}
			_, ok = hm.Entries[k]
			return BoolOf(ok), nil
		},
		"keys": func(args []Value) (Value, error) {
			if err := checkArity("keys", args, 1); err != nil {
				return nil, err
			}
			hm, ok := args[0].(*HashMap)
			if !ok {
				return nil, NewError("keys: expected hash-map, got %s", TypeName(args[0]))
			}
			out := make([]Value, 0, len(hm.Entries))
			for k := range hm.Entries {
				out = append(out, k.Value())
			}
			return NewList(out...), nil
		},
		"vals": func(args []Value) (Value, error) {
			if err := checkArity("vals", args, 1); err != nil {
				return nil, err
			}
			hm, ok := args[0].(*HashMap)
			if !ok {
				return nil, NewError("vals: expected hash-map, got %s", TypeName(args[0]))
			}
			out := make([]Value, 0, len(hm.Entries))
			for _, v := range hm.Entries {
				out = append(out, v)
			}
			return NewList(out...), nil
		},
	}
}

func cloneHashMap(src *HashMap) *HashMap {
	out := NewHashMap()
	out.Meta = src.Meta
	for k, v := range src.Entries {
		out.Entries[k] = v
	}
	return out
}
