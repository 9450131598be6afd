package mal

// Eval is the evaluator's single entry point. It loops rather than
// recurses whenever the chosen form is in tail position (let*, do, if,
// quasiquote, try*'s handler branch, eval, and direct closure calls),
// rewriting (ast, env) in place and re-entering dispatch. That gives
// the interpreter constant host-stack use no matter how deep a user
// program's tail recursion goes. Only the non-tail branches (def!'s
// value, if's condition, let* binding values, try*'s body, argument
// evaluation, and macro-call bodies) recurse into Eval and so do
// consume host stack.
func Eval(ast Value, env *Env) (Value, error) {
	for {
		switch node := ast.(type) {
		case Symbol:
			return env.Get(node.Name)

		case *Vector:
			items, err := evalSeq(node.Items, env)
			if err != nil {
				return nil, err
			}
			return &Vector{Items: items, Meta: node.Meta}, nil

		case *HashMap:
			out := NewHashMap()
			out.Meta = node.Meta
			for k, v := range node.Entries {
				ev, err := Eval(v, env)
				if err != nil {
					return nil, err
				}
				out.Entries[k] = ev
			}
			return out, nil

		case *List:
			if len(node.Items) == 0 {
				return node, nil
			}

			expanded, err := macroExpand(node, env)
			if err != nil {
				return nil, err
			}
			if expanded != Value(node) {
				ast = expanded
				continue
			}
			list := node

			if head, ok := list.Items[0].(Symbol); ok {
				switch head.Name {
				case "def!":
					val, err := evalDef(list, env)
					if err != nil {
						return nil, err
					}
					return val, nil

				case "let*":
					body, child, err := evalLetStar(list, env)
					if err != nil {
						return nil, err
					}
					ast, env = body, child
					continue

				case "do":
					next, err := evalDo(list, env)
					if err != nil {
						return nil, err
					}
					ast = next
					continue

				case "if":
					next, err := evalIf(list, env)
					if err != nil {
						return nil, err
					}
					if next == nil {
						return Nil, nil
					}
					ast = next
					continue

				case "fn*":
					return evalFnStar(list, env)

				case "quote":
					if len(list.Items) != 2 {
						return nil, NewError("quote requires exactly one argument")
					}
					return list.Items[1], nil

				case "quasiquote":
					if len(list.Items) != 2 {
						return nil, NewError("quasiquote requires exactly one argument")
					}
					ast = QuasiQuote(list.Items[1])
					continue

				case "quasiquoteexpand":
					if len(list.Items) != 2 {
						return nil, NewError("quasiquoteexpand requires exactly one argument")
					}
					return QuasiQuote(list.Items[1]), nil

				case "defmacro!":
					macro, err := evalDefMacro(list, env)
					if err != nil {
						return nil, err
					}
					return macro, nil

				case "macroexpand":
					if len(list.Items) != 2 {
						return nil, NewError("macroexpand requires exactly one argument")
					}
					return macroExpand(list.Items[1], env)

				case "try*":
					result, done, next, child, err := evalTryStar(list, env)
					if err != nil {
						return nil, err
					}
					if done {
						return result, nil
					}
					ast, env = next, child
					continue

				case "eval":
					if len(list.Items) != 2 {
						return nil, NewError("eval requires exactly one argument")
					}
					val, err := Eval(list.Items[1], env)
					if err != nil {
						return nil, err
					}
					ast, env = val, env.Root
					continue
				}
			}

			items, err := evalSeq(list.Items, env)
			if err != nil {
				return nil, err
			}
			fnVal, args := items[0], items[1:]
			switch fn := fnVal.(type) {
			case *BuiltinFn:
				return fn.Fn(args)
			case *Closure:
				if fn.Rest == nil && len(args) > len(fn.Params) {
					return nil, NewError("too many arguments: expected %d, got %d", len(fn.Params), len(args))
				}
				env = NewEnvWithBinds(fn.Env, fn.Params, fn.Rest, args)
				ast = fn.Body
				continue
			default:
				return nil, NewError("expected function, got %s", TypeName(fnVal))
			}

		default:
			// Numbers, strings, keywords, nil/true/false, and already
			// host-level values (BuiltinFn, Closure, Atom, Exception)
			// are self-evaluating.
			return ast, nil
		}
	}
}

func evalSeq(items []Value, env *Env) ([]Value, error) {
	out := make([]Value, len(items))
	for i, it := range items {
		v, err := Eval(it, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func asSeqItems(v Value) ([]Value, error) {
	switch t := v.(type) {
	case *List:
		return t.Items, nil
	case *Vector:
		return t.Items, nil
	default:
		return nil, NewError("expected a list or vector, got %s", TypeName(v))
	}
}

func evalDef(list *List, env *Env) (Value, error) {
	if len(list.Items) != 3 {
		return nil, NewError("def! requires a symbol and a value")
	}
	sym, ok := list.Items[1].(Symbol)
	if !ok {
		return nil, NewError("def! target must be a symbol, got %s", TypeName(list.Items[1]))
	}
	val, err := Eval(list.Items[2], env)
	if err != nil {
		return nil, err
	}
	env.Define(sym.Name, val)
	return val, nil
}

func evalLetStar(list *List, env *Env) (body Value, child *Env, err error) {
	if len(list.Items) != 3 {
		return nil, nil, NewError("let* requires a binding list and a body")
	}
	bindings, err := asSeqItems(list.Items[1])
	if err != nil {
		return nil, nil, err
	}
	if len(bindings)%2 != 0 {
		return nil, nil, NewError("let* requires an even number of binding forms")
	}
	child = NewEnv(env)
	for i := 0; i < len(bindings); i += 2 {
		sym, ok := bindings[i].(Symbol)
		if !ok {
			return nil, nil, NewError("let* binding name must be a symbol, got %s", TypeName(bindings[i]))
		}
		v, err := Eval(bindings[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Define(sym.Name, v)
	}
	return list.Items[2], child, nil
}

func evalDo(list *List, env *Env) (Value, error) {
	if len(list.Items) == 1 {
		return Nil, nil
	}
	for _, e := range list.Items[1 : len(list.Items)-1] {
		if _, err := Eval(e, env); err != nil {
			return nil, err
		}
	}
	return list.Items[len(list.Items)-1], nil
}

// evalIf returns the tail-position branch to evaluate next, or nil
// when the condition is falsy and no else branch was given (meaning
// the result is simply Nil).
func evalIf(list *List, env *Env) (Value, error) {
	if len(list.Items) < 3 || len(list.Items) > 4 {
		return nil, NewError("if requires a condition, a then branch and an optional else branch")
	}
	cond, err := Eval(list.Items[1], env)
	if err != nil {
		return nil, err
	}
	if IsTruthy(cond) {
		return list.Items[2], nil
	}
	if len(list.Items) == 4 {
		return list.Items[3], nil
	}
	return nil, nil
}

func evalFnStar(list *List, env *Env) (Value, error) {
	if len(list.Items) != 3 {
		return nil, NewError("fn* requires a parameter list and a body")
	}
	paramItems, err := asSeqItems(list.Items[1])
	if err != nil {
		return nil, err
	}
	params, rest, err := parseParams(paramItems)
	if err != nil {
		return nil, err
	}
	return &Closure{Params: params, Rest: rest, Body: list.Items[2], Env: env}, nil
}

func parseParams(items []Value) ([]Symbol, *Symbol, error) {
	var params []Symbol
	for i := 0; i < len(items); i++ {
		sym, ok := items[i].(Symbol)
		if !ok {
			return nil, nil, NewError("parameter must be a symbol, got %s", TypeName(items[i]))
		}
		if sym.Name == "&" {
			if i+2 != len(items) {
				return nil, nil, NewError("'&' must be followed by exactly one more parameter")
			}
			restSym, ok := items[i+1].(Symbol)
			if !ok {
				return nil, nil, NewError("rest parameter must be a symbol, got %s", TypeName(items[i+1]))
			}
			return params, &restSym, nil
		}
		params = append(params, sym)
	}
	return params, nil, nil
}

func evalDefMacro(list *List, env *Env) (Value, error) {
	if len(list.Items) != 3 {
		return nil, NewError("defmacro! requires a symbol and a value")
	}
	sym, ok := list.Items[1].(Symbol)
	if !ok {
		return nil, NewError("defmacro! target must be a symbol, got %s", TypeName(list.Items[1]))
	}
	val, err := Eval(list.Items[2], env)
	if err != nil {
		return nil, err
	}
	cl, ok := val.(*Closure)
	if !ok {
		return nil, NewError("defmacro! value must be a function, got %s", TypeName(val))
	}
	macro := *cl
	macro.IsMacro = true
	env.Define(sym.Name, &macro)
	return &macro, nil
}

// evalTryStar evaluates a try*/catch* form. When expr succeeds outright
// it returns (result, true, nil, nil, nil). When it fails and there is
// a catch* clause, it returns (nil, false, handler, childEnv, nil) so
// the caller can continue the tail-call loop on the handler branch. A
// failure with no catch clause propagates as a non-nil error.
func evalTryStar(list *List, env *Env) (result Value, done bool, nextAst Value, nextEnv *Env, err error) {
	if len(list.Items) < 2 || len(list.Items) > 3 {
		return nil, false, nil, nil, NewError("try* requires an expression and an optional catch* clause")
	}
	result, evalErr := Eval(list.Items[1], env)
	if evalErr == nil {
		return result, true, nil, nil, nil
	}
	if len(list.Items) == 2 {
		return nil, false, nil, nil, evalErr
	}
	catchList, ok := list.Items[2].(*List)
	if !ok || len(catchList.Items) != 3 {
		return nil, false, nil, nil, NewError("try*'s second form must be (catch* sym handler)")
	}
	if catchSym, ok := catchList.Items[0].(Symbol); !ok || catchSym.Name != "catch*" {
		return nil, false, nil, nil, NewError("try*'s second form must start with catch*")
	}
	bindSym, ok := catchList.Items[1].(Symbol)
	if !ok {
		return nil, false, nil, nil, NewError("catch* binding must be a symbol")
	}
	child := NewEnv(env)
	child.Define(bindSym.Name, errorPayload(evalErr))
	return nil, false, catchList.Items[2], child, nil
}

// errorPayload converts a Go error from Eval into the Value that
// try*/catch* binds: a throw's original payload, or a Str for any
// host-detected error.
func errorPayload(err error) Value {
	if me, ok := err.(*MalError); ok {
		return me.Payload
	}
	return Str{Value: err.Error()}
}

// isMacroCall reports whether ast is a non-empty list whose head
// symbol resolves, in env, to a Closure flagged as a macro.
func isMacroCall(ast Value, env *Env) (*Closure, []Value, bool) {
	list, ok := ast.(*List)
	if !ok || len(list.Items) == 0 {
		return nil, nil, false
	}
	sym, ok := list.Items[0].(Symbol)
	if !ok {
		return nil, nil, false
	}
	val, err := env.Get(sym.Name)
	if err != nil {
		return nil, nil, false
	}
	cl, ok := val.(*Closure)
	if !ok || !cl.IsMacro {
		return nil, nil, false
	}
	return cl, list.Items[1:], true
}

// macroExpand repeatedly invokes ast's head macro with its unevaluated
// tail until the result is no longer a macro call. Each invocation is a
// genuine (non-tail) call into Eval: a macro call is not in tail
// position, so it does not get the tail-call guarantee.
func macroExpand(ast Value, env *Env) (Value, error) {
	for {
		cl, args, ok := isMacroCall(ast, env)
		if !ok {
			return ast, nil
		}
		result, err := applyClosure(cl, args)
		if err != nil {
			return nil, err
		}
		ast = result
	}
}

func applyClosure(cl *Closure, args []Value) (Value, error) {
	if cl.Rest == nil && len(args) > len(cl.Params) {
		return nil, NewError("too many arguments: expected %d, got %d", len(cl.Params), len(args))
	}
	child := NewEnvWithBinds(cl.Env, cl.Params, cl.Rest, args)
	return Eval(cl.Body, child)
}

// Apply invokes any callable Value (BuiltinFn or Closure) with already
// evaluated arguments. It is the mechanism builtins like apply and map
// use to call back into user code.
func Apply(fn Value, args []Value) (Value, error) {
	switch t := fn.(type) {
	case *BuiltinFn:
		return t.Fn(args)
	case *Closure:
		return applyClosure(t, args)
	default:
		return nil, NewError("expected function, got %s", TypeName(fn))
	}
}
