package mal

// QuasiQuote rewrites an AST into a new AST whose evaluation
// reconstructs the input with unquoted positions substituted and
// splice-unquoted positions spliced in.
func QuasiQuote(ast Value) Value {
	switch t := ast.(type) {
	case *List:
		if sym, ok := headSymbol(t, "unquote"); ok {
			return sym
		}
		return quasiquoteList(t.Items)
	case *Vector:
		return NewList(NewSymbol("vec"), quasiquoteList(t.Items))
	case *HashMap, Symbol:
		return NewList(NewSymbol("quote"), ast)
	default:
		// Numbers, strings, booleans, nil, keywords self-quote.
		return ast
	}
}

// headSymbol returns the single operand of a one-argument special
// form list whose head is the Symbol name, e.g. (unquote x) -> x.
func headSymbol(l *List, name string) (Value, bool) {
	if len(l.Items) == 2 {
		if s, ok := l.Items[0].(Symbol); ok && s.Name == name {
			return l.Items[1], true
		}
	}
	return nil, false
}

// quasiquoteList folds the elements of a list right-to-left: a
// splice-unquote element wraps the accumulator in (concat x acc), any
// other element wraps it in (cons (quasiquote e) acc), starting from
// an empty list.
func quasiquoteList(items []Value) Value {
	var acc Value = NewList()
	for i := len(items) - 1; i >= 0; i-- {
		e := items[i]
		if l, ok := e.(*List); ok {
			if x, ok := headSymbol(l, "splice-unquote"); ok {
				acc = NewList(NewSymbol("concat"), x, acc)
				continue
			}
		}
		acc = NewList(NewSymbol("cons"), QuasiQuote(e), acc)
	}
	return acc
}
