// Package mal implements the core of a small Lisp-family interpreter:
// reader, evaluator, printer, lexical environment, value algebra and
// built-in namespace.
package mal

import "fmt"

// Value is the tagged union of every runtime value the evaluator
// manipulates. There is no separate compiled form: the AST produced by
// the reader is made of the same Values the evaluator returns.
type Value interface {
	malValue()
}

// Nil, True and False are singletons; compare them with ==.
type nilValue struct{}
type boolValue struct{ b bool }

var (
	Nil   Value = nilValue{}
	True  Value = boolValue{true}
	False Value = boolValue{false}
)

func (nilValue) malValue()  {}
func (boolValue) malValue() {}

// IsTruthy reports whether v takes the "then" branch of an if: only
// Nil and False are falsy, everything else (including 0 and "") is
// truthy.
func IsTruthy(v Value) bool {
	switch v {
	case Nil, False:
		return false
	default:
		return true
	}
}

// BoolOf returns True or False for a Go bool.
func BoolOf(b bool) Value {
	if b {
		return True
	}
	return False
}

// Number is a signed 64-bit integer; Mal has no wider numeric tower.
type Number int64

func (Number) malValue() {}

// Symbol is an identifier resolved against an Environment.
type Symbol struct {
	Name string
}

func (Symbol) malValue() {}

// NewSymbol is a small convenience constructor mirroring NewList,
// NewVector, NewHashMap and NewAtom.
func NewSymbol(name string) Symbol { return Symbol{Name: name} }

// Keyword is a self-evaluating tag, printed with a leading colon.
type Keyword struct {
	Name string
}

func (Keyword) malValue() {}

// Str is a Mal string. Named Str (not String) to avoid shadowing
// fmt.Stringer and the builtin string type in call sites.
type Str struct {
	Value string
}

func (Str) malValue() {}

// List is the call form: a list of items plus optional metadata.
type List struct {
	Items []Value
	Meta  Value
}

func (*List) malValue() {}

// NewList builds a List with no metadata.
func NewList(items ...Value) *List {
	return &List{Items: items}
}

// Vector is an indexable sequence, equal to a List with identical
// contents (see Equal).
type Vector struct {
	Items []Value
	Meta  Value
}

func (*Vector) malValue() {}

// NewVector builds a Vector with no metadata.
func NewVector(items ...Value) *Vector {
	return &Vector{Items: items}
}

// HashMap maps a HashKey (a String or Keyword) to a Value.
type HashMap struct {
	Entries map[HashKey]Value
	Meta    Value
}

func (*HashMap) malValue() {}

// NewHashMap builds an empty HashMap.
func NewHashMap() *HashMap {
	return &HashMap{Entries: map[HashKey]Value{}}
}

// Fn is the uniform signature every built-in primitive shares.
// Closures are not Fns; they are applied through Eval.
type Fn func(args []Value) (Value, error)

// BuiltinFn is a host-implemented primitive.
type BuiltinFn struct {
	Name string
	Fn   Fn
	Meta Value
}

func (*BuiltinFn) malValue() {}

// Closure is a user-defined function created by fn*. IsMacro marks a
// closure installed by defmacro!, applied to unevaluated arguments.
type Closure struct {
	Params  []Symbol
	Rest    *Symbol // non-nil when params ends in "& rest"
	Body    Value
	Env     *Env
	IsMacro bool
	Meta    Value
}

func (*Closure) malValue() {}

// Atom is a first-class mutable single-slot reference. Every clone of
// an Atom value shares the same cell: Reset writes through the cell
// pointer (reset! and swap! both go through it) and the mutation is
// visible to every holder.
type Atom struct {
	cell *Value
}

func (*Atom) malValue() {}

// NewAtom wraps v in a fresh shared cell.
func NewAtom(v Value) *Atom {
	cell := v
	return &Atom{cell: &cell}
}

// Deref reads the atom's current value.
func (a *Atom) Deref() Value { return *a.cell }

// Reset writes v into the shared cell and returns it.
func (a *Atom) Reset(v Value) Value {
	*a.cell = v
	return v
}

// Exception is a value variant wrapping a payload; it prints as its
// payload and compares by payload. throw does not build one: a thrown
// value travels to try*/catch* or the driver as a *MalError.
type Exception struct {
	Payload Value
}

func (Exception) malValue() {}

// Equal implements the structural equality rules from the data model:
// numbers/strings/symbols/keywords/booleans/nil compare by value,
// List and Vector compare element-wise regardless of which is which,
// HashMaps compare as set-of-entries, and Closure/BuiltinFn compare by
// reference identity. Metadata never participates.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nilValue:
		_, ok := b.(nilValue)
		return ok
	case boolValue:
		bv, ok := b.(boolValue)
		return ok && av.b == bv.b
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av.Name == bv.Name
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av.Name == bv.Name
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	case *List:
		return equalSeq(av.Items, b)
	case *Vector:
		return equalSeq(av.Items, b)
	case *HashMap:
		bv, ok := b.(*HashMap)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for k, v := range av.Entries {
			other, ok := bv.Entries[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case *BuiltinFn:
		bv, ok := b.(*BuiltinFn)
		return ok && av == bv
	case *Closure:
		bv, ok := b.(*Closure)
		return ok && av == bv
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	case Exception:
		bv, ok := b.(Exception)
		return ok && Equal(av.Payload, bv.Payload)
	default:
		return false
	}
}

func equalSeq(items []Value, b Value) bool {
	var other []Value
	switch bv := b.(type) {
	case *List:
		other = bv.Items
	case *Vector:
		other = bv.Items
	default:
		return false
	}
	if len(items) != len(other) {
		return false
	}
	for i, v := range items {
		if !Equal(v, other[i]) {
			return false
		}
	}
	return true
}

// TypeName returns the human-readable type tag used in error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case nilValue:
		return "nil"
	case boolValue:
		return "boolean"
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	case Keyword:
		return "keyword"
	case Str:
		return "string"
	case *List:
		return "list"
	case *Vector:
		return "vector"
	case *HashMap:
		return "hash-map"
	case *BuiltinFn:
		return "function"
	case *Closure:
		return "function"
	case *Atom:
		return "atom"
	case Exception:
		return "exception"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Meta returns the metadata attached to a container-like or callable
// value, or Nil. Scalars carry no metadata slot.
func Meta(v Value) (Value, error) {
	switch t := v.(type) {
	case *List:
		return metaOr(t.Meta), nil
	case *Vector:
		return metaOr(t.Meta), nil
	case *HashMap:
		return metaOr(t.Meta), nil
	case *BuiltinFn:
		return metaOr(t.Meta), nil
	case *Closure:
		return metaOr(t.Meta), nil
	default:
		return nil, NewError("meta: no metadata slot on %s", TypeName(v))
	}
}

func metaOr(m Value) Value {
	if m == nil {
		return Nil
	}
	return m
}

// WithMeta returns a shallow copy of v carrying the given metadata.
func WithMeta(v Value, meta Value) (Value, error) {
	switch t := v.(type) {
	case *List:
		cp := *t
		cp.Meta = meta
		return &cp, nil
	case *Vector:
		cp := *t
		cp.Meta = meta
		return &cp, nil
	case *HashMap:
		cp := *t
		cp.Meta = meta
		return &cp, nil
	case *BuiltinFn:
		cp := *t
		cp.Meta = meta
		return &cp, nil
	case *Closure:
		cp := *t
		cp.Meta = meta
		return &cp, nil
	default:
		return nil, NewError("with-meta: no metadata slot on %s", TypeName(v))
	}
}
