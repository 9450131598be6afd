package mal

// HashKey is the restricted key type a HashMap accepts: only strings
// and keywords may be map keys (spec data-model invariant).
type HashKey struct {
	kind keyKind
	val  string
}

type keyKind int

const (
	keyKindString keyKind = iota
	keyKindKeyword
)

// NewHashKey converts a Value into a HashKey, or reports that v is not
// a legal key.
func NewHashKey(v Value) (HashKey, error) {
	switch t := v.(type) {
	case Str:
		return HashKey{kind: keyKindString, val: t.Value}, nil
	case Keyword:
		return HashKey{kind: keyKindKeyword, val: t.Name}, nil
	default:
		return HashKey{}, NewError("%s is not a valid hash-map key", TypeName(v))
	}
}

// Value converts the key back into the Str or Keyword it came from.
func (k HashKey) Value() Value {
	if k.kind == keyKindKeyword {
		return Keyword{Name: k.val}
	}
	return Str{Value: k.val}
}
