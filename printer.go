package mal

import (
	"strconv"
	"strings"
)

// literalEscaper renders a Mal string back into its readable source
// form: backslash and double-quote are escaped, newline becomes \n.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	`"`, `\"`,
)

// PrStr renders v as source text. In readable mode strings are quoted
// and escaped and keywords show their leading colon; in display mode
// strings are printed raw. It is the identity-section partner of the
// reader for every ground value: ReadStr(PrStr(v, true)) == v.
func PrStr(v Value, readable bool) string {
	var sb strings.Builder
	writeValue(&sb, v, readable)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, readable bool) {
	switch t := v.(type) {
	case nilValue:
		sb.WriteString("nil")
	case boolValue:
		if t.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Number:
		sb.WriteString(strconv.FormatInt(int64(t), 10))
	case Symbol:
		sb.WriteString(t.Name)
	case Keyword:
		sb.WriteByte(':')
		sb.WriteString(t.Name)
	case Str:
		if readable {
			sb.WriteByte('"')
			sb.WriteString(literalEscaper.Replace(t.Value))
			sb.WriteByte('"')
		} else {
			sb.WriteString(t.Value)
		}
	case *List:
		sb.WriteByte('(')
		writeSeq(sb, t.Items, readable)
		sb.WriteByte(')')
	case *Vector:
		sb.WriteByte('[')
		writeSeq(sb, t.Items, readable)
		sb.WriteByte(']')
	case *HashMap:
		sb.WriteByte('{')
		first := true
		for k, val := range t.Entries {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			writeValue(sb, k.Value(), readable)
			sb.WriteByte(' ')
			writeValue(sb, val, readable)
		}
		sb.WriteByte('}')
	case *BuiltinFn:
		sb.WriteString("#<function>")
	case *Closure:
		sb.WriteString("#<function>")
	case *Atom:
		sb.WriteString("(atom ")
		writeValue(sb, t.Deref(), readable)
		sb.WriteByte(')')
	case Exception:
		writeValue(sb, t.Payload, readable)
	default:
		sb.WriteString("#<unknown>")
	}
}

func writeSeq(sb *strings.Builder, items []Value, readable bool) {
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeValue(sb, it, readable)
	}
}
