package document

import (
	"strconv"
	"strings"
)

// String renders the node as compact JSON-like text. Diagnostics use this to
// show the offending raw value.
func (n Node) String() string {
	switch n.Kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(n.Bool)
	case KindNumber:
		return n.Number.String()
	case KindText:
		return strconv.Quote(n.Text)
	case KindSequence:
		var sb strings.Builder

		sb.WriteString("[")

		for i, item := range n.Items {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(item.String())
		}

		sb.WriteString("]")

		return sb.String()
	case KindMapping:
		var sb strings.Builder

		sb.WriteString("{")

		for i, ent := range n.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(strconv.Quote(ent.Key))
			sb.WriteString(": ")
			sb.WriteString(ent.Value.String())
		}

		sb.WriteString("}")

		return sb.String()
	default:
		return "unknown"
	}
}
