package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/kelchtermans/turtle/internal/value"
)

// Sprint renders v as S-expression text per §4.3: symbols print their
// bytes, numbers print with six fractional digits, strings are quoted
// without escaping (round-tripping a string containing `"` is not
// guaranteed, matching the original), Nil prints as `()`, proper lists
// print space-separated, and an improper tail prints after ` . `.
func Sprint(v value.Value) string {
	var b strings.Builder
	write(&b, v)

	return b.String()
}

// Fprint writes the printed form of v to w.
func Fprint(w io.Writer, v value.Value) (int, error) {
	return io.WriteString(w, Sprint(v))
}

func write(b *strings.Builder, v value.Value) {
	switch x := v.(type) {
	case value.Symbol:
		b.WriteString(string(x))
	case value.Number:
		fmt.Fprintf(b, "%f", float64(x))
	case value.String:
		b.WriteByte('"')
		b.WriteString(string(x))
		b.WriteByte('"')
	case value.Primitive:
		fmt.Fprintf(b, "<primitive>%d", uint8(x))
	case *value.Closure:
		fmt.Fprintf(b, "<closure>%p", x)
	case *value.Macro:
		fmt.Fprintf(b, "<macro>%p", x)
	case *value.Cons:
		writeList(b, x)
	default:
		if value.IsNil(v) {
			b.WriteString("()")

			return
		}
		fmt.Fprintf(b, "#<unprintable %v>", v)
	}
}

func writeList(b *strings.Builder, c *value.Cons) {
	b.WriteByte('(')
	write(b, c.Car)

	rest := c.Cdr
	for {
		if value.IsNil(rest) {
			break
		}
		if next, ok := rest.(*value.Cons); ok {
			b.WriteByte(' ')
			write(b, next.Car)
			rest = next.Cdr

			continue
		}
		b.WriteString(" . ")
		write(b, rest)

		break
	}
	b.WriteByte(')')
}
