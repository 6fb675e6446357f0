package envelope

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Placeholder is rendered for a link that has no description.
const Placeholder = "unknown error"

// Error renders "description[: details][: cause]". It never fails.
func (e *Envelope[M]) Error() string {
	if e == nil {
		return "<nil>"
	}

	var sb strings.Builder
	writeLink(&sb, e)
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}

	return sb.String()
}

// Format supports %s, %v, %q, and %+v. The latter renders one line per link
// in the cause chain, indented by depth.
func (e *Envelope[M]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e != nil {
			_, _ = io.WriteString(s, Render(e))
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.Error())
	}
}

// Render describes every link of o's chain using only the generic view, one
// per line.
func Render(o Opaque) string {
	var sb strings.Builder
	Walk(o, func(depth int, link Opaque) bool {
		if depth > 0 {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString("caused by: ")
		}
		sb.WriteByte('[')
		sb.WriteString(link.Tag().String())
		sb.WriteString("] ")
		writeLink(&sb, link)
		return true
	})

	return sb.String()
}

func writeLink(sb *strings.Builder, o Opaque) {
	if d, ok := o.Description(); ok {
		sb.WriteString(d)
	} else {
		sb.WriteString(Placeholder)
	}
	if d, ok := o.Details(); ok {
		sb.WriteString(": ")
		sb.WriteString(d)
	}
}

// ToMapper may be implemented by an extensions payload to control how it is
// rendered by ToMap.
type ToMapper interface {
	ToMap() map[string]any
}

// ToMap renders the envelope and its cause chain as nested maps suitable for
// encoding.
func (e *Envelope[M]) ToMap() map[string]any {
	m := make(map[string]any, 5)
	m["$.errorTag"] = e.Tag().String()

	if d, ok := e.Description(); ok {
		m["description"] = d
	}
	if d, ok := e.Details(); ok {
		m["details"] = d
	}

	switch x := e.Extensions().(type) {
	case nil:
	case ForeignError:
		m["$.errorType"] = fmt.Sprintf("%T", x.Err)
		m["_errorString"] = x.Err.Error()
	case ToMapper:
		m["_extensions"] = x.ToMap()
	default:
		m["_extensions"] = x
	}

	if cause := e.Cause(); cause != nil {
		m["_cause"] = cause.ToMap()
	}

	return m
}

// String renders ToMap as indented JSON. If the extensions can't be encoded
// it falls back to Error().
func (e *Envelope[M]) String() string {
	if e == nil {
		return "<nil>"
	}

	bytes, err := json.MarshalIndent(e.ToMap(), "", "  ")
	if err != nil {
		return e.Error()
	}

	return string(bytes)
}
