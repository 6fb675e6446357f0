package http

import (
	"github.com/jt0/errkit/envelope"
)

type ErrorRenderer func(envelope.Opaque) (statusCode int, responsePayload any)

// DefaultErrorRenderer exposes the generic view of every link, but never the
// extensions payloads.
func DefaultErrorRenderer(o envelope.Opaque) (statusCode int, responsePayload any) {
	return StatusCode(o), map[string]any{"error": LinkDetails(o)}
}

// LinkDetails renders o and its causes as nested maps. Nil renders as nil.
func LinkDetails(o envelope.Opaque) map[string]any {
	if o == nil {
		return nil
	}

	message, ok := o.Description()
	if !ok {
		message = envelope.Placeholder
	}

	m := map[string]any{
		"type":    o.Tag().String(),
		"message": message,
	}
	if details, ok := o.Details(); ok {
		m["details"] = details
	}
	if cause := o.Cause(); cause != nil {
		m["cause"] = LinkDetails(cause)
	}

	return m
}
