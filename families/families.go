package families

import (
	"github.com/jt0/errkit/envelope"
)

// caused is embedded by every concrete family to carry an optional cause.
type caused struct {
	cause envelope.Opaque
}

func (c caused) Cause() envelope.Opaque {
	return c.cause
}

func (c caused) Unwrap() error {
	if c.cause == nil {
		return nil
	}
	return c.cause
}

func (c caused) option() envelope.Option {
	return envelope.WithCause(c.cause)
}

func (c caused) suffix() string {
	if c.cause == nil {
		return ""
	}
	return ": " + c.cause.Error()
}

// restore copies a T payload out of o's extensions, rejecting it if valid
// reports false. The payload's cause is taken from the envelope.
func restore[T any, PT interface {
	*T
	setCause(envelope.Opaque)
}](dst PT, o envelope.Opaque, valid func(T) bool) bool {
	payload, ok := o.Extensions().(T)
	if !ok || (valid != nil && !valid(payload)) {
		return false
	}

	*dst = payload
	dst.setCause(o.Cause())
	return true
}

func (c *caused) setCause(cause envelope.Opaque) {
	c.cause = cause
}
