package envelope

import (
	"github.com/jt0/errkit/typetag"
)

// Foreign marks envelopes that carry a plain Go error.
type Foreign struct{}

// ForeignError is the concrete form of the Foreign family.
type ForeignError struct {
	Err error
}

func (fe ForeignError) Error() string {
	if fe.Err == nil {
		return Placeholder
	}
	return fe.Err.Error()
}

func (fe ForeignError) Unwrap() error { return fe.Err }

func (fe ForeignError) Envelope() *Envelope[Foreign] {
	return New[Foreign](fe.Error(), WithExtensions(fe))
}

func (ForeignError) Family() typetag.Tag { return typetag.Of[Foreign]() }

func (fe *ForeignError) Restore(o Opaque) bool {
	payload, ok := o.Extensions().(ForeignError)
	if !ok || payload.Err == nil {
		return false
	}

	*fe = payload
	return true
}

// Wrap erases a plain error into the Foreign family. The original error stays
// reachable through Unwrap, so errors.Is / errors.As keep working. Wrap(nil)
// is nil.
func Wrap(err error) Opaque {
	if err == nil {
		return nil
	}
	return ForeignError{err}.Envelope()
}

// Ensure converts any error to an Opaque.
//
// Behavior:
//   - nil input => nil output
//   - if err is already an Opaque => returned as-is
//   - otherwise it is wrapped into the Foreign family
func Ensure(err error) Opaque {
	if err == nil {
		return nil
	}

	if o, ok := err.(Opaque); ok {
		if isNil(o) {
			return nil
		}
		return o
	}

	return Wrap(err)
}
