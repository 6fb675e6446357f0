package envelope

import (
	"errors"

	"github.com/jt0/errkit/typetag"
)

// Erasable is implemented by concrete error types that erase into family M.
// Erasing always succeeds.
type Erasable[M any] interface {
	Envelope() *Envelope[M]
}

// Recoverable is implemented (on the pointer receiver) by concrete error types
// that can be rebuilt from an envelope.
//
// Family returns the tag of the marker the type expects; it is called on a
// zero value. Restore populates the receiver from an envelope already known
// to be in that family, returning false if the payload is malformed.
type Recoverable interface {
	Family() typetag.Tag
	Restore(o Opaque) bool
}

// Outcome explains the result of a recovery attempt.
type Outcome uint8

const (
	Mismatch  Outcome = iota // the envelope belongs to another family
	Malformed                // the family matched but Restore rejected the payload
	Matched
)

func (o Outcome) String() string {
	switch o {
	case Mismatch:
		return "Mismatch"
	case Malformed:
		return "Malformed"
	case Matched:
		return "Matched"
	default:
		return "Outcome(?)"
	}
}

// From erases a concrete value directly into an Opaque handle.
func From[M any](c Erasable[M]) Opaque {
	if c == nil {
		return nil
	}
	return Erase(c.Envelope())
}

// Recover rebuilds a C from o if o belongs to C's family. Any other outcome,
// including a nil handle, yields the zero C and false.
func Recover[C any, PC interface {
	*C
	Recoverable
}](o Opaque) (C, bool) {
	c, outcome := RecoverResult[C, PC](o)
	return c, outcome == Matched
}

// RecoverResult is Recover with the reason for failure surfaced. A nil handle
// is a Mismatch.
func RecoverResult[C any, PC interface {
	*C
	Recoverable
}](o Opaque) (C, Outcome) {
	var c, zero C
	pc := PC(&c)

	if isNil(o) || o.Tag() != pc.Family() {
		return zero, Mismatch
	}

	if !restore(pc, o) {
		return zero, Malformed
	}

	return c, Matched
}

// TryInto is Recover for a typed envelope.
func TryInto[C any, PC interface {
	*C
	Recoverable
}, M any](e *Envelope[M]) (C, bool) {
	return Recover[C, PC](Erase(e))
}

// Find walks err's chain (envelope causes as well as standard Unwrap links)
// and recovers the first link in C's family.
func Find[C any, PC interface {
	*C
	Recoverable
}](err error) (C, bool) {
	for err != nil {
		if o, ok := err.(Opaque); ok {
			if c, outcome := RecoverResult[C, PC](o); outcome == Matched {
				return c, true
			}
		}

		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range multi.Unwrap() {
				if c, ok := Find[C, PC](e); ok {
					return c, true
				}
			}
			break
		}

		err = errors.Unwrap(err)
	}

	var zero C
	return zero, false
}

// restore contains a panicking Restore so recovery never aborts the caller.
func restore(r Recoverable, o Opaque) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return r.Restore(o)
}
