package families

import (
	"fmt"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type Reason string

const (
	Duplicate  Reason = "Duplicate"
	Exists     Reason = "Exists"
	Immutable  Reason = "Immutable"
	InUse      Reason = "InUse"
	Locked     Reason = "Locked"
	Mismatch   Reason = "Mismatch"
	Modified   Reason = "Modified"
	NotUnique  Reason = "NotUnique"
	OutOfDate  Reason = "OutOfDate"
	OutOfRange Reason = "OutOfRange"
	OutOfSync  Reason = "OutOfSync"
)

type ConflictFamily struct{}

type ConflictError struct {
	caused
	Resource string
	Reason   Reason
}

func Conflict(resource string, reason Reason) ConflictError {
	return ConflictError{Resource: resource, Reason: reason}
}

func (ce ConflictError) Because(cause error) ConflictError {
	ce.cause = envelope.Ensure(cause)
	return ce
}

func (ce ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s (%s)", ce.Resource, ce.Reason) + ce.suffix()
}

func (ce ConflictError) Envelope() *envelope.Envelope[ConflictFamily] {
	return envelope.New[ConflictFamily]("Conflict",
		envelope.WithDetailsf("%s: %s", ce.Resource, ce.Reason),
		envelope.WithExtensions(ce),
		ce.option(),
	)
}

func (ConflictError) Family() typetag.Tag { return typetag.Of[ConflictFamily]() }

func (ce *ConflictError) Restore(o envelope.Opaque) bool {
	return restore(ce, o, nil)
}
