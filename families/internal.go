package families

import (
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type InternalFamily struct{}

type InternalError struct {
	caused
	Issue string
}

func Internal(issue string) InternalError {
	return InternalError{Issue: issue}
}

func (ie InternalError) Because(cause error) InternalError {
	ie.cause = envelope.Ensure(cause)
	return ie
}

func (ie InternalError) Error() string {
	return "internal error: " + ie.Issue + ie.suffix()
}

func (ie InternalError) Envelope() *envelope.Envelope[InternalFamily] {
	return envelope.New[InternalFamily]("Internal Error",
		envelope.WithDetails(ie.Issue),
		envelope.WithExtensions(ie),
		ie.option(),
	)
}

func (InternalError) Family() typetag.Tag { return typetag.Of[InternalFamily]() }

func (ie *InternalError) Restore(o envelope.Opaque) bool {
	return restore(ie, o, nil)
}
