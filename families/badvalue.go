package families

import (
	"fmt"
	"time"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type BadValueKind string

const (
	ExpiredValue    BadValueKind = "Expired"
	GenericBadValue BadValueKind = "BadValue"
	InvalidValue    BadValueKind = "Invalid"
	MalformedValue  BadValueKind = "Malformed"
)

type BadValueFamily struct{}

type BadValueError struct {
	caused
	Kind   BadValueKind
	Name   string
	Value  any
	Reason string
}

func BadValue(kind BadValueKind, name string, value any) BadValueError {
	return BadValueError{Kind: kind, Name: name, Value: value}
}

func Invalid(name string, value any) BadValueError {
	return BadValue(InvalidValue, name, value)
}

func Malformed(name string, value any) BadValueError {
	return BadValue(MalformedValue, name, value)
}

func Expired(name string, expiredAt time.Time) BadValueError {
	return BadValue(ExpiredValue, name, expiredAt)
}

func (bv BadValueError) WithReason(reason string) BadValueError {
	bv.Reason = reason
	return bv
}

func (bv BadValueError) Because(cause error) BadValueError {
	bv.cause = envelope.Ensure(cause)
	return bv
}

func (bv BadValueError) Error() string {
	s := fmt.Sprintf("%s value for %s: %v", bv.Kind, bv.Name, bv.Value)
	if bv.Reason != "" {
		s += " (" + bv.Reason + ")"
	}
	return s + bv.suffix()
}

func (bv BadValueError) Envelope() *envelope.Envelope[BadValueFamily] {
	details := bv.Name
	if bv.Reason != "" {
		details += ": " + bv.Reason
	}

	return envelope.New[BadValueFamily](string(bv.Kind)+" Value",
		envelope.WithDetails(details),
		envelope.WithExtensions(bv),
		bv.option(),
	)
}

func (BadValueError) Family() typetag.Tag { return typetag.Of[BadValueFamily]() }

func (bv *BadValueError) Restore(o envelope.Opaque) bool {
	return restore(bv, o, func(p BadValueError) bool { return p.Kind != "" && p.Name != "" })
}
