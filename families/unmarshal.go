package families

import (
	"fmt"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type UnmarshalFamily struct{}

// UnmarshalError reports data that couldn't be decoded into What.
type UnmarshalError struct {
	caused
	What string
	Data any `json:",omitempty"`
}

func Unmarshal(what string, data any) UnmarshalError {
	return UnmarshalError{What: what, Data: data}
}

func (ue UnmarshalError) Because(cause error) UnmarshalError {
	ue.cause = envelope.Ensure(cause)
	return ue
}

func (ue UnmarshalError) Error() string {
	return "cannot unmarshal " + ue.What + ue.suffix()
}

func (ue UnmarshalError) Envelope() *envelope.Envelope[UnmarshalFamily] {
	return envelope.New[UnmarshalFamily]("Unmarshal Error",
		envelope.WithDetails(fmt.Sprintf("%s (%T)", ue.What, ue.Data)),
		envelope.WithExtensions(ue),
		ue.option(),
	)
}

func (UnmarshalError) Family() typetag.Tag { return typetag.Of[UnmarshalFamily]() }

func (ue *UnmarshalError) Restore(o envelope.Opaque) bool {
	return restore(ue, o, func(p UnmarshalError) bool { return p.What != "" })
}
