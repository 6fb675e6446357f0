package families

import (
	"fmt"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type PanicFamily struct{}

// PanicError captures a value obtained from recover().
type PanicError struct {
	caused
	Recovered any
}

// Panic builds a PanicError. If the recovered value is itself an error it
// becomes the cause.
func Panic(recovered any) PanicError {
	pe := PanicError{Recovered: recovered}
	if err, ok := recovered.(error); ok {
		pe.cause = envelope.Ensure(err)
	}
	return pe
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic: %v", pe.Recovered)
}

func (pe PanicError) Envelope() *envelope.Envelope[PanicFamily] {
	return envelope.New[PanicFamily]("Panic",
		envelope.WithDetailsf("%v", pe.Recovered),
		envelope.WithExtensions(pe),
		pe.option(),
	)
}

func (PanicError) Family() typetag.Tag { return typetag.Of[PanicFamily]() }

func (pe *PanicError) Restore(o envelope.Opaque) bool {
	return restore(pe, o, nil)
}
