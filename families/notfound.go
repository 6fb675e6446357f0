package families

import (
	"fmt"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type NotFoundFamily struct{}

type NotFoundError struct {
	caused
	Type string
	Id   string
}

func NotFound(type_ string, id string) NotFoundError {
	return NotFoundError{Type: type_, Id: id}
}

func (nf NotFoundError) Because(cause error) NotFoundError {
	nf.cause = envelope.Ensure(cause)
	return nf
}

func (nf NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", nf.Type, nf.Id) + nf.suffix()
}

func (nf NotFoundError) Envelope() *envelope.Envelope[NotFoundFamily] {
	return envelope.New[NotFoundFamily]("Not Found",
		envelope.WithDetailsf("%s %q", nf.Type, nf.Id),
		envelope.WithExtensions(nf),
		nf.option(),
	)
}

func (NotFoundError) Family() typetag.Tag { return typetag.Of[NotFoundFamily]() }

func (nf *NotFoundError) Restore(o envelope.Opaque) bool {
	return restore(nf, o, func(p NotFoundError) bool { return p.Type != "" })
}
