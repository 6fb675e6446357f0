package envelope_test

import (
	"fmt"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type parseMarker struct{}

type ParseError struct {
	Location int
}

func (pe ParseError) Error() string { return fmt.Sprintf("parse error at %d", pe.Location) }

func (pe ParseError) Envelope() *envelope.Envelope[parseMarker] {
	return envelope.New[parseMarker]("Parse Error", envelope.WithExtensions(pe))
}

func (ParseError) Family() typetag.Tag { return typetag.Of[parseMarker]() }

func (pe *ParseError) Restore(o envelope.Opaque) bool {
	payload, ok := o.Extensions().(ParseError)
	if !ok {
		return false
	}
	*pe = payload
	return true
}

type ioMarker struct{}

type IoError struct {
	Path string
}

func (ie IoError) Envelope() *envelope.Envelope[ioMarker] {
	return envelope.New[ioMarker]("I/O Error", envelope.WithDetails(ie.Path))
}

func (IoError) Family() typetag.Tag { return typetag.Of[ioMarker]() }

// Restore rebuilds from details alone, showing payload needn't live in extensions.
func (ie *IoError) Restore(o envelope.Opaque) bool {
	path, ok := o.Details()
	ie.Path = path
	return ok
}

// explodingError claims the parse family but its Restore panics.
type explodingError struct{}

func (explodingError) Family() typetag.Tag { return typetag.Of[parseMarker]() }

func (*explodingError) Restore(envelope.Opaque) bool { panic("boom") }
