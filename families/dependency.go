package families

import (
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type DependencyFamily struct{}

// DependencyError reports a failed call to another service.
type DependencyError struct {
	caused
	Service   string
	Operation string `json:",omitempty"`
	Request   any    `json:",omitempty"`
}

func Dependency(service string, request any) DependencyError {
	return DependencyError{Service: service, Request: request}
}

// WithOperation names the call on Service that failed.
func (de DependencyError) WithOperation(operation string) DependencyError {
	de.Operation = operation
	return de
}

func (de DependencyError) Because(cause error) DependencyError {
	de.cause = envelope.Ensure(cause)
	return de
}

func (de DependencyError) Error() string {
	return "dependency " + de.target() + " failed" + de.suffix()
}

func (de DependencyError) Envelope() *envelope.Envelope[DependencyFamily] {
	return envelope.New[DependencyFamily]("Dependency Failure",
		envelope.WithDetails(de.target()),
		envelope.WithExtensions(de),
		de.option(),
	)
}

func (de DependencyError) target() string {
	if de.Operation == "" {
		return de.Service
	}
	return de.Service + "." + de.Operation
}

func (DependencyError) Family() typetag.Tag { return typetag.Of[DependencyFamily]() }

func (de *DependencyError) Restore(o envelope.Opaque) bool {
	return restore(de, o, func(p DependencyError) bool { return p.Service != "" })
}
