// Package awserr erases AWS SDK errors into envelope families so callers can
// handle them without importing the SDK's exception types.
package awserr

import (
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type ServiceFamily struct{}

// ServiceError is an AWS API error that no more specific family claimed.
type ServiceError struct {
	Service   string
	Operation string
	Code      string
	Message   string
	Fault     smithy.ErrorFault
	cause     envelope.Opaque
}

func (se ServiceError) Cause() envelope.Opaque { return se.cause }

func (se ServiceError) Unwrap() error {
	if se.cause == nil {
		return nil
	}
	return se.cause
}

func (se ServiceError) Error() string {
	return fmt.Sprintf("%s %s: %s (%s fault): %s", se.Service, se.Operation, se.Code, se.Fault, se.Message)
}

func (se ServiceError) Envelope() *envelope.Envelope[ServiceFamily] {
	return envelope.New[ServiceFamily]("AWS Service Error",
		envelope.WithDetailsf("%s.%s: %s", se.Service, se.Operation, se.Code),
		envelope.WithExtensions(se),
		envelope.WithCause(se.cause),
	)
}

func (ServiceError) Family() typetag.Tag { return typetag.Of[ServiceFamily]() }

func (se *ServiceError) Restore(o envelope.Opaque) bool {
	payload, ok := o.Extensions().(ServiceError)
	if !ok || payload.Code == "" {
		return false
	}

	*se = payload
	se.cause = o.Cause()
	return true
}
