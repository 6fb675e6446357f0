package families

import (
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

type ConfigurationFamily struct{}

type ConfigurationError struct {
	caused
	Problem string
}

func Configuration(problem string) ConfigurationError {
	return ConfigurationError{Problem: problem}
}

func (ce ConfigurationError) Because(cause error) ConfigurationError {
	ce.cause = envelope.Ensure(cause)
	return ce
}

func (ce ConfigurationError) Error() string {
	return "configuration error: " + ce.Problem + ce.suffix()
}

func (ce ConfigurationError) Envelope() *envelope.Envelope[ConfigurationFamily] {
	return envelope.New[ConfigurationFamily]("Configuration Error",
		envelope.WithDetails(ce.Problem),
		envelope.WithExtensions(ce),
		ce.option(),
	)
}

func (ConfigurationError) Family() typetag.Tag { return typetag.Of[ConfigurationFamily]() }

func (ce *ConfigurationError) Restore(o envelope.Opaque) bool {
	return restore(ce, o, nil)
}
