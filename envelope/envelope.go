package envelope

import (
	"fmt"

	"github.com/jt0/errkit/typetag"
)

// Envelope is a type-tagged error container. M is a marker type naming the
// error family and is only ever inspected through its typetag.Tag. An
// Envelope is immutable once constructed.
type Envelope[M any] struct {
	fields
}

type fields struct {
	description string
	details     string
	extensions  any
	cause       Opaque
}

// compile-time guarantee that *Envelope implements Opaque
var _ Opaque = (*Envelope[struct{}])(nil)

// Option configures an Envelope during construction via New().
type Option func(*fields)

// WithDetails sets instance-specific, longer-form text.
func WithDetails(details string) Option {
	return func(f *fields) { f.details = details }
}

func WithDetailsf(format string, args ...any) Option {
	return func(f *fields) { f.details = fmt.Sprintf(format, args...) }
}

// WithExtensions attaches a family-specific payload. Concrete error types
// typically store themselves here so Restore can rebuild them.
func WithExtensions(extensions any) Option {
	return func(f *fields) { f.extensions = extensions }
}

// WithCause chains another error. A nil cause is ignored.
func WithCause(cause Opaque) Option {
	return func(f *fields) {
		if !isNil(cause) {
			f.cause = cause
		}
	}
}

// WithCauseError chains a plain Go error, erasing it via Ensure.
func WithCauseError(cause error) Option {
	return func(f *fields) {
		if o := Ensure(cause); o != nil {
			f.cause = o
		}
	}
}

// New creates an Envelope in family M. An empty description means none was
// given; construction never fails.
func New[M any](description string, opts ...Option) *Envelope[M] {
	e := &Envelope[M]{fields{description: description}}
	for _, o := range opts {
		o(&e.fields)
	}

	return e
}

// ------ generic view

func (e *Envelope[M]) Tag() typetag.Tag {
	return typetag.Of[M]()
}

// HasTag reports whether the envelope belongs to the family identified by tag.
func (e *Envelope[M]) HasTag(tag typetag.Tag) bool {
	return e.Tag() == tag
}

func (e *Envelope[M]) Description() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.description, e.description != ""
}

func (e *Envelope[M]) Details() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.details, e.details != ""
}

func (e *Envelope[M]) Extensions() any {
	if e == nil {
		return nil
	}
	return e.extensions
}

func (e *Envelope[M]) Cause() Opaque {
	if e == nil {
		return nil
	}
	return e.cause
}

// ------ standard library interop

// Unwrap exposes the cause to errors.Is / errors.As. A foreign error with no
// envelope cause unwraps to the original error.
func (e *Envelope[M]) Unwrap() error {
	if e == nil {
		return nil
	}
	if e.cause != nil {
		return e.cause
	}
	if fe, ok := e.extensions.(ForeignError); ok {
		return fe.Err
	}

	return nil
}

// Is reports whether target is an envelope of the same family, so a zero-value
// envelope works as a family sentinel with errors.Is.
func (e *Envelope[M]) Is(target error) bool {
	o, ok := target.(Opaque)
	return ok && o.Tag() == e.Tag()
}

// HasTag reports whether o's family is R. A nil handle has no family.
func HasTag[R any](o Opaque) bool {
	return !isNil(o) && o.Tag() == typetag.Of[R]()
}

// Erase returns e as an Opaque handle. A nil envelope erases to nil.
func Erase[M any](e *Envelope[M]) Opaque {
	if e == nil {
		return nil
	}
	return e
}
