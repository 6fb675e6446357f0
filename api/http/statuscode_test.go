package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/jt0/errkit/_test/assert"
	"github.com/jt0/errkit/api/http"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
)

type teapot struct{}

func (teapot) StatusCode() int { return nethttp.StatusTeapot }

type unknownFamily struct{}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	notFound := envelope.From[families.NotFoundFamily](families.NotFound("Thing", "1"))

	tests := []struct {
		name   string
		handle envelope.Opaque
		want   int
	}{
		{"nil", nil, nethttp.StatusInternalServerError},
		{"known family", notFound, nethttp.StatusNotFound},
		{"bad value", envelope.From[families.BadValueFamily](families.Invalid("size", -1)), nethttp.StatusBadRequest},
		{"status coder wins", envelope.New[families.NotFoundFamily]("x", envelope.WithExtensions(teapot{})), nethttp.StatusTeapot},
		{"unknown holder defers to cause", envelope.New[unknownFamily]("wrapper", envelope.WithCause(notFound)), nethttp.StatusNotFound},
		{"unknown chain", envelope.New[unknownFamily]("wrapper"), nethttp.StatusInternalServerError},
		{"foreign", envelope.Wrap(nethttp.ErrHandlerTimeout), nethttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equals(t, tt.want, http.StatusCode(tt.handle))
		})
	}
}

func TestDefaultErrorRenderer(t *testing.T) {
	t.Parallel()

	o := envelope.New[unknownFamily]("", envelope.WithExtensions("secret"))
	status, payload := http.DefaultErrorRenderer(o)

	assert.Equals(t, nethttp.StatusInternalServerError, status)
	assert.Equals(t, map[string]any{"error": map[string]any{
		"type":    "http_test.unknownFamily",
		"message": envelope.Placeholder,
	}}, payload)
	assert.Nil(t, http.LinkDetails(nil))
}
