package http_test

import (
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/jt0/errkit/_test/assert"
	"github.com/jt0/errkit/api/http"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
)

func serve(h nethttp.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/orders/1", nil))
	return w
}

func TestErrorMiddleware_PassesThroughSuccess(t *testing.T) {
	t.Parallel()

	h := http.ErrorMiddleware(nil)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.Header().Set("X-Order", "1")
		w.WriteHeader(nethttp.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	w := serve(h)
	assert.Equals(t, nethttp.StatusCreated, w.Code)
	assert.Equals(t, "1", w.Header().Get("X-Order"))
	assert.Equals(t, "ok", w.Body.String())
}

func TestErrorMiddleware_RendersEnvelope(t *testing.T) {
	t.Parallel()

	h := http.Chain(http.ErrorMiddleware(nil))(http.ErrorHandler(func(w nethttp.ResponseWriter, _ *nethttp.Request) error {
		_, _ = w.Write([]byte("partial"))
		return envelope.From[families.NotFoundFamily](families.NotFound("Order", "1"))
	}))

	w := serve(h)
	assert.Equals(t, nethttp.StatusNotFound, w.Code)
	assert.Equals(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]map[string]any
	assert.Success(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equals(t, "Not Found", body["error"]["message"])
	assert.Equals(t, `Order "1"`, body["error"]["details"])
}

func TestErrorHandler_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	h := http.ErrorHandler(func(nethttp.ResponseWriter, *nethttp.Request) error {
		return errors.New("boom")
	})

	w := serve(h)
	assert.Equals(t, nethttp.StatusInternalServerError, w.Code)

	var body map[string]map[string]any
	assert.Success(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equals(t, "envelope.Foreign", body["error"]["type"])
	assert.Equals(t, "boom", body["error"]["message"])
}

func TestErrorMiddleware_CustomRenderer(t *testing.T) {
	t.Parallel()

	renderer := func(o envelope.Opaque) (int, any) {
		return nethttp.StatusTeapot, map[string]string{"tag": o.Tag().String()}
	}
	h := http.ErrorMiddleware(renderer)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.(*http.ResponseWriter).WriteError(envelope.From[families.InternalFamily](families.Internal("x")))
	}))

	w := serve(h)
	assert.Equals(t, nethttp.StatusTeapot, w.Code)
	assert.Equals(t, `{"tag":"families.InternalFamily"}`, w.Body.String())
}
