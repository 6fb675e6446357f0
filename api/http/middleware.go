package http

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/logs"
)

// ResponseWriter buffers a handler's response so that an error reported via
// WriteError can replace whatever was written before it.
type ResponseWriter struct {
	statusCode int
	header     http.Header
	body       []byte
	err        error
}

func (rw *ResponseWriter) Header() http.Header {
	if rw.header == nil {
		rw.header = make(http.Header)
	}
	return rw.header
}

func (rw *ResponseWriter) Write(b []byte) (int, error) {
	rw.body = append(rw.body, b...)
	return len(b), nil
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
}

// WriteError records err as the outcome of the request. The last call wins.
func (rw *ResponseWriter) WriteError(err error) {
	rw.err = err
}

// ErrorMiddleware buffers the response of next. If the handler reported an
// error through WriteError (or via the ErrorHandler adapter) the buffered
// output is discarded and the error is rendered instead.
func ErrorMiddleware(renderer ErrorRenderer) func(http.Handler) http.Handler {
	if renderer == nil {
		renderer = DefaultErrorRenderer
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &ResponseWriter{}
			next.ServeHTTP(rw, r)
			rw.writeTo(w, renderer)
		})
	}
}

// ErrorHandler adapts a handler that returns an error. It must run beneath
// ErrorMiddleware; otherwise errors are rendered with DefaultErrorRenderer.
func ErrorHandler(h func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*ResponseWriter)
		if !ok {
			rw = &ResponseWriter{}
			defer rw.writeTo(w, DefaultErrorRenderer)
		}

		if err := h(rw, r); err != nil {
			rw.WriteError(err)
		}
	})
}

// Chain combines middleware so that the first one listed is outermost.
func Chain(middleware ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			final = middleware[i](final)
		}
		return final
	}
}

func (rw *ResponseWriter) writeTo(w http.ResponseWriter, renderer ErrorRenderer) {
	if rw.err != nil {
		o := envelope.Ensure(rw.err)
		statusCode, payload := renderer(o)
		if statusCode >= http.StatusInternalServerError {
			logs.Chain(logs.Logger.WithField("status", statusCode), logrus.ErrorLevel, o)
		}

		bytes, err := json.Marshal(payload)
		if err != nil {
			statusCode = http.StatusInternalServerError
			bytes, _ = json.Marshal(map[string]any{"error": LinkDetails(o)})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write(bytes)
		return
	}

	for h, hv := range rw.header {
		w.Header()[h] = hv
	}
	if rw.statusCode != 0 {
		w.WriteHeader(rw.statusCode)
	}
	_, _ = w.Write(rw.body)
}
