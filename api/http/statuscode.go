package http

import (
	"net/http"

	"github.com/jt0/errkit/awserr"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
	"github.com/jt0/errkit/typetag"
)

// StatusCoder may be implemented by an extensions payload to choose the HTTP
// status for its envelope.
type StatusCoder interface {
	StatusCode() int
}

var statusCodes = map[typetag.Tag]int{
	typetag.Of[families.NotFoundFamily]():      http.StatusNotFound,
	typetag.Of[families.ConflictFamily]():      http.StatusConflict,
	typetag.Of[families.BadValueFamily]():      http.StatusBadRequest,
	typetag.Of[families.UnmarshalFamily]():     http.StatusBadRequest,
	typetag.Of[families.DependencyFamily]():    http.StatusBadGateway,
	typetag.Of[awserr.ServiceFamily]():         http.StatusBadGateway,
	typetag.Of[families.InternalFamily]():      http.StatusInternalServerError,
	typetag.Of[families.ConfigurationFamily](): http.StatusInternalServerError,
	typetag.Of[families.PanicFamily]():         http.StatusInternalServerError,
}

// StatusCode walks o's chain and returns the status of the first link that
// either carries a StatusCoder payload or belongs to a known family. Unknown
// chains are a 500.
func StatusCode(o envelope.Opaque) int {
	status := http.StatusInternalServerError
	envelope.Walk(o, func(_ int, link envelope.Opaque) bool {
		if sc, ok := link.Extensions().(StatusCoder); ok {
			status = sc.StatusCode()
			return false
		}
		if s, ok := statusCodes[link.Tag()]; ok {
			status = s
			return false
		}
		return true
	})

	return status
}
