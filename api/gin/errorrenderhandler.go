package gin

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jt0/errkit/api/http"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
	"github.com/jt0/errkit/logs"
)

// ErrorRenderHandler renders the last error recorded on the gin context.
// Errors that aren't envelopes are erased with envelope.Ensure first. Server
// side failures (5xx) are logged with their full chain.
func ErrorRenderHandler(renderer http.ErrorRenderer) gin.HandlerFunc {
	if renderer == nil {
		renderer = http.DefaultErrorRenderer
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		o := envelope.Ensure(c.Errors.Last().Err)
		statusCode, payload := renderer(o)
		if statusCode >= 500 {
			logs.Chain(logs.Logger.WithField("path", c.FullPath()), logrus.ErrorLevel, o)
		}

		c.JSON(statusCode, payload)
	}
}

// RecoveryHandler turns a panic in a later handler into a families.PanicError
// recorded on the context.
func RecoveryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				_ = c.Error(envelope.From[families.PanicFamily](families.Panic(r)))
				c.Abort()
			}
		}()

		c.Next()
	}
}
