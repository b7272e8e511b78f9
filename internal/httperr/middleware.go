package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// envelope is the uniform error body. Stack is omitted from the JSON
// entirely unless populated, so non-development responses never carry it.
type envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Stack      string `json:"stack,omitempty"`
}

// Renderer converts errors attached to the gin context into the uniform
// error envelope. Anything that is not a typed *Error becomes a 500 with
// the cause logged server-side only.
func Renderer(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		var httpErr *Error
		if !errors.As(last.Err, &httpErr) {
			log.WithError(last.Err).Errorf("%s %s: unexpected error", c.Request.Method, c.Request.URL.Path)
			httpErr = Internal()
		} else {
			log.Errorf("%d - %s", httpErr.StatusCode, httpErr.Message)
		}

		body := envelope{
			StatusCode: httpErr.StatusCode,
			Message:    httpErr.Message,
		}
		if development {
			body.Stack = httpErr.Stack()
		}
		c.JSON(httpErr.StatusCode, body)
	}
}

// NoRoute is the catch-all for unmatched paths.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(NotFound(fmt.Sprintf("Page %s not found", c.Request.URL.Path)))
		c.Abort()
	}
}

// Recovery converts panics into the uniform 500 envelope. The panic
// value stays in the server log.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("%s %s: panic recovered: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, envelope{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal Server Error",
		})
	})
}

// Abort attaches err to the context and stops the handler chain; the
// Renderer turns it into a response on the way out.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
