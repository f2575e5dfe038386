package response

import (
	"encoding/json"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Response is the common JSON envelope.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: msg})
}

// InternalError reports the error to sentry (no-op when no client is
// configured) and answers 500.
func InternalError(c *gin.Context, err error) {
	sentry.CaptureException(err)
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: err.Error()})
}

// Render marshals a success envelope without writing it, so callers can
// cache the exact bytes they serve.
func Render(data any) ([]byte, error) {
	return json.Marshal(Response{Code: 0, Message: "ok", Data: data})
}

// Raw writes a previously rendered envelope.
func Raw(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
