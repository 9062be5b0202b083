package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
)

// APIResponse is the envelope every endpoint returns. Errors always carry a
// human-readable Message; internal causes never reach the client.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given status and payload.
func Success[T any](c *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

// Error writes an error envelope and aborts the remaining handlers.
func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     details,
	})
}

// FromError maps a service error onto the wire. Known apperror kinds keep
// their message and status; anything else becomes an opaque 500.
func FromError(c *gin.Context, err error) {
	if ae, ok := apperror.From(err); ok {
		Error(c, ae.StatusCode(), ae.Message, nil)
		return
	}
	Error(c, http.StatusInternalServerError, "internal server error", nil)
}
