package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Warnings  []string    `json:"warnings,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// SuccessWithWarnings sends a success response carrying advisory
// messages that did not block the operation.
func SuccessWithWarnings(c *gin.Context, code int, message string, data interface{}, warnings []string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Warnings:  warnings,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// ValidationFailed sends a 422 carrying the per-field error list.
func ValidationFailed(c *gin.Context, details interface{}) {
	Error(c, http.StatusUnprocessableEntity, "Validation failed", details)
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}
