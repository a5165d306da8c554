package response

import "github.com/gin-gonic/gin"

// The JSON API speaks a fixed contract: success bodies carry a message plus
// the provider-opaque data, error bodies carry a single error string. The
// browser client only ever branches on the status code.

// Success is the 2xx body shape.
type Success struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Failure is the non-2xx body shape.
type Failure struct {
	Error string `json:"error"`
}

// OK sends a success response
func OK(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Success{Message: message, Data: data})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Failure{Error: message})
}
