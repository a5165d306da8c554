package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-site/internal/delivery/http/response"
	"go-portfolio-site/pkg/apperror"
	"go-portfolio-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into the API's error
// body. Anything that is not an AppError is logged server-side and reported
// as a generic 500 so internal detail never reaches the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.Request.URL.Path,
					"status", appErr.Code,
					"error", appErr.Err.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err.Error())
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Recovery turns panics into the same generic 500 body instead of an empty
// response, so a malformed or adversarial request can never crash the
// process or leak a stack trace.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Failure{Error: "Internal server error"})
	})
}
