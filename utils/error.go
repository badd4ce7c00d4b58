package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	c.JSON(status, ErrorResponse{Message: message, Details: details})
	if status >= http.StatusInternalServerError {
		GetLogger().Error(message, zap.String("details", details), zap.String("path", c.Request.URL.Path))
		return
	}
	GetLogger().Warn(message, zap.String("details", details), zap.String("path", c.Request.URL.Path))
}

// AbortUnauthenticated rejects the request and tells the client where to sign in.
func AbortUnauthenticated(c *gin.Context, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Message:  "Authentication required",
		Details:  details,
		Redirect: "/auth",
	})
}
