package utils

import (
	"net/http"

	"saathi/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware that catches panics and returns a
// structured 500 instead of dropping the connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
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

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// statusForCode maps the service error taxonomy to HTTP statuses.
func statusForCode(code models.ErrorCode) int {
	switch code {
	case models.ErrCodeValidation:
		return http.StatusBadRequest
	case models.ErrCodeNotFound:
		return http.StatusNotFound
	case models.ErrCodeForbidden:
		return http.StatusForbidden
	case models.ErrCodeConflict:
		return http.StatusConflict
	case models.ErrCodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes a service error as a JSON response with the
// status implied by its code. Uncoded errors become 500s with a
// generic message so internals never leak to the caller.
func RespondError(c *gin.Context, err error) {
	code := models.CodeOf(err)
	if code == "" {
		GetLogger().Error("Unexpected service failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Something went wrong. Please try again.",
		})
		return
	}
	c.JSON(statusForCode(code), ErrorResponse{Message: models.MessageOf(err)})
}
