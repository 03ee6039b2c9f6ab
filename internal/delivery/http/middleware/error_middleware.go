package middleware

import (
	"errors"
	"net/http"

	"go-resume-tracker/internal/delivery/http/response"
	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/apperror"
	"go-resume-tracker/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors collected on the gin context into the JSON
// envelope. Domain errors map to stable status codes; anything unknown is
// logged server-side and reported as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(c, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}

		var connErr *domain.ConnectionError
		if errors.As(err, &connErr) {
			logger.Log.Error("connection acquisition failed", "error", connErr.Err)
			response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
			return
		}

		var entityErr *domain.EntityProcessingError
		if errors.As(err, &entityErr) {
			// The entity role is safe to expose; the wrapped cause is not.
			logger.Log.Error("entity processing failed", "entity", entityErr.Entity, "error", entityErr.Err)
			response.Error(c, http.StatusInternalServerError, "Failed to process "+entityErr.Entity, nil)
			return
		}

		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
			return
		}

		logger.Log.Error("unhandled error", "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
