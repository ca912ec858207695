package apperrors

import (
	"errors"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body: {"error": {"code", "message"}}.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// AbortWithError writes the standard error body and stops the handler
// chain. For use in middleware.
func AbortWithError(c *gin.Context, err *AppError) {
	HandleError(c, err)
	c.Abort()
}

// HandleValidationError converts a validation failure into the standard
// shape, keeping the per-field messages when they are available.
func HandleValidationError(c *gin.Context, err error) {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		HandleError(c, ErrValidationFailed.WithDetails(vErr.Errors))
		return
	}
	HandleError(c, ErrValidationFailed.WithDetails(err.Error()))
}
