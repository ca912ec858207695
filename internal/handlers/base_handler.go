package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs: request binding,
// input validation and the error-to-response mapping.
type BaseHandler struct {
	validate *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validate: v}
}

// BindAndValidate binds JSON or form data (content-type dependent) and
// runs struct validation. On failure it writes the 400 response and
// returns false.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		return false
	}
	if err := h.validate.Validate(obj); err != nil {
		apperrors.HandleValidationError(c, err)
		return false
	}
	return true
}

// OptionalFormFile returns the named multipart file, or nil when the
// field is absent. Any other multipart failure is a 400.
func (h *BaseHandler) OptionalFormFile(c *gin.Context, field string) (*multipart.FileHeader, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("malformed multipart form"))
		return nil, false
	}
	return file, true
}

// HandleServiceError maps a service error onto the HTTP response. Errors
// that are not AppErrors are logged and surfaced as opaque 500s.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(c.Request.Context(), "unexpected error", err, "path", c.FullPath())
	apperrors.HandleError(c, apperrors.InternalError(err))
}
