package handlers

import (
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	service *services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{BaseHandler: base, service: service}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.service.Get()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	setting, err := h.service.Update(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateProfilePhoto accepts only the photo file; text fields go through
// the regular update.
func (h *SettingsHandler) UpdateProfilePhoto(c *gin.Context) {
	file, ok := h.OptionalFormFile(c, managedfile.ProfilePhotoRule.FormField)
	if !ok {
		return
	}
	if file == nil {
		apperrors.HandleError(c, apperrors.ErrFileRequired)
		return
	}

	setting, err := h.service.UpdateProfilePhoto(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
