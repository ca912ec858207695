package handlers

import (
	"net/http"

	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*BaseHandler
	service *services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, service *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{BaseHandler: base, service: service}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.CreateExperienceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.ExperienceLogoRule.FormField)
	if !ok {
		return
	}

	experience, err := h.service.Create(c.Request.Context(), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (h *ExperienceHandler) GetAll(c *gin.Context) {
	experiences, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) GetByID(c *gin.Context) {
	experience, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req dto.UpdateExperienceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.ExperienceLogoRule.FormField)
	if !ok {
		return
	}

	experience, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experience deleted"})
}
