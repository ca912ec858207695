package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	*BaseHandler
	service *services.EducationService
}

func NewEducationHandler(base *BaseHandler, service *services.EducationService) *EducationHandler {
	return &EducationHandler{BaseHandler: base, service: service}
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req dto.CreateEducationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	education, err := h.service.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, education)
}

func (h *EducationHandler) GetAll(c *gin.Context) {
	entries, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *EducationHandler) GetByID(c *gin.Context) {
	education, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, education)
}

func (h *EducationHandler) Update(c *gin.Context) {
	var req dto.UpdateEducationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	education, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, education)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "education entry deleted"})
}
