package handlers

import (
	"net/http"

	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	*BaseHandler
	service *services.ResumeService
}

func NewResumeHandler(base *BaseHandler, service *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{BaseHandler: base, service: service}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req dto.CreateResumeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.ResumeFileRule.FormField)
	if !ok {
		return
	}

	resume, err := h.service.Create(c.Request.Context(), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) GetAll(c *gin.Context) {
	resumes, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) GetByID(c *gin.Context) {
	resume, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req dto.UpdateResumeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.ResumeFileRule.FormField)
	if !ok {
		return
	}

	resume, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resume deleted"})
}
