package handlers

import (
	"net/http"

	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	service *services.ProjectService
}

func NewProjectHandler(base *BaseHandler, service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, service: service}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.ProjectImageRule.FormField)
	if !ok {
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.ProjectImageRule.FormField)
	if !ok {
		return
	}

	project, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
