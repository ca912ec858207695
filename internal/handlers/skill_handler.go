package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	service *services.SkillService
}

func NewSkillHandler(base *BaseHandler, service *services.SkillService) *SkillHandler {
	return &SkillHandler{BaseHandler: base, service: service}
}

func (h *SkillHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateSkillCategoryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.service.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *SkillHandler) GetAll(c *gin.Context) {
	categories, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *SkillHandler) GetByID(c *gin.Context) {
	category, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *SkillHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateSkillCategoryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.service.UpdateCategory(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *SkillHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "skill category deleted"})
}

func (h *SkillHandler) AddSkill(c *gin.Context) {
	var req dto.AddSkillRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.service.AddSkill(c.Param("id"), req.Skill)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *SkillHandler) RemoveSkill(c *gin.Context) {
	category, err := h.service.RemoveSkill(c.Param("id"), c.Param("skill"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}
