package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	*BaseHandler
	service *services.AchievementService
}

func NewAchievementHandler(base *BaseHandler, service *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{BaseHandler: base, service: service}
}

func (h *AchievementHandler) Create(c *gin.Context) {
	var req dto.CreateAchievementRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	achievement, err := h.service.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, achievement)
}

func (h *AchievementHandler) GetAll(c *gin.Context) {
	achievements, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *AchievementHandler) GetByID(c *gin.Context) {
	achievement, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}

func (h *AchievementHandler) Update(c *gin.Context) {
	var req dto.UpdateAchievementRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	achievement, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}

func (h *AchievementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "achievement deleted"})
}
