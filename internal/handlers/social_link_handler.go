package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SocialLinkHandler struct {
	*BaseHandler
	service *services.SocialLinkService
}

func NewSocialLinkHandler(base *BaseHandler, service *services.SocialLinkService) *SocialLinkHandler {
	return &SocialLinkHandler{BaseHandler: base, service: service}
}

func (h *SocialLinkHandler) Create(c *gin.Context) {
	var req dto.CreateSocialLinkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	link, err := h.service.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *SocialLinkHandler) GetAll(c *gin.Context) {
	links, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *SocialLinkHandler) GetByID(c *gin.Context) {
	link, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *SocialLinkHandler) Update(c *gin.Context) {
	var req dto.UpdateSocialLinkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	link, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *SocialLinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "social link deleted"})
}
