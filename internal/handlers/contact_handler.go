package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	service *services.ContactService
}

func NewContactHandler(base *BaseHandler, service *services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, service: service}
}

// Submit is the only unauthenticated write endpoint.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	message, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *ContactHandler) GetAll(c *gin.Context) {
	messages, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	message, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
