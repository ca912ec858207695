package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	service *services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, service: service}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
