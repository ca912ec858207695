package handlers

import (
	"net/http"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	service *services.AuthService
}

func NewAuthHandler(base *BaseHandler, service *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the email exists, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Param("resettoken"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// Profile returns the authenticated user's account.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.service.GetUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
