package handlers

import (
	"net/http"

	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	*BaseHandler
	service *services.CertificateService
}

func NewCertificateHandler(base *BaseHandler, service *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{BaseHandler: base, service: service}
}

func (h *CertificateHandler) Create(c *gin.Context) {
	var req dto.CreateCertificateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.CertificateFileRule.FormField)
	if !ok {
		return
	}

	certificate, err := h.service.Create(c.Request.Context(), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, certificate)
}

func (h *CertificateHandler) GetAll(c *gin.Context) {
	certificates, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificates)
}

func (h *CertificateHandler) GetByID(c *gin.Context) {
	certificate, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificate)
}

func (h *CertificateHandler) Update(c *gin.Context) {
	var req dto.UpdateCertificateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	file, ok := h.OptionalFormFile(c, managedfile.CertificateFileRule.FormField)
	if !ok {
		return
	}

	certificate, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certificate)
}

func (h *CertificateHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "certificate deleted"})
}
