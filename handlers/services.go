package handlers

import (
	"net/http"

	"salonify/services/content"
	"salonify/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the catalog, site content, settings and the contact form.
type ContentHandler struct {
	ContentSvc content.ContentService
}

func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{ContentSvc: svc}
}

// ListServices handles GET /api/catalog/services.
func (h *ContentHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentSvc.ListServices())
}

// GetService handles GET /api/catalog/services/:id.
func (h *ContentHandler) GetService(c *gin.Context) {
	svc, ok := h.ContentSvc.GetService(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Service not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListPackages handles GET /api/catalog/packages.
func (h *ContentHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentSvc.ListPackages())
}
