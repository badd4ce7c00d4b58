package handlers

import (
	"net/http"

	"salonify/models"
	"salonify/services/content"
	"salonify/utils"

	"github.com/gin-gonic/gin"
)

func (h *ContentHandler) ListHero(c *gin.Context) {
	items, err := h.ContentSvc.ListHero(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load hero images")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateHero handles POST /api/admin/hero with an existing image URL.
func (h *ContentHandler) CreateHero(c *gin.Context) {
	var input content.HeroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hero image", err.Error())
		return
	}
	item, err := h.ContentSvc.CreateHero(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to save hero image")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) DeleteHero(c *gin.Context) {
	if err := h.ContentSvc.DeleteHero(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete hero image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hero image deleted"})
}

func (h *ContentHandler) ListGallery(c *gin.Context) {
	items, err := h.ContentSvc.ListGallery(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateGalleryItem handles POST /api/admin/gallery with an existing image URL.
func (h *ContentHandler) CreateGalleryItem(c *gin.Context) {
	var input content.GalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid gallery item", err.Error())
		return
	}
	item, err := h.ContentSvc.CreateGalleryItem(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to save gallery item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) DeleteGalleryItem(c *gin.Context) {
	if err := h.ContentSvc.DeleteGalleryItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete gallery item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}

func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews, err := h.ContentSvc.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ContentHandler) CreateReview(c *gin.Context) {
	var input content.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review", err.Error())
		return
	}
	review, err := h.ContentSvc.CreateReview(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to save review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ContentHandler) DeleteReview(c *gin.Context) {
	if err := h.ContentSvc.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// SubmitContact handles POST /api/contact.
func (h *ContentHandler) SubmitContact(c *gin.Context) {
	var input content.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact message", err.Error())
		return
	}
	sub, err := h.ContentSvc.SubmitContact(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *ContentHandler) ListContacts(c *gin.Context) {
	subs, err := h.ContentSvc.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load messages")
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *ContentHandler) DeleteContact(c *gin.Context) {
	if err := h.ContentSvc.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// GetSettings handles GET /api/settings.
func (h *ContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.ContentSvc.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/settings.
func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	var update models.SalonSettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid settings", err.Error())
		return
	}
	settings, err := h.ContentSvc.UpdateSettings(c.Request.Context(), update)
	if err != nil {
		respondError(c, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
