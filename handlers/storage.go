package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"salonify/services/content"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// formImage returns the "file" form part after checking its size and extension.
func formImage(c *gin.Context) (multipart.File, *multipart.FileHeader, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return nil, nil, false
	}
	if fileHeader.Size > maxUploadBytes {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "File too large", "images are limited to 10 MB")
		return nil, nil, false
	}
	if !allowedImageExts[strings.ToLower(filepath.Ext(fileHeader.Filename))] {
		utils.JSONError(c, http.StatusBadRequest, "Unsupported file type", "allowed: jpg, jpeg, png, webp, gif")
		return nil, nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to read file", err.Error())
		return nil, nil, false
	}
	return file, fileHeader, true
}

// UploadHero handles POST /api/admin/hero/upload (multipart: file, title, subtitle).
func (h *ContentHandler) UploadHero(c *gin.Context) {
	var input content.HeroInput
	if err := c.ShouldBind(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hero image", err.Error())
		return
	}
	file, header, ok := formImage(c)
	if !ok {
		return
	}
	defer file.Close()

	item, err := h.ContentSvc.UploadHero(c.Request.Context(), file, header.Filename, input)
	if err != nil {
		getLogger(c).Error("hero upload failed", zap.String("filename", header.Filename), zap.Error(err))
		respondError(c, err, "Failed to upload hero image")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UploadGalleryItem handles POST /api/admin/gallery/upload (multipart: file, caption, category).
func (h *ContentHandler) UploadGalleryItem(c *gin.Context) {
	var input content.GalleryInput
	if err := c.ShouldBind(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid gallery item", err.Error())
		return
	}
	file, header, ok := formImage(c)
	if !ok {
		return
	}
	defer file.Close()

	item, err := h.ContentSvc.UploadGalleryItem(c.Request.Context(), file, header.Filename, input)
	if err != nil {
		getLogger(c).Error("gallery upload failed", zap.String("filename", header.Filename), zap.Error(err))
		respondError(c, err, "Failed to upload gallery item")
		return
	}
	c.JSON(http.StatusCreated, item)
}
