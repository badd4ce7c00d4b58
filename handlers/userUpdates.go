package handlers

import (
	"net/http"

	"salonify/models"
	"salonify/utils"

	"github.com/gin-gonic/gin"
)

// UpdateProfile handles PATCH /api/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile update", err.Error())
		return
	}
	updated, err := h.UserService.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateSettings handles PATCH /api/users/me/settings.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid settings update", err.Error())
		return
	}
	updated, err := h.UserService.UpdateSettings(c.Request.Context(), userID, update)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}
