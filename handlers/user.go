package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSession handles GET /api/users/me. A token whose profile is gone yields a
// null user rather than an error.
func (h *UserHandler) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profile, err := h.UserService.GetSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}
