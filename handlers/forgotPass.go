package handlers

import (
	"net/http"

	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResetPassword handles POST /api/auth/reset. The response does not reveal
// whether the email has an account.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reset request", err.Error())
		return
	}
	if err := h.UserService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		logger.Error("ResetPassword failed", zap.Error(err))
		respondError(c, err, "Password reset failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent."})
}

// ConfirmPasswordReset handles POST /api/auth/reset/confirm.
func (h *UserHandler) ConfirmPasswordReset(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reset confirmation", err.Error())
		return
	}
	if err := h.UserService.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err, "Password reset failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated. Please sign in."})
}
