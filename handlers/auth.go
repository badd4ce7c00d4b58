package handlers

import (
	"net/http"

	"salonify/services/user"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves sign-up, sign-in and the signed-in user's profile.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// SignUp handles POST /api/auth/signup.
func (h *UserHandler) SignUp(c *gin.Context) {
	var req user.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sign up request", err.Error())
		return
	}
	resp, err := h.UserService.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Sign up failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignIn handles POST /api/auth/signin.
func (h *UserHandler) SignIn(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sign in request", err.Error())
		return
	}
	resp, err := h.UserService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Info("sign in rejected", zap.Error(err))
		respondError(c, err, "Sign in failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut handles POST /api/auth/signout.
func (h *UserHandler) SignOut(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.SignOut(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Sign out failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
