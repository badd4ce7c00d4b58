package handlers

import (
	"net/http"

	"salonify/services/admin"
	"salonify/services/user"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves admin sign-in and account oversight.
type AdminHandler struct {
	AdminService admin.AdminService
	UserService  user.UserService
}

func NewAdminHandler(as admin.AdminService, us user.UserService) *AdminHandler {
	return &AdminHandler{AdminService: as, UserService: us}
}

// Login handles POST /api/admin/login.
func (ah *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}
	token, err := ah.AdminService.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err, "Admin login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetAllUsersHandler returns all users without credential fields.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.ListUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}
