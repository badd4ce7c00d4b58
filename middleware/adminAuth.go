package middleware

import (
	"salonify/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware requires a session token carrying the admin role.
func JWTAuthAdminMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.AbortUnauthenticated(c, "missing bearer token")
			return
		}
		claims, err := tokens.ParseClaims(tokenString, utils.PurposeSession)
		if err != nil || claims.Role != utils.RoleAdmin {
			utils.AbortUnauthenticated(c, "admin access required")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
