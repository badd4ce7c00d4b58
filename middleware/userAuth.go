package middleware

import (
	"strings"

	userRepo "salonify/database/repository/user"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bearerToken returns the token from an "Authorization: Bearer" header. SSE
// clients cannot set headers, so a token query parameter is accepted too.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}

// JWTAuthUserMiddleware accepts a session token only while its hash is the one
// stored for the user. The auth cache is checked first; the user record on a miss.
func JWTAuthUserMiddleware(tokens *utils.TokenManager, repo userRepo.UserRepository, cache utils.TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := c.Request.Context()

		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.AbortUnauthenticated(c, "missing bearer token")
			return
		}

		claims, err := tokens.ParseClaims(tokenString, utils.PurposeSession)
		if err != nil || claims.Role != utils.RoleUser {
			utils.AbortUnauthenticated(c, "invalid token")
			return
		}
		userID := claims.Subject
		computedHash := utils.HashToken(tokenString)

		cachedHash, ok, err := cache.Get(ctx, userID)
		if err != nil {
			logger.Warn("auth cache read failed, falling back to user lookup", zap.String("userID", userID), zap.Error(err))
		}
		if ok {
			if cachedHash != computedHash {
				utils.AbortUnauthenticated(c, "session has ended")
				return
			}
			c.Set("userID", userID)
			c.Next()
			return
		}

		usr, err := repo.GetByID(ctx, userID)
		if err != nil || usr == nil {
			utils.AbortUnauthenticated(c, "session has ended")
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			utils.AbortUnauthenticated(c, "session has ended")
			return
		}

		if err := cache.Set(ctx, userID, computedHash); err != nil {
			logger.Warn("auth cache write failed", zap.String("userID", userID), zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}
