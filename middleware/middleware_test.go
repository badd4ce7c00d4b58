package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	tokens *utils.TokenManager
	repo   *userRepo.MemoryUserRepo
	cache  *utils.MemoryTokenCache
	router *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tokens: utils.NewTokenManager("test-secret", 0),
		repo:   userRepo.NewMemoryUserRepo(),
		cache:  utils.NewMemoryTokenCache(),
		router: gin.New(),
	}
	f.router.GET("/me", JWTAuthUserMiddleware(f.tokens, f.repo, f.cache), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})
	f.router.GET("/admin", JWTAuthAdminMiddleware(f.tokens), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return f
}

// signIn stores a user with a live session and returns its token.
func (f *fixture) signIn(t *testing.T, id string) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.repo.Create(ctx, &models.User{ID: id, Email: id + "@example.com", Name: id}))
	token, err := f.tokens.GenerateToken(id, id+"@example.com", utils.RoleUser)
	require.NoError(t, err)
	require.NoError(t, f.repo.SetTokenHash(ctx, id, utils.HashToken(token)))
	return token
}

func (f *fixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestUserAuthAcceptsCurrentSession(t *testing.T) {
	f := newFixture(t)
	token := f.signIn(t, "u1")

	w := f.get("/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())

	hash, ok, err := f.cache.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, utils.HashToken(token), hash)
}

func TestUserAuthAcceptsQueryToken(t *testing.T) {
	f := newFixture(t)
	token := f.signIn(t, "u1")

	w := f.get("/me?token="+token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserAuthRejectsReplacedSession(t *testing.T) {
	f := newFixture(t)
	old := f.signIn(t, "u1")

	fresh, err := f.tokens.GenerateToken("u1", "u1@example.com", utils.RoleUser)
	require.NoError(t, err)
	require.NoError(t, f.repo.SetTokenHash(context.Background(), "u1", utils.HashToken(fresh)))
	require.NoError(t, f.cache.Set(context.Background(), "u1", utils.HashToken(fresh)))

	w := f.get("/me", old)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/auth"`)
	assert.Equal(t, http.StatusOK, f.get("/me", fresh).Code)
}

func TestUserAuthRejectsSignedOutSession(t *testing.T) {
	f := newFixture(t)
	token := f.signIn(t, "u1")
	require.NoError(t, f.repo.SetTokenHash(context.Background(), "u1", ""))

	assert.Equal(t, http.StatusUnauthorized, f.get("/me", token).Code)
}

func TestUserAuthRejectsBadTokens(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "u1")

	assert.Equal(t, http.StatusUnauthorized, f.get("/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.get("/me", "garbage").Code)

	other := utils.NewTokenManager("other-secret", 0)
	forged, err := other.GenerateToken("u1", "u1@example.com", utils.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, f.get("/me", forged).Code)

	reset, err := f.tokens.GenerateResetToken("u1", "u1@example.com", "fp", 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, f.get("/me", reset).Code)
}

func TestAdminAuthRequiresAdminRole(t *testing.T) {
	f := newFixture(t)
	userToken := f.signIn(t, "u1")
	assert.Equal(t, http.StatusUnauthorized, f.get("/admin", userToken).Code)
	assert.Equal(t, http.StatusUnauthorized, f.get("/admin", "").Code)

	adminToken, err := f.tokens.GenerateToken("admin", "", utils.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, f.get("/admin", adminToken).Code)
	assert.Equal(t, http.StatusUnauthorized, f.get("/me", adminToken).Code)
}

func TestRateLimitPerIP(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(2))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("1.1.1.1"))
	assert.Equal(t, http.StatusOK, hit("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("1.1.1.1"))
	assert.Equal(t, http.StatusOK, hit("2.2.2.2"))
}
