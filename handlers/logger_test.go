package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAccessLoggerRedactsSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var out bytes.Buffer
	r := gin.New()
	r.Use(AccessLogger(&out))
	r.GET("/api/users/me/stream", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/stream?token=eyJhbGciOi.secret.sig&since=5", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	logged := out.String()
	assert.NotContains(t, logged, "eyJhbGciOi.secret.sig")
	assert.Contains(t, logged, "token=REDACTED")
	assert.Contains(t, logged, "since=5")
	assert.Contains(t, logged, "/api/users/me/stream")
}

func TestRedactQuery(t *testing.T) {
	assert.Equal(t, "/health", redactQuery("/health"))
	assert.Equal(t, "/api/bookings/availability?date=2025-06-01", redactQuery("/api/bookings/availability?date=2025-06-01"))
	assert.Equal(t, "/x?token=REDACTED", redactQuery("/x?token=abc"))
	assert.Equal(t, "/x", redactQuery("/x?token=%zz"))
}
