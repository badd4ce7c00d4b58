package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	bookingRepo "salonify/database/repository/booking"
	contentRepo "salonify/database/repository/content"
	settingsRepo "salonify/database/repository/settings"
	userRepo "salonify/database/repository/user"
	"salonify/handlers"
	"salonify/models"
	"salonify/services/admin"
	"salonify/services/booking"
	"salonify/services/content"
	"salonify/services/events"
	ai "salonify/services/intelligence"
	"salonify/services/notification"
	"salonify/services/user"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminPassword = "letmein-admin"
	userPassword  = "Sup3r$ecret"
)

type app struct {
	router  *gin.Engine
	hub     *events.LocalHub
	closing chan struct{}
}

func newApp(t *testing.T) *app {
	t.Helper()
	return newAppWithSalonNumber(t, "+91 98765 43210")
}

// newAppWithSalonNumber builds the app; an empty number makes notices follow
// the salon settings.
func newAppWithSalonNumber(t *testing.T, salonNumber string) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()

	logger := zap.NewNop()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	users := userRepo.NewMemoryUserRepo()
	cache := utils.NewMemoryTokenCache()
	hub := events.NewLocalHub()
	closing := make(chan struct{})
	messenger := notification.NewWhatsAppMessenger(salonNumber, "Salonify Studio")

	userSvc := user.NewDefaultUserService(users, cache, tokens, notification.NewSMTPMailer("", 0, "", ""), nil, hub, logger, "http://localhost/reset")
	bookingSvc := booking.NewDefaultBookingService(bookingRepo.NewMemoryBookingRepo(), users, hub, nil, messenger, logger)
	contentSvc := content.NewDefaultContentService(contentRepo.NewMemorySet(), settingsRepo.NewMemorySettingsRepo(), nil, nil, logger)
	contentSvc.OnSettingsChange = messenger.ApplySettings

	hb := &handlers.HandlerBundle{
		Tokens:            tokens,
		UserRepo:          users,
		AuthCache:         cache,
		RequestsPerMinute: 1000,
		Users:             handlers.NewUserHandler(userSvc),
		Bookings:          handlers.NewBookingHandler(bookingSvc),
		Admin:             handlers.NewAdminHandler(admin.NewDefaultAdminService(adminPassword, tokens, logger), userSvc),
		AI:                handlers.NewAIHandler(ai.NewDefaultAIService(nil, nil, logger)),
		Content:           handlers.NewContentHandler(contentSvc),
		Streams:           handlers.NewStreamHandler(hub, closing),
	}

	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, hb, nil)
	return &app{router: r, hub: hub, closing: closing}
}

func (a *app) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *app) signUp(t *testing.T, email string) user.AuthResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email": email, "password": userPassword, "name": "Asha Rao", "phone": "+91 90000 00001",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[user.AuthResponse](t, w)
}

func (a *app) adminToken(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": adminPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[map[string]string](t, w)["token"]
}

func TestBookingApprovalFlow(t *testing.T) {
	a := newApp(t)
	auth := a.signUp(t, "asha@example.com")

	w := a.do(t, http.MethodPost, "/api/bookings", auth.Token, map[string]string{
		"bookingId": "b-1001", "serviceId": "classic-haircut", "date": "2025-06-01", "time": "11:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[booking.CreateBookingResult](t, w)
	assert.Equal(t, models.StatusPending, created.Booking.Status)
	assert.Equal(t, float64(499), created.Booking.Price)
	assert.True(t, strings.HasPrefix(created.Notice.URL, "https://wa.me/919876543210?text="))

	w = a.do(t, http.MethodGet, "/api/bookings/availability?date=2025-06-01", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	avail := decode[struct {
		Booked []string `json:"booked"`
	}](t, w)
	assert.Equal(t, []string{"11:00 AM"}, avail.Booked)

	admin := a.adminToken(t)
	w = a.do(t, http.MethodPut, "/api/admin/bookings/"+created.Booking.DocID+"/status", admin, map[string]string{
		"userId": auth.User.ID, "bookingId": "b-1001", "status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[booking.StatusResult](t, w)
	assert.Equal(t, models.StatusApproved, result.Booking.Status)
	require.NotNil(t, result.Notice)

	w = a.do(t, http.MethodGet, "/api/users/me/bookings", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]models.Booking](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, "b-1001", mine[0].BookingID)
	assert.Equal(t, models.StatusApproved, mine[0].Status)

	// A decided booking cannot change again.
	w = a.do(t, http.MethodPut, "/api/admin/bookings/"+created.Booking.DocID+"/status", admin, map[string]string{
		"userId": auth.User.ID, "bookingId": "b-1001", "status": "canceled",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(t, http.MethodGet, "/api/admin/bookings/does-not-exist", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidBookingRejected(t *testing.T) {
	a := newApp(t)
	auth := a.signUp(t, "asha@example.com")

	w := a.do(t, http.MethodPost, "/api/bookings", auth.Token, map[string]string{
		"serviceId": "classic-haircut", "date": "01/06/2025", "time": "11:00 AM",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/api/bookings", "", map[string]string{"serviceId": "classic-haircut"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/auth", decode[utils.ErrorResponse](t, w).Redirect)

	auth := a.signUp(t, "asha@example.com")
	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodGet, "/api/admin/bookings", auth.Token, nil).Code)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/api/auth/signout", auth.Token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodGet, "/api/users/me", auth.Token, nil).Code)
}

func TestSignInAndSession(t *testing.T) {
	a := newApp(t)
	a.signUp(t, "asha@example.com")

	w := a.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "asha@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "asha@example.com", "password": userPassword})
	require.Equal(t, http.StatusOK, w.Code)
	auth := decode[user.AuthResponse](t, w)

	w = a.do(t, http.MethodGet, "/api/users/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode[struct {
		User *models.User `json:"user"`
	}](t, w)
	require.NotNil(t, session.User)
	assert.Equal(t, "asha@example.com", session.User.Email)

	w = a.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email": "asha@example.com", "password": userPassword, "name": "Other", "phone": "9000000000",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEstimateFallsBackToNull(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/api/ai/estimate", "", map[string]string{"description": "mermaid braids"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"estimate": null}`, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/ai/style", "", map[string]string{"description": "curly hair, wedding"})
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[models.StyleSuggestion](t, w)
	assert.True(t, s.Fallback)
	assert.Equal(t, ai.FallbackSuggestion, s.Suggestion)
}

func TestPublicContent(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodGet, "/api/catalog/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Service](t, w), len(models.Catalog))

	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/api/catalog/services/nope", "", nil).Code)

	w = a.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.DefaultSalonSettings().Name, decode[models.SalonSettings](t, w).Name)

	w = a.do(t, http.MethodPost, "/api/contact", "", map[string]string{"name": "Ria", "email": "ria@example.com", "message": "Hello"})
	assert.Equal(t, http.StatusCreated, w.Code)

	admin := a.adminToken(t)
	w = a.do(t, http.MethodGet, "/api/admin/contacts", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ContactSubmission](t, w), 1)

	w = a.do(t, http.MethodPost, "/api/admin/hero/upload", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsUpdateRetargetsBookingNotice(t *testing.T) {
	a := newAppWithSalonNumber(t, "")
	auth := a.signUp(t, "asha@example.com")
	admin := a.adminToken(t)

	w := a.do(t, http.MethodPut, "/api/admin/settings", admin, map[string]string{"whatsapp": "+91 99999 11111"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/bookings", auth.Token, map[string]string{
		"serviceId": "classic-haircut", "date": "2025-06-01", "time": "11:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[booking.CreateBookingResult](t, w)
	assert.Equal(t, "919999911111", created.Notice.To)

	w = a.do(t, http.MethodPut, "/api/admin/settings", admin, map[string]string{"whatsapp": "+91 88888 22222"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/bookings", auth.Token, map[string]string{
		"serviceId": "classic-haircut", "date": "2025-06-02", "time": "11:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "918888822222", decode[booking.CreateBookingResult](t, w).Notice.To)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	a := newApp(t)
	w := a.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// streamRecorder is a ResponseWriter that supports flushing, close
// notification and reading the body while the handler is still writing.
type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	body   bytes.Buffer
	code   int
	closed chan bool
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{header: http.Header{}, closed: make(chan bool, 1)}
}

func (r *streamRecorder) Header() http.Header { return r.header }

func (r *streamRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.code = code
}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.Write(p)
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) CloseNotify() <-chan bool { return r.closed }

func (r *streamRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.String()
}

func TestAdminStreamReceivesNewBookings(t *testing.T) {
	a := newApp(t)
	admin := a.adminToken(t)
	auth := a.signUp(t, "asha@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/stream?token="+admin, nil).WithContext(ctx)
	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		a.router.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return a.hub.SubscriberCount(models.TopicBookings) == 1
	}, time.Second, 5*time.Millisecond)

	w := a.do(t, http.MethodPost, "/api/bookings", auth.Token, map[string]string{
		"serviceId": "hair-spa", "date": "2025-06-02", "time": "3:00 PM",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.Eventually(t, func() bool {
		return strings.Contains(rec.String(), "event:"+models.EventBookingCreated)
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the client went away")
	}
	assert.Contains(t, rec.String(), "event:ready")
}

func TestStreamsEndWhenServerCloses(t *testing.T) {
	a := newApp(t)
	auth := a.signUp(t, "asha@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/stream?token="+auth.Token, nil)
	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		a.router.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return a.hub.SubscriberCount(models.UserTopic(auth.User.ID)) == 1
	}, time.Second, 5*time.Millisecond)

	close(a.closing)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream kept running after shutdown began")
	}
	assert.Contains(t, rec.String(), "event:ready")
}
