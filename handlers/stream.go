package handlers

import (
	"io"
	"net/http"
	"time"

	"salonify/models"
	"salonify/services/events"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const streamKeepAlive = 25 * time.Second

// StreamHandler pushes realtime events to browsers as server-sent events.
// Open streams end when Closing is closed.
type StreamHandler struct {
	Hub     events.Hub
	Closing <-chan struct{}
}

func NewStreamHandler(hub events.Hub, closing <-chan struct{}) *StreamHandler {
	return &StreamHandler{Hub: hub, Closing: closing}
}

// AdminBookings handles GET /api/admin/bookings/stream.
func (h *StreamHandler) AdminBookings(c *gin.Context) {
	h.stream(c, models.TopicBookings)
}

// UserEvents handles GET /api/users/me/stream.
func (h *StreamHandler) UserEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.stream(c, models.UserTopic(userID))
}

func (h *StreamHandler) stream(c *gin.Context, topic string) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	sub, err := h.Hub.Subscribe(ctx, topic)
	if err != nil {
		logger.Error("subscribe failed", zap.String("topic", topic), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Realtime updates unavailable", err.Error())
		return
	}
	defer sub.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(streamKeepAlive)
	defer ticker.Stop()

	c.SSEvent("ready", gin.H{"topic": topic})
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-h.Closing:
			return false
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now()})
			return true
		}
	})
}
