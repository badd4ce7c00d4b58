package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/notification"
	"salonify/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskHandlers processes the background tasks queued by the services.
type TaskHandlers struct {
	Pusher     notification.Pusher
	Mailer     notification.Mailer
	Users      userRepo.UserRepository
	AdminEmail string
	Logger     *zap.Logger
}

// NewServeMux routes every task type to its handler.
func NewServeMux(h *TaskHandlers) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, h.HandleBookingNotify)
	mux.HandleFunc(tasks.TypeContactNotify, h.HandleContactNotify)
	mux.HandleFunc(tasks.TypeBookingReminder, h.HandleReminder)
	mux.HandleFunc(tasks.TypeSendEmail, h.HandleEmail)
	return mux
}

// StartWorker starts the asynq server in the background, retrying with backoff
// while Redis is unreachable. The caller shuts the returned server down.
func StartWorker(opt asynq.RedisClientOpt, h *TaskHandlers) *asynq.Server {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: h.Logger.Sugar(),
	})
	mux := NewServeMux(h)

	go func() {
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				h.Logger.Info("task worker started")
				return
			}
			if errors.Is(err, asynq.ErrServerClosed) {
				return
			}
			h.Logger.Error("task worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				h.Logger.Error("task worker gave up; background notifications are disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func decodePayload(task *asynq.Task, v any) error {
	if err := json.Unmarshal(task.Payload(), v); err != nil {
		return fmt.Errorf("invalid %s payload: %v: %w", task.Type(), err, asynq.SkipRetry)
	}
	return nil
}

// HandleBookingNotify pushes new bookings and status changes to the admin devices.
func (h *TaskHandlers) HandleBookingNotify(ctx context.Context, task *asynq.Task) error {
	var p models.BookingNotifyPayload
	if err := decodePayload(task, &p); err != nil {
		return err
	}

	title := "New booking request"
	if p.Status != models.StatusPending {
		title = fmt.Sprintf("Booking %s", p.Status)
	}
	body := fmt.Sprintf("%s on %s at %s", p.ServiceName, p.Date, p.Time)
	data := map[string]string{
		"docId":     p.DocID,
		"bookingId": p.BookingID,
		"status":    string(p.Status),
	}
	if err := h.Pusher.NotifyAdmins(ctx, title, body, data); err != nil {
		h.Logger.Warn("booking push failed", zap.String("bookingID", p.BookingID), zap.Error(err))
		return err
	}
	return nil
}

// HandleContactNotify emails a contact form submission to the salon.
func (h *TaskHandlers) HandleContactNotify(ctx context.Context, task *asynq.Task) error {
	var p models.ContactNotifyPayload
	if err := decodePayload(task, &p); err != nil {
		return err
	}
	if h.AdminEmail == "" || !h.Mailer.Enabled() {
		h.Logger.Info("contact mail skipped, no admin mailbox configured", zap.String("submissionID", p.SubmissionID))
		return nil
	}
	subject, body := notification.ContactEmail(p)
	return h.send(ctx, h.AdminEmail, subject, body)
}

// HandleReminder emails the customer about tomorrow's appointment.
func (h *TaskHandlers) HandleReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := decodePayload(task, &p); err != nil {
		return err
	}
	if !h.Mailer.Enabled() {
		return nil
	}

	u, err := h.Users.GetByID(ctx, p.UserID)
	if errors.Is(err, userRepo.ErrNotFound) {
		h.Logger.Info("reminder skipped, user no longer exists", zap.String("userID", p.UserID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", p.UserID, err)
	}
	if !u.Settings.Notifications || u.Email == "" {
		return nil
	}

	subject, body := notification.ReminderEmail(u.Name, p)
	return h.send(ctx, u.Email, subject, body)
}

func (h *TaskHandlers) HandleEmail(ctx context.Context, task *asynq.Task) error {
	var p models.EmailPayload
	if err := decodePayload(task, &p); err != nil {
		return err
	}
	if !h.Mailer.Enabled() {
		h.Logger.Warn("mail disabled, dropping email", zap.String("subject", p.Subject))
		return nil
	}
	return h.send(ctx, p.To, p.Subject, p.HTML)
}

func (h *TaskHandlers) send(ctx context.Context, to, subject, body string) error {
	if err := h.Mailer.Send(ctx, to, subject, body); err != nil {
		h.Logger.Error("failed to send email", zap.String("subject", subject), zap.Error(err))
		return err
	}
	h.Logger.Info("email sent", zap.String("subject", subject))
	return nil
}
