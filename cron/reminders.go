package cron

import (
	"context"
	"fmt"
	"time"

	bookingRepo "salonify/database/repository/booking"
	"salonify/models"
	"salonify/services/tasks"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderScanner queues a reminder for every approved booking of the next day.
type ReminderScanner struct {
	Bookings bookingRepo.BookingRepository
	Tasks    tasks.Dispatcher
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewReminderScanner(bookings bookingRepo.BookingRepository, dispatcher tasks.Dispatcher, logger *zap.Logger) *ReminderScanner {
	return &ReminderScanner{Bookings: bookings, Tasks: dispatcher, Logger: logger, Now: time.Now}
}

// Scan returns how many reminders were queued. Task ids are derived from the
// booking, so running it twice on one day queues nothing new.
func (s *ReminderScanner) Scan(ctx context.Context) (int, error) {
	now := s.Now()
	tomorrow := now.AddDate(0, 0, 1).Format(models.DateLayout)

	bookings, err := s.Bookings.List(ctx, models.BookingFilter{Date: tomorrow, Status: models.StatusApproved})
	if err != nil {
		return 0, fmt.Errorf("failed to list bookings for %s: %w", tomorrow, err)
	}

	queued := 0
	for _, b := range bookings {
		if b.Status != models.StatusApproved {
			continue
		}
		p := models.ReminderPayload{
			BookingID:   b.BookingID,
			UserID:      b.UserID,
			ServiceName: b.ServiceName,
			Date:        b.Date,
			Time:        b.Time,
		}
		if err := s.Tasks.EnqueueReminder(ctx, p, now); err != nil {
			s.Logger.Warn("reminder not queued", zap.String("bookingID", b.BookingID), zap.Error(err))
			continue
		}
		queued++
	}
	return queued, nil
}

// StartReminderCron runs Scan on the given cron spec until the returned
// scheduler is stopped.
func StartReminderCron(spec string, s *ReminderScanner) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := s.Scan(ctx)
		if err != nil {
			s.Logger.Error("reminder scan failed", zap.Error(err))
			return
		}
		s.Logger.Info("reminder scan finished", zap.Int("queued", n))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	c.Start()
	s.Logger.Info("reminder scheduler started", zap.String("schedule", spec))
	return c, nil
}
