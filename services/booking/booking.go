package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking persists a pending booking for userID. The slot is not
// checked against existing bookings: availability is advisory only.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*CreateBookingResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidInput("a signed-in user is required")
	}
	if err := validateSchedule(input.Date, input.Time); err != nil {
		return nil, err
	}

	b := models.Booking{
		BookingID:     strings.TrimSpace(input.BookingID),
		UserID:        userID,
		Date:          input.Date,
		Time:          input.Time,
		Status:        models.StatusPending,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := applyService(&b, input); err != nil {
		return nil, err
	}
	if b.BookingID == "" {
		b.BookingID = uuid.New().String()
	}
	if err := s.fillCustomer(ctx, &b); err != nil {
		return nil, err
	}

	now := s.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.Repo.Create(ctx, &b); err != nil {
		s.Logger.Error("CreateBooking: failed to persist booking",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("docID", b.DocID),
		zap.String("bookingID", b.BookingID),
		zap.String("date", b.Date),
		zap.String("time", b.Time))

	s.publish(ctx, models.EventBookingCreated, b)
	s.enqueueNotify(ctx, b)

	result := &CreateBookingResult{Booking: b}
	if s.Messenger != nil {
		result.Notice = s.Messenger.NewBookingNotice(b)
	}
	return result, nil
}

func validateSchedule(date, slot string) error {
	if !models.IsValidDate(date) {
		return invalidInput("date %q must be formatted YYYY-MM-DD", date)
	}
	if !models.IsValidTimeSlot(slot) {
		return invalidInput("time %q is not a bookable slot", slot)
	}
	return nil
}

// applyService copies name and price from the catalog or the estimate.
func applyService(b *models.Booking, input CreateBookingInput) error {
	if input.Custom != nil {
		c := input.Custom
		if strings.TrimSpace(c.Name) == "" || c.Price <= 0 {
			return invalidInput("custom service needs a name and a positive price")
		}
		b.ServiceID = models.CustomServiceID
		b.ServiceName = strings.TrimSpace(c.Name)
		b.Price = c.Price
		b.Custom = true
		b.EstimatedDuration = c.EstimatedDuration
		if b.Notes == "" {
			b.Notes = c.Description
		}
		return nil
	}

	svc, ok := models.FindService(input.ServiceID)
	if !ok {
		return invalidInput("unknown service %q", input.ServiceID)
	}
	b.ServiceID = svc.ID
	b.ServiceName = svc.Name
	b.Price = svc.Price
	b.EstimatedDuration = svc.Duration
	return nil
}

// fillCustomer defaults the contact snapshot to the current profile.
func (s *DefaultBookingService) fillCustomer(ctx context.Context, b *models.Booking) error {
	if (b.CustomerName != "" && b.CustomerPhone != "") || s.Users == nil {
		return nil
	}
	u, err := s.Users.GetByID(ctx, b.UserID)
	if errors.Is(err, userRepo.ErrNotFound) {
		s.Logger.Warn("CreateBooking: no profile for user", zap.String("userID", b.UserID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load user profile: %w", err)
	}
	if b.CustomerName == "" {
		b.CustomerName = u.Name
	}
	if b.CustomerPhone == "" {
		b.CustomerPhone = u.Phone
	}
	return nil
}

// publish sends a booking change to the admin console and the owner.
func (s *DefaultBookingService) publish(ctx context.Context, eventType string, b models.Booking) {
	if err := events.PublishJSON(ctx, s.Events, eventType, b,
		models.TopicBookings, models.UserTopic(b.UserID)); err != nil {
		s.Logger.Warn("booking event not published",
			zap.String("type", eventType), zap.String("docID", b.DocID), zap.Error(err))
	}
}

func (s *DefaultBookingService) enqueueNotify(ctx context.Context, b models.Booking) {
	err := s.Tasks.EnqueueBookingNotify(ctx, models.BookingNotifyPayload{
		DocID:       b.DocID,
		BookingID:   b.BookingID,
		UserID:      b.UserID,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
	})
	if err != nil {
		s.Logger.Warn("booking notify task not queued",
			zap.String("docID", b.DocID), zap.Error(err))
	}
}
