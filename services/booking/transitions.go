package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "salonify/database/repository/booking"
	"salonify/models"

	"go.uber.org/zap"
)

// UpdateStatus moves a pending booking to approved or canceled. The write
// only matches a pending record, so of two concurrent decisions one wins and
// the other gets ErrInvalidTransition.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, update StatusUpdate) (*StatusResult, error) {
	if !update.Status.IsTerminal() {
		return nil, invalidInput("status must be %q or %q", models.StatusApproved, models.StatusCanceled)
	}
	b, err := s.loadOwned(ctx, update.DocID, update.UserID, update.BookingID)
	if err != nil {
		return nil, err
	}
	if !b.CanTransition(update.Status) {
		return nil, invalidTransition("booking is already %s", b.Status)
	}

	now := s.Now()
	err = s.Repo.UpdateStatus(ctx, b.DocID, models.StatusPending, update.Status, now)
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		return nil, ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		return nil, invalidTransition("booking status changed concurrently")
	case err != nil:
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	b.Status = update.Status
	b.UpdatedAt = now
	s.Logger.Info("booking status updated",
		zap.String("docID", b.DocID),
		zap.String("bookingID", b.BookingID),
		zap.String("status", string(b.Status)))

	s.publish(ctx, models.EventBookingStatus, *b)
	s.enqueueNotify(ctx, *b)

	result := &StatusResult{Booking: *b}
	if b.Status == models.StatusApproved && s.Messenger != nil {
		notice := s.Messenger.ApprovalNotice(*b)
		result.Notice = &notice
	}
	return result, nil
}

// Reschedule sets a new date and time. Only the format is checked; an admin
// may move a booking into an occupied slot.
func (s *DefaultBookingService) Reschedule(ctx context.Context, input RescheduleInput) (*models.Booking, error) {
	if err := validateSchedule(input.Date, input.Time); err != nil {
		return nil, err
	}
	b, err := s.loadOwned(ctx, input.DocID, input.UserID, input.BookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.StatusCanceled {
		return nil, invalidTransition("canceled bookings cannot be rescheduled")
	}

	now := s.Now()
	err = s.Repo.UpdateSchedule(ctx, b.DocID, input.Date, input.Time, now)
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		return nil, ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		return nil, invalidTransition("canceled bookings cannot be rescheduled")
	case err != nil:
		return nil, fmt.Errorf("failed to reschedule booking: %w", err)
	}

	b.Date = input.Date
	b.Time = input.Time
	b.UpdatedAt = now
	s.Logger.Info("booking rescheduled",
		zap.String("docID", b.DocID), zap.String("date", b.Date), zap.String("time", b.Time))

	s.publish(ctx, models.EventBookingRescheduled, *b)
	return b, nil
}

// loadOwned fetches a booking and checks that the owner and the
// caller-assigned id agree with the stored record.
func (s *DefaultBookingService) loadOwned(ctx context.Context, docID, userID, bookingID string) (*models.Booking, error) {
	if docID == "" || userID == "" || bookingID == "" {
		return nil, invalidInput("docId, userId and bookingId are required")
	}
	b, err := s.Repo.GetByDocID(ctx, docID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b.UserID != userID || b.BookingID != bookingID {
		s.Logger.Warn("booking identifiers do not match",
			zap.String("docID", docID),
			zap.String("userID", userID),
			zap.String("bookingID", bookingID))
		return nil, ErrBookingNotFound
	}
	return b, nil
}
