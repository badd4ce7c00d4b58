package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "salonify/database/repository/booking"
	"salonify/models"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) GetBooking(ctx context.Context, docID string) (*models.Booking, error) {
	b, err := s.Repo.GetByDocID(ctx, docID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, invalidInput("unknown status %q", filter.Status)
	}
	if filter.Date != "" && !models.IsValidDate(filter.Date) {
		return nil, invalidInput("date %q must be formatted YYYY-MM-DD", filter.Date)
	}
	bookings, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListUserBookings is the per-user view of the authoritative records.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, invalidInput("a signed-in user is required")
	}
	bookings, err := s.Repo.List(ctx, models.BookingFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, docID string) error {
	b, err := s.GetBooking(ctx, docID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, docID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	s.Logger.Info("booking deleted", zap.String("docID", docID), zap.String("bookingID", b.BookingID))
	s.publish(ctx, models.EventBookingDeleted, *b)
	return nil
}
