package bookingRepo

import (
	"context"
	"errors"
	"time"

	"salonify/models"
)

var (
	ErrNotFound       = errors.New("booking not found")
	ErrStatusConflict = errors.New("booking status changed concurrently")
)

// BookingRepository holds the single authoritative copy of every booking.
// Per-user views are queries over it.
type BookingRepository interface {
	// Create assigns DocID and inserts the booking.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByDocID returns ErrNotFound when no document has the id.
	GetByDocID(ctx context.Context, docID string) (*models.Booking, error)
	// List returns bookings matching the filter, newest first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	// ListByDate returns every booking on a date regardless of status. Only
	// date, time and status are guaranteed to be populated.
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	// UpdateStatus moves a booking from one status to another. It fails with
	// ErrStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, docID string, from, to models.BookingStatus, at time.Time) error
	// UpdateSchedule sets the date and time.
	UpdateSchedule(ctx context.Context, docID, date, slot string, at time.Time) error
	Delete(ctx context.Context, docID string) error
}
