package bookingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"salonify/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryBookingRepo keeps bookings in process. It backs DATABASE_DRIVER=memory
// and the tests.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.DocID = primitive.NewObjectID().Hex()
	r.bookings[booking.DocID] = *booking
	return nil
}

func (r *MemoryBookingRepo) GetByDocID(_ context.Context, docID string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[docID]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepo) List(_ context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Date != "" && b.Date != filter.Date {
			continue
		}
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.List(ctx, models.BookingFilter{Date: date})
}

func (r *MemoryBookingRepo) UpdateStatus(_ context.Context, docID string, from, to models.BookingStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[docID]
	if !ok {
		return ErrNotFound
	}
	if b.Status != from {
		return ErrStatusConflict
	}
	b.Status = to
	b.UpdatedAt = at
	r.bookings[docID] = b
	return nil
}

func (r *MemoryBookingRepo) UpdateSchedule(_ context.Context, docID, date, slot string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[docID]
	if !ok {
		return ErrNotFound
	}
	if b.Status == models.StatusCanceled {
		return ErrStatusConflict
	}
	b.Date = date
	b.Time = slot
	b.UpdatedAt = at
	r.bookings[docID] = b
	return nil
}

func (r *MemoryBookingRepo) Delete(_ context.Context, docID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[docID]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, docID)
	return nil
}
