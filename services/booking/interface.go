package booking

import (
	"context"
	"time"

	bookingRepo "salonify/database/repository/booking"
	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/events"
	"salonify/services/notification"
	"salonify/services/tasks"

	"go.uber.org/zap"
)

// BookingService is the booking workflow: creation, the advisory
// availability query and the admin console operations.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*CreateBookingResult, error)
	BookedTimes(ctx context.Context, date string) ([]string, error)
	Availability(ctx context.Context, date string) ([]models.SlotAvailability, error)

	UpdateStatus(ctx context.Context, update StatusUpdate) (*StatusResult, error)
	Reschedule(ctx context.Context, input RescheduleInput) (*models.Booking, error)

	GetBooking(ctx context.Context, docID string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, docID string) error
}

// CreateBookingInput is what the confirmation step submits. Either ServiceID
// names a catalog entry or Custom carries an estimate.
type CreateBookingInput struct {
	BookingID     string                  `json:"bookingId"`
	ServiceID     string                  `json:"serviceId"`
	Custom        *models.ServiceEstimate `json:"custom,omitempty"`
	Date          string                  `json:"date"`
	Time          string                  `json:"time"`
	CustomerName  string                  `json:"customerName"`
	CustomerPhone string                  `json:"customerPhone"`
	Notes         string                  `json:"notes"`
}

type CreateBookingResult struct {
	Booking models.Booking `json:"booking"`
	Notice  models.Notice  `json:"notice"`
}

// StatusUpdate identifies a booking three ways, as the admin console does:
// the document id, the owner and the caller-assigned booking id.
type StatusUpdate struct {
	DocID     string               `json:"-"`
	UserID    string               `json:"userId"`
	BookingID string               `json:"bookingId"`
	Status    models.BookingStatus `json:"status"`
}

// StatusResult carries the updated booking. Notice is set on approval.
type StatusResult struct {
	Booking models.Booking `json:"booking"`
	Notice  *models.Notice `json:"notice,omitempty"`
}

type RescheduleInput struct {
	DocID     string `json:"-"`
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Users     userRepo.UserRepository
	Events    events.Hub
	Tasks     tasks.Dispatcher
	Messenger notification.Messenger
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	users userRepo.UserRepository,
	hub events.Hub,
	dispatcher tasks.Dispatcher,
	messenger notification.Messenger,
	logger *zap.Logger,
) *DefaultBookingService {
	if dispatcher == nil {
		dispatcher = tasks.NopDispatcher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:      repo,
		Users:     users,
		Events:    hub,
		Tasks:     dispatcher,
		Messenger: messenger,
		Logger:    logger,
		Now:       time.Now,
	}
}
