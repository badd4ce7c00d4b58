package user

import (
	"context"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/events"
	"salonify/services/notification"
	"salonify/services/tasks"
	"salonify/utils"

	"go.uber.org/zap"
)

type UserService interface {
	// Authentication
	SignUp(ctx context.Context, input SignUpInput) (*AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, userID string) error
	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error

	// Profile
	GetSession(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)
	UpdateSettings(ctx context.Context, userID string, update models.SettingsUpdate) (*models.User, error)

	// Admin
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Cache  utils.TokenCache
	Tokens *utils.TokenManager
	Mailer notification.Mailer
	// MailQueue delivers mail through the worker. Nil sends inline.
	MailQueue tasks.Dispatcher
	Events    events.Hub
	Logger    *zap.Logger
	// ResetURL is the page that accepts ?token= for password resets.
	ResetURL string
}

func NewDefaultUserService(
	repo userRepo.UserRepository,
	cache utils.TokenCache,
	tokens *utils.TokenManager,
	mailer notification.Mailer,
	mailQueue tasks.Dispatcher,
	hub events.Hub,
	logger *zap.Logger,
	resetURL string,
) *DefaultUserService {
	if cache == nil {
		cache = utils.NewMemoryTokenCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{
		Repo:      repo,
		Cache:     cache,
		Tokens:    tokens,
		Mailer:    mailer,
		MailQueue: mailQueue,
		Events:    hub,
		Logger:    logger,
		ResetURL:  resetURL,
	}
}

type SignUpInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// AuthResponse contains the session token and the profile it belongs to.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
