package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUp creates the account and its profile and starts a session.
func (s *DefaultUserService) SignUp(ctx context.Context, input SignUpInput) (*AuthResponse, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)

	if email == "" || input.Password == "" || name == "" || phone == "" {
		return nil, invalidInput("email, password, name and phone are required")
	}
	if !validEmail(email) {
		return nil, invalidInput("invalid email address")
	}
	if !validPhone(phone) {
		return nil, invalidInput("invalid phone number")
	}
	if err := VerifyPasswordComplexity(input.Password); err != nil {
		return nil, invalidInput("%s", err.Error())
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("SignUp: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("sign up failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hashed),
		LoyaltyTier:  models.DefaultLoyaltyTier,
		Credits:      0,
		Avatar:       utils.AvatarURL(name),
		Settings:     models.DefaultUserSettings(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.Logger.Error("SignUp: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("sign up failed, please try again")
	}

	s.Logger.Info("user signed up", zap.String("userID", u.ID))
	return s.startSession(ctx, u)
}

// startSession issues a token and records its hash. One session per user.
func (s *DefaultUserService) startSession(ctx context.Context, u *models.User) (*AuthResponse, error) {
	token, err := s.Tokens.GenerateToken(u.ID, u.Email, utils.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, u.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.Cache.Set(ctx, u.ID, hash); err != nil {
		s.Logger.Warn("auth cache write failed", zap.String("userID", u.ID), zap.Error(err))
	}

	u.TokenHash = hash
	return &AuthResponse{Token: token, User: *u}, nil
}
