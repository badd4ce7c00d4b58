package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "salonify/database/repository/user"
	"salonify/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignIn checks the credential, then loads the profile it belongs to.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	cred, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		s.Logger.Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.Repo.GetByID(ctx, cred.ID)
	if errors.Is(err, userRepo.ErrNotFound) {
		s.Logger.Warn("SignIn: credential without profile", zap.String("userID", cred.ID))
		return nil, ErrProfileMissing
	}
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return s.startSession(ctx, profile)
}

// SignOut ends the user's session everywhere.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := s.endSession(ctx, userID); err != nil {
		return err
	}
	s.Logger.Info("user signed out", zap.String("userID", userID))
	return nil
}

func (s *DefaultUserService) endSession(ctx context.Context, userID string) error {
	err := s.Repo.SetTokenHash(ctx, userID, "")
	if errors.Is(err, userRepo.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := s.Cache.Delete(ctx, userID); err != nil {
		s.Logger.Warn("auth cache delete failed", zap.String("userID", userID), zap.Error(err))
	}
	s.publish(ctx, userID, models.EventSessionEnded, map[string]string{"userId": userID})
	return nil
}
