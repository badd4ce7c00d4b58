package admin

import (
	"context"
	"crypto/subtle"
	"errors"

	"salonify/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrAdminDisabled   = errors.New("admin login is not configured")
)

const adminSubject = "admin"

type AdminService interface {
	// Login exchanges the configured admin password for an admin token.
	Login(ctx context.Context, password string) (string, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	password string
	tokens   *utils.TokenManager
	logger   *zap.Logger
}

func NewDefaultAdminService(password string, tokens *utils.TokenManager, logger *zap.Logger) *DefaultAdminService {
	return &DefaultAdminService{password: password, tokens: tokens, logger: logger}
}

func (s *DefaultAdminService) Login(_ context.Context, password string) (string, error) {
	if s.password == "" {
		return "", ErrAdminDisabled
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.logger.Warn("admin login rejected")
		return "", ErrInvalidPassword
	}
	token, err := s.tokens.GenerateToken(adminSubject, "", utils.RoleAdmin)
	if err != nil {
		return "", err
	}
	s.logger.Info("admin signed in")
	return token, nil
}
