package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/notification"
	"salonify/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

// ResetPassword mails a reset link. Unknown addresses succeed silently so the
// endpoint does not reveal which emails have accounts.
func (s *DefaultUserService) ResetPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return invalidInput("email is required")
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("ResetPassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	if u == nil {
		s.Logger.Debug("ResetPassword: unknown email")
		return nil
	}

	token, err := s.Tokens.GenerateResetToken(u.ID, u.Email, passwordFingerprint(u.PasswordHash), resetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if s.Mailer == nil || !s.Mailer.Enabled() {
		s.Logger.Warn("ResetPassword: mail disabled, reset link not sent", zap.String("userID", u.ID))
		return nil
	}
	subject, body := notification.ResetPasswordEmail(u.Name, s.resetLink(token))
	mail := models.EmailPayload{To: u.Email, Subject: subject, HTML: body}
	if s.MailQueue != nil {
		err := s.MailQueue.EnqueueEmail(ctx, mail)
		if err == nil {
			return nil
		}
		s.Logger.Warn("ResetPassword: mail not queued, sending inline", zap.String("userID", u.ID), zap.Error(err))
	}
	if err := s.Mailer.Send(ctx, mail.To, mail.Subject, mail.HTML); err != nil {
		s.Logger.Error("ResetPassword: failed to send mail", zap.String("userID", u.ID), zap.Error(err))
		return fmt.Errorf("failed to send reset email, please try again")
	}
	return nil
}

func (s *DefaultUserService) resetLink(token string) string {
	return s.ResetURL + "?token=" + url.QueryEscape(token)
}

// ConfirmPasswordReset sets a new password and ends the current session.
func (s *DefaultUserService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	claims, err := s.Tokens.ParseClaims(token, utils.PurposeReset)
	if err != nil {
		return ErrInvalidResetToken
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return invalidInput("%s", err.Error())
	}

	u, err := s.Repo.GetByID(ctx, claims.Subject)
	if errors.Is(err, userRepo.ErrNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if claims.Fingerprint != passwordFingerprint(u.PasswordHash) {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hashed)
	if err := s.Repo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.Logger.Info("password reset", zap.String("userID", u.ID))
	return s.endSession(ctx, u.ID)
}

func hashString(v string) string {
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}
