package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "salonify/database/repository/user"
	"salonify/models"
	"salonify/services/events"
	"salonify/utils"

	"go.uber.org/zap"
)

var allowedGenders = map[string]bool{"": true, "male": true, "female": true, "other": true}

// GetSession returns the signed-in user's profile, or nil when there is none.
func (s *DefaultUserService) GetSession(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return u, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	u, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		// A generated avatar follows the name; an uploaded one stays.
		if u.Avatar == "" || u.Avatar == utils.AvatarURL(u.Name) {
			u.Avatar = utils.AvatarURL(name)
		}
		u.Name = name
	}
	if update.Phone != nil {
		phone := strings.TrimSpace(*update.Phone)
		if !validPhone(phone) {
			return nil, invalidInput("invalid phone number")
		}
		u.Phone = phone
	}
	if update.Avatar != nil {
		avatar := strings.TrimSpace(*update.Avatar)
		if avatar == "" {
			avatar = utils.AvatarURL(u.Name)
		}
		u.Avatar = avatar
	}
	if update.Gender != nil {
		gender := strings.ToLower(strings.TrimSpace(*update.Gender))
		if !allowedGenders[gender] {
			return nil, invalidInput("gender must be male, female or other")
		}
		u.Gender = gender
	}
	if update.Birthday != nil {
		birthday := strings.TrimSpace(*update.Birthday)
		if birthday != "" && !models.IsValidDate(birthday) {
			return nil, invalidInput("birthday must be formatted YYYY-MM-DD")
		}
		u.Birthday = birthday
	}

	return s.save(ctx, u)
}

func (s *DefaultUserService) UpdateSettings(ctx context.Context, userID string, update models.SettingsUpdate) (*models.User, error) {
	u, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Language != nil {
		lang := strings.ToLower(strings.TrimSpace(*update.Language))
		if !validLanguage(lang) {
			return nil, invalidInput("unsupported language %q", lang)
		}
		u.Settings.Language = lang
	}
	if update.Notifications != nil {
		u.Settings.Notifications = *update.Notifications
	}
	if update.WhatsAppUpdates != nil {
		u.Settings.WhatsAppUpdates = *update.WhatsAppUpdates
	}

	return s.save(ctx, u)
}

func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) load(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}

func (s *DefaultUserService) save(ctx context.Context, u *models.User) (*models.User, error) {
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.Logger.Error("failed to update user", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.publish(ctx, u.ID, models.EventProfileUpdated, u)
	return u, nil
}

func (s *DefaultUserService) publish(ctx context.Context, userID, eventType string, data any) {
	if err := events.PublishJSON(ctx, s.Events, eventType, data, models.UserTopic(userID)); err != nil {
		s.Logger.Warn("user event not published", zap.String("type", eventType), zap.Error(err))
	}
}
