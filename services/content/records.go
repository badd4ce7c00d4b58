package content

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"salonify/models"
	"salonify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultContentService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repos.Reviews.List(ctx)
}

func (s *DefaultContentService) CreateReview(ctx context.Context, input ReviewInput) (*models.Review, error) {
	name := strings.TrimSpace(input.Name)
	comment := strings.TrimSpace(input.Comment)
	if name == "" || comment == "" {
		return nil, fmt.Errorf("%w: review needs a name and a comment", ErrInvalidInput)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	avatar := strings.TrimSpace(input.Avatar)
	if avatar == "" {
		avatar = utils.AvatarURL(name)
	}

	review := models.Review{
		ID:        uuid.New().String(),
		Name:      name,
		Rating:    input.Rating,
		Comment:   comment,
		Avatar:    avatar,
		CreatedAt: time.Now(),
	}
	if err := s.Repos.Reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return &review, nil
}

func (s *DefaultContentService) DeleteReview(ctx context.Context, id string) error {
	return notFound(s.Repos.Reviews.Delete(ctx, id))
}

// SubmitContact stores the message and queues an email to the salon.
func (s *DefaultContentService) SubmitContact(ctx context.Context, input ContactInput) (*models.ContactSubmission, error) {
	sub := models.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now(),
	}
	if sub.Name == "" || sub.Message == "" {
		return nil, fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}
	if sub.Email == "" && sub.Phone == "" {
		return nil, fmt.Errorf("%w: an email or phone number is required", ErrInvalidInput)
	}
	if sub.Email != "" {
		if _, err := mail.ParseAddress(sub.Email); err != nil {
			return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
		}
	}
	if len(sub.Message) > 2000 {
		return nil, fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	if err := s.Repos.Contacts.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save contact submission: %w", err)
	}

	err := s.Tasks.EnqueueContactNotify(ctx, models.ContactNotifyPayload{
		SubmissionID: sub.ID,
		Name:         sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Message:      sub.Message,
	})
	if err != nil {
		s.Logger.Warn("contact notify task not queued", zap.String("submissionID", sub.ID), zap.Error(err))
	}
	return &sub, nil
}

func (s *DefaultContentService) ListContacts(ctx context.Context) ([]models.ContactSubmission, error) {
	return s.Repos.Contacts.List(ctx)
}

func (s *DefaultContentService) DeleteContact(ctx context.Context, id string) error {
	return notFound(s.Repos.Contacts.Delete(ctx, id))
}

// GetSettings serves the defaults until an admin saves settings.
func (s *DefaultContentService) GetSettings(ctx context.Context) (*models.SalonSettings, error) {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings == nil {
		d := models.DefaultSalonSettings()
		return &d, nil
	}
	return settings, nil
}

func (s *DefaultContentService) UpdateSettings(ctx context.Context, update models.SalonSettingsUpdate) (*models.SalonSettings, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, fmt.Errorf("%w: salon name cannot be empty", ErrInvalidInput)
	}
	if update.Email != nil && *update.Email != "" {
		if _, err := mail.ParseAddress(*update.Email); err != nil {
			return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
		}
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	update.Apply(settings)
	if err := s.Settings.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	s.Logger.Info("salon settings updated")
	if s.OnSettingsChange != nil {
		s.OnSettingsChange(*settings)
	}
	return settings, nil
}

func (s *DefaultContentService) ListServices() []models.Service {
	return models.Catalog
}

func (s *DefaultContentService) ListPackages() []models.Package {
	return models.Packages
}

func (s *DefaultContentService) GetService(id string) (models.Service, bool) {
	return models.FindService(id)
}
