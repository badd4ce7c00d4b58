package content

import (
	"context"
	"errors"
	"io"

	contentRepo "salonify/database/repository/content"
	settingsRepo "salonify/database/repository/settings"
	"salonify/models"
	"salonify/services/storage"
	"salonify/services/tasks"

	"go.uber.org/zap"
)

var (
	ErrNotFound     = errors.New("content not found")
	ErrInvalidInput = errors.New("invalid content")
)

const (
	heroFolder    = "salonify/hero"
	galleryFolder = "salonify/gallery"
)

// ContentService backs the public site content and its admin CMS.
type ContentService interface {
	// Hero images
	ListHero(ctx context.Context) ([]models.HeroImage, error)
	CreateHero(ctx context.Context, input HeroInput) (*models.HeroImage, error)
	UploadHero(ctx context.Context, r io.Reader, filename string, input HeroInput) (*models.HeroImage, error)
	DeleteHero(ctx context.Context, id string) error

	// Gallery
	ListGallery(ctx context.Context) ([]models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, input GalleryInput) (*models.GalleryItem, error)
	UploadGalleryItem(ctx context.Context, r io.Reader, filename string, input GalleryInput) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	// Reviews
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, input ReviewInput) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error

	// Contact form
	SubmitContact(ctx context.Context, input ContactInput) (*models.ContactSubmission, error)
	ListContacts(ctx context.Context) ([]models.ContactSubmission, error)
	DeleteContact(ctx context.Context, id string) error

	// Salon settings
	GetSettings(ctx context.Context) (*models.SalonSettings, error)
	UpdateSettings(ctx context.Context, update models.SalonSettingsUpdate) (*models.SalonSettings, error)

	// Catalog
	ListServices() []models.Service
	ListPackages() []models.Package
	GetService(id string) (models.Service, bool)
}

type HeroInput struct {
	URL      string `json:"url" form:"url"`
	Title    string `json:"title" form:"title"`
	Subtitle string `json:"subtitle" form:"subtitle"`
}

type GalleryInput struct {
	URL      string `json:"url" form:"url"`
	Caption  string `json:"caption" form:"caption"`
	Category string `json:"category" form:"category"`
}

type ReviewInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Avatar  string `json:"avatar"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type DefaultContentService struct {
	Repos    contentRepo.Set
	Settings settingsRepo.SettingsRepository
	Storage  storage.StorageService
	Tasks    tasks.Dispatcher
	Logger   *zap.Logger

	// OnSettingsChange, when set, receives the settings after every update.
	OnSettingsChange func(models.SalonSettings)
}

func NewDefaultContentService(
	repos contentRepo.Set,
	settings settingsRepo.SettingsRepository,
	store storage.StorageService,
	dispatcher tasks.Dispatcher,
	logger *zap.Logger,
) *DefaultContentService {
	if store == nil {
		store = storage.DisabledStorage{}
	}
	if dispatcher == nil {
		dispatcher = tasks.NopDispatcher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultContentService{
		Repos:    repos,
		Settings: settings,
		Storage:  store,
		Tasks:    dispatcher,
		Logger:   logger,
	}
}
