package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	contentRepo "salonify/database/repository/content"
	"salonify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultContentService) ListHero(ctx context.Context) ([]models.HeroImage, error) {
	return s.Repos.Hero.List(ctx)
}

func (s *DefaultContentService) CreateHero(ctx context.Context, input HeroInput) (*models.HeroImage, error) {
	if err := validImageURL(input.URL); err != nil {
		return nil, err
	}
	return s.saveHero(ctx, input, input.URL, "")
}

func (s *DefaultContentService) UploadHero(ctx context.Context, r io.Reader, filename string, input HeroInput) (*models.HeroImage, error) {
	up, err := s.Storage.Upload(ctx, r, filename, heroFolder)
	if err != nil {
		return nil, err
	}
	hero, err := s.saveHero(ctx, input, up.URL, up.PublicID)
	if err != nil {
		s.removeBlob(ctx, up.PublicID)
		return nil, err
	}
	return hero, nil
}

func (s *DefaultContentService) saveHero(ctx context.Context, input HeroInput, imageURL, publicID string) (*models.HeroImage, error) {
	hero := models.HeroImage{
		ID:        uuid.New().String(),
		URL:       imageURL,
		PublicID:  publicID,
		Title:     strings.TrimSpace(input.Title),
		Subtitle:  strings.TrimSpace(input.Subtitle),
		CreatedAt: time.Now(),
	}
	if err := s.Repos.Hero.Create(ctx, hero); err != nil {
		return nil, fmt.Errorf("failed to save hero image: %w", err)
	}
	return &hero, nil
}

// DeleteHero removes the record; the blob is deleted best-effort.
func (s *DefaultContentService) DeleteHero(ctx context.Context, id string) error {
	hero, err := s.Repos.Hero.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.Repos.Hero.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.removeBlob(ctx, hero.PublicID)
	return nil
}

func (s *DefaultContentService) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	return s.Repos.Gallery.List(ctx)
}

func (s *DefaultContentService) CreateGalleryItem(ctx context.Context, input GalleryInput) (*models.GalleryItem, error) {
	if err := validImageURL(input.URL); err != nil {
		return nil, err
	}
	return s.saveGalleryItem(ctx, input, input.URL, "")
}

func (s *DefaultContentService) UploadGalleryItem(ctx context.Context, r io.Reader, filename string, input GalleryInput) (*models.GalleryItem, error) {
	up, err := s.Storage.Upload(ctx, r, filename, galleryFolder)
	if err != nil {
		return nil, err
	}
	item, err := s.saveGalleryItem(ctx, input, up.URL, up.PublicID)
	if err != nil {
		s.removeBlob(ctx, up.PublicID)
		return nil, err
	}
	return item, nil
}

func (s *DefaultContentService) saveGalleryItem(ctx context.Context, input GalleryInput, imageURL, publicID string) (*models.GalleryItem, error) {
	item := models.GalleryItem{
		ID:        uuid.New().String(),
		URL:       imageURL,
		PublicID:  publicID,
		Caption:   strings.TrimSpace(input.Caption),
		Category:  strings.TrimSpace(input.Category),
		CreatedAt: time.Now(),
	}
	if err := s.Repos.Gallery.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save gallery item: %w", err)
	}
	return &item, nil
}

func (s *DefaultContentService) DeleteGalleryItem(ctx context.Context, id string) error {
	item, err := s.Repos.Gallery.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.Repos.Gallery.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.removeBlob(ctx, item.PublicID)
	return nil
}

func (s *DefaultContentService) removeBlob(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.Storage.DeleteFile(ctx, publicID); err != nil {
		s.Logger.Warn("failed to delete image blob", zap.String("publicID", publicID), zap.Error(err))
	}
}

func validImageURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: image url must be an absolute http(s) URL", ErrInvalidInput)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, contentRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
