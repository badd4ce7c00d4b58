package contentRepo

import (
	"context"
	"errors"

	"salonify/models"
)

var ErrNotFound = errors.New("content item not found")

// ContentRepository stores one kind of CMS record keyed by its id.
type ContentRepository[T models.Entity] interface {
	Create(ctx context.Context, item T) error
	Get(ctx context.Context, id string) (*T, error)
	// List returns every item, newest first.
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
}

// Set groups the repositories behind the content service.
type Set struct {
	Hero     ContentRepository[models.HeroImage]
	Gallery  ContentRepository[models.GalleryItem]
	Reviews  ContentRepository[models.Review]
	Contacts ContentRepository[models.ContactSubmission]
}
