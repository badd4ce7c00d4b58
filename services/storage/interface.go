package storage

import (
	"context"
	"errors"
	"io"
)

var ErrStorageDisabled = errors.New("image storage is not configured")

// Uploaded identifies a stored image.
type Uploaded struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// Upload stores the image under folder; filename only seeds the public id.
	Upload(ctx context.Context, r io.Reader, filename, folder string) (*Uploaded, error)
	DeleteFile(ctx context.Context, publicID string) error
}
