package storage

import (
	"context"
	"io"
)

// DisabledStorage rejects uploads. Used when Cloudinary is not configured;
// content can still be created from existing image URLs.
type DisabledStorage struct{}

func (DisabledStorage) Upload(context.Context, io.Reader, string, string) (*Uploaded, error) {
	return nil, ErrStorageDisabled
}

func (DisabledStorage) DeleteFile(context.Context, string) error {
	return nil
}
