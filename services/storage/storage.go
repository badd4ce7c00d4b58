package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary, logger *zap.Logger) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld, logger: logger}
}

// Upload uploads an image into folder and returns its public id and secure URL.
func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, filename, folder string) (*Uploaded, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploadParams(filename, folder))
	if err != nil {
		return nil, fmt.Errorf("CloudinaryStorage: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("CloudinaryStorage: upload rejected: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	s.logger.Info("image uploaded", zap.String("publicID", result.PublicID))
	return &Uploaded{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeleteFile deletes an image from Cloudinary given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete file: %w", err)
	}
	return nil
}

// uploadParams gives every upload its own public id, so uploads that share a
// file name never replace each other's asset.
func uploadParams(filename, folder string) uploader.UploadParams {
	id := uuid.New().String()
	if base := publicIDBase(filename); base != "" {
		id = base + "-" + id
	}
	return uploader.UploadParams{
		Folder:       folder,
		PublicID:     id,
		Overwrite:    api.Bool(false),
		ResourceType: "image",
	}
}

func publicIDBase(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ':
			return '-'
		}
		return -1
	}, base)
	if base == "" || base == "." {
		return ""
	}
	return base
}
