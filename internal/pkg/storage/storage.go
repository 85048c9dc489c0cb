package storage

import (
	"context"
	"mime/multipart"

	"stayhub/internal/config"
)

// Uploader stores an uploaded file and returns a stable URL. Only the
// URL is ever persisted, never the binary content.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

// New builds the uploader selected by configuration.
func New(cfg *config.Config) Uploader {
	if cfg.Upload.Driver == "cloudinary" {
		return NewCloudinaryUploader(cfg.Upload)
	}
	return NewLocalUploader(cfg.Upload.LocalDir)
}
