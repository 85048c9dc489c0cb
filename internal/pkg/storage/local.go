package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader writes uploads to the local filesystem. Development
// fallback; the files are served from /uploads by the HTTP layer.
type LocalUploader struct {
	baseDir string
}

// NewLocalUploader creates a local disk uploader rooted at baseDir
func NewLocalUploader(baseDir string) *LocalUploader {
	return &LocalUploader{baseDir: baseDir}
}

// Upload saves the file under baseDir/folder with a unique name and
// returns the public URL path.
func (u *LocalUploader) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(u.baseDir, folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	destPath := filepath.Join(destDir, name)

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + filepath.ToSlash(filepath.Join(folder, name)), nil
}
