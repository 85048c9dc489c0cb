package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"stayhub/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// CloudinaryUploader proxies uploads to the Cloudinary image API and
// persists nothing locally.
type CloudinaryUploader struct {
	cfg    config.UploadConfig
	client *resty.Client
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryUploader creates an uploader for the configured cloud
func NewCloudinaryUploader(cfg config.UploadConfig) *CloudinaryUploader {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetBaseURL("https://api.cloudinary.com/v1_1/" + cfg.CloudName)

	return &CloudinaryUploader{cfg: cfg, client: client}
}

// Upload sends the file to Cloudinary with a signed request and returns
// the secure URL of the stored asset.
func (u *CloudinaryUploader) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	publicID := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	fullFolder := u.cfg.Folder + "/" + folder

	var result cloudinaryResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Filename, src).
		SetFormData(map[string]string{
			"api_key":   u.cfg.APIKey,
			"timestamp": timestamp,
			"public_id": publicID,
			"folder":    fullFolder,
			"signature": u.sign(fullFolder, publicID, timestamp),
		}).
		SetResult(&result).
		SetError(&result).
		Post("/image/upload")
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL")
	}

	return result.SecureURL, nil
}

// sign builds the Cloudinary request signature: the request parameters
// in alphabetical order followed by the API secret, SHA-1 hashed.
func (u *CloudinaryUploader) sign(folder, publicID, timestamp string) string {
	payload := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s",
		folder, publicID, timestamp, u.cfg.APISecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
