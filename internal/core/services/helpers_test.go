package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"testing"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a throwaway sqlite database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig(allowRedecide bool) *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:       "test-secret",
			ValidityDays: 30,
		},
		Booking: config.BookingConfig{
			AllowRedecide:    allowRedecide,
			StalePendingDays: 7,
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, passwordHash, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: passwordHash,
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedHotel(t *testing.T, db *gorm.DB, name string) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{Name: name, Location: "Goa"}
	if err := db.Create(hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return hotel
}

// testFiles builds real *multipart.FileHeader values the way Fiber
// hands them to a handler, one per name.
func testFiles(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, name := range names {
		part, err := w.CreateFormFile("membersImage", name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["membersImage"]
}

// fakeUploader satisfies storage.Uploader without touching disk or the
// network.
type fakeUploader struct {
	calls int
	fail  bool
}

func (f *fakeUploader) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	f.calls++
	if f.fail {
		return "", errors.New("upload failed")
	}
	return "/uploads/" + folder + "/" + file.Filename, nil
}
