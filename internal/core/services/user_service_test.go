package services

import (
	"context"
	"errors"
	"testing"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/core/domain"

	"gorm.io/gorm"
)

func newUserFixture(t *testing.T) (*UserService, *fakeUploader, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	uploader := &fakeUploader{}
	return NewUserService(repositories.NewUserRepository(db), uploader), uploader, db
}

func TestCompleteProfile(t *testing.T) {
	svc, uploader, db := newUserFixture(t)
	ctx := context.Background()

	user := seedUser(t, db, "asha@example.com", "x", models.RoleUser)
	files := testFiles(t, "selfie.jpg", "aadhar.jpg")

	out, err := svc.CompleteProfile(ctx, user.ID, &CompleteProfileInput{
		AadharNumber: "111122223333",
		ProfilePhoto: files[0],
		AadharPhoto:  files[1],
	})
	if err != nil {
		t.Fatalf("CompleteProfile returned error: %v", err)
	}

	if uploader.calls != 2 {
		t.Fatalf("expected 2 uploads, got %d", uploader.calls)
	}
	if out.ImageURL == "" || out.AadharPhotoURL == "" {
		t.Fatalf("expected both media URLs, got %+v", out)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("fetch stored user: %v", err)
	}
	if stored.AadharNumber != "111122223333" {
		t.Fatalf("expected aadhar number persisted, got %q", stored.AadharNumber)
	}
	if stored.ImageURL != out.ImageURL || stored.AadharPhotoURL != out.AadharPhotoURL {
		t.Fatalf("persisted URLs do not match the response")
	}
}

func TestCompleteProfile_UnknownUser(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	files := testFiles(t, "selfie.jpg", "aadhar.jpg")

	_, err := svc.CompleteProfile(context.Background(), 9999, &CompleteProfileInput{
		AadharNumber: "111122223333",
		ProfilePhoto: files[0],
		AadharPhoto:  files[1],
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetRole(t *testing.T) {
	svc, _, db := newUserFixture(t)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@example.com", "x", models.RoleAdmin)
	target := seedUser(t, db, "user@example.com", "x", models.RoleUser)

	out, err := svc.SetRole(ctx, target.ID, admin.ID, models.RoleHotelManager)
	if err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}
	if out.Role != models.RoleHotelManager {
		t.Fatalf("expected role HOTEL_MANAGER, got %q", out.Role)
	}
}

func TestSetRole_OwnRole(t *testing.T) {
	svc, _, db := newUserFixture(t)

	admin := seedUser(t, db, "admin@example.com", "x", models.RoleAdmin)

	_, err := svc.SetRole(context.Background(), admin.ID, admin.ID, models.RoleUser)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("an admin must not change their own role, got %v", err)
	}
}

func TestSetRole_InvalidRole(t *testing.T) {
	svc, _, db := newUserFixture(t)

	admin := seedUser(t, db, "admin@example.com", "x", models.RoleAdmin)
	target := seedUser(t, db, "user@example.com", "x", models.RoleUser)

	_, err := svc.SetRole(context.Background(), target.ID, admin.ID, "SUPERUSER")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestDeactivate(t *testing.T) {
	svc, _, db := newUserFixture(t)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@example.com", "x", models.RoleAdmin)
	target := seedUser(t, db, "user@example.com", "x", models.RoleUser)

	if err := svc.Deactivate(ctx, target.ID, admin.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	var stored models.User
	if err := db.First(&stored, target.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected soft-deleted user to be hidden, got %v", err)
	}

	if err := svc.Deactivate(ctx, admin.ID, admin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("an admin must not deactivate themselves, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	svc, _, db := newUserFixture(t)

	seedUser(t, db, "a@example.com", "x", models.RoleUser)
	seedUser(t, db, "b@example.com", "x", models.RoleUser)

	out, err := svc.ListUsers(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if out.Total != 2 || len(out.Users) != 2 {
		t.Fatalf("expected 2 users, got total=%d len=%d", out.Total, len(out.Users))
	}
}
