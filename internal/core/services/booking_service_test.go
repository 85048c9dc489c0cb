package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/core/domain"

	"gorm.io/gorm"
)

type bookingFixture struct {
	svc      *BookingService
	uploader *fakeUploader
	db       *gorm.DB
	user     *models.User
	hotel    *models.Hotel
}

func newBookingFixture(t *testing.T, allowRedecide bool) *bookingFixture {
	t.Helper()

	db := openTestDB(t)
	user := seedUser(t, db, "guest@example.com", "x", models.RoleUser)
	hotel := seedHotel(t, db, "Seaside Inn")

	uploader := &fakeUploader{}
	svc := NewBookingService(
		repositories.NewBookingRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewHotelRepository(db),
		uploader,
		testConfig(allowRedecide),
	)

	return &bookingFixture{svc: svc, uploader: uploader, db: db, user: user, hotel: hotel}
}

func (fx *bookingFixture) input(members ...MemberInput) *CreateBookingInput {
	return &CreateBookingInput{
		UserID:    fx.user.ID,
		HotelID:   fx.hotel.ID,
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Members:   members,
	}
}

// create persists one valid single-member booking
func (fx *bookingFixture) create(t *testing.T) *models.Booking {
	t.Helper()
	input := fx.input(MemberInput{Name: "Asha", AadharNumber: "111122223333"})
	input.Documents = testFiles(t, "asha.jpg")
	booking, err := fx.svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return booking
}

func (fx *bookingFixture) assertNothingPersisted(t *testing.T) {
	t.Helper()
	var bookings, members int64
	if err := fx.db.Model(&models.Booking{}).Count(&bookings).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if err := fx.db.Model(&models.Member{}).Count(&members).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if bookings != 0 || members != 0 {
		t.Fatalf("expected no rows persisted, got %d bookings and %d members", bookings, members)
	}
}

func TestCreateBooking_OK(t *testing.T) {
	fx := newBookingFixture(t, true)

	input := fx.input(
		MemberInput{Name: "Asha", AadharNumber: "111122223333"},
		MemberInput{Name: "Ravi", AadharNumber: "444455556666"},
	)
	input.Documents = testFiles(t, "asha.jpg", "ravi.jpg")

	booking, err := fx.svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if booking.Status != models.StatusPending {
		t.Fatalf("expected status PENDING, got %q", booking.Status)
	}
	if len(booking.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(booking.Members))
	}
	if fx.uploader.calls != 2 {
		t.Fatalf("expected one upload per member, got %d uploads", fx.uploader.calls)
	}
	for _, m := range booking.Members {
		if m.AadharPhotoURL == "" {
			t.Fatalf("expected a document URL on member %q", m.Name)
		}
	}
	if booking.User.ID != fx.user.ID {
		t.Fatalf("expected owning user to be preloaded")
	}
	if booking.Hotel.ID != fx.hotel.ID {
		t.Fatalf("expected hotel to be preloaded")
	}
}

func TestCreateBooking_NoMembers(t *testing.T) {
	fx := newBookingFixture(t, true)

	_, err := fx.svc.Create(context.Background(), fx.input())
	if !errors.Is(err, domain.ErrNoMembers) {
		t.Fatalf("expected ErrNoMembers, got %v", err)
	}
}

func TestCreateBooking_MemberFieldsMissing(t *testing.T) {
	fx := newBookingFixture(t, true)

	input := fx.input(MemberInput{Name: "Asha"})
	input.Documents = testFiles(t, "asha.jpg")

	_, err := fx.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrMemberFieldsMissing) {
		t.Fatalf("expected ErrMemberFieldsMissing, got %v", err)
	}
}

func TestCreateBooking_DocumentCountMismatch(t *testing.T) {
	fx := newBookingFixture(t, true)

	input := fx.input(
		MemberInput{Name: "Asha", AadharNumber: "111122223333"},
		MemberInput{Name: "Ravi", AadharNumber: "444455556666"},
	)
	input.Documents = testFiles(t, "asha.jpg")

	_, err := fx.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrMemberDocMismatch) {
		t.Fatalf("expected ErrMemberDocMismatch, got %v", err)
	}
	if fx.uploader.calls != 0 {
		t.Fatalf("no documents may be uploaded on a count mismatch, got %d uploads", fx.uploader.calls)
	}
	fx.assertNothingPersisted(t)
}

func TestCreateBooking_UnknownHotel(t *testing.T) {
	fx := newBookingFixture(t, true)

	input := fx.input(MemberInput{Name: "Asha", AadharNumber: "111122223333"})
	input.HotelID = 9999
	input.Documents = testFiles(t, "asha.jpg")

	_, err := fx.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestCreateBooking_UploadFailure(t *testing.T) {
	fx := newBookingFixture(t, true)
	fx.uploader.fail = true

	input := fx.input(MemberInput{Name: "Asha", AadharNumber: "111122223333"})
	input.Documents = testFiles(t, "asha.jpg")

	if _, err := fx.svc.Create(context.Background(), input); err == nil {
		t.Fatalf("expected error when upload fails")
	}
	fx.assertNothingPersisted(t)
}

func TestListByUser_OwnershipFilter(t *testing.T) {
	fx := newBookingFixture(t, true)
	ctx := context.Background()

	fx.create(t)

	other := seedUser(t, fx.db, "other@example.com", "x", models.RoleUser)
	input := fx.input(MemberInput{Name: "Ravi", AadharNumber: "444455556666"})
	input.UserID = other.ID
	input.Documents = testFiles(t, "ravi.jpg")
	if _, err := fx.svc.Create(ctx, input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	own, err := fx.svc.ListByUser(ctx, fx.user.ID)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(own) != 1 {
		t.Fatalf("expected exactly 1 booking for the requester, got %d", len(own))
	}
	if own[0].UserID != fx.user.ID {
		t.Fatalf("listing leaked another user's booking")
	}
}

func TestListByStatus(t *testing.T) {
	fx := newBookingFixture(t, true)
	ctx := context.Background()

	fx.create(t)

	out, err := fx.svc.ListByStatus(ctx, models.StatusPending, 0, 20)
	if err != nil {
		t.Fatalf("ListByStatus returned error: %v", err)
	}
	if out.Total != 1 || len(out.Bookings) != 1 {
		t.Fatalf("expected 1 pending booking, got total=%d len=%d", out.Total, len(out.Bookings))
	}

	approved, err := fx.svc.ListByStatus(ctx, models.StatusApproved, 0, 20)
	if err != nil {
		t.Fatalf("ListByStatus returned error: %v", err)
	}
	if approved.Total != 0 {
		t.Fatalf("expected no approved bookings, got %d", approved.Total)
	}
}

func TestListByStatus_InvalidStatus(t *testing.T) {
	fx := newBookingFixture(t, true)

	if _, err := fx.svc.ListByStatus(context.Background(), "CANCELLED", 0, 20); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_PendingIsNotATarget(t *testing.T) {
	fx := newBookingFixture(t, true)
	booking := fx.create(t)

	if _, err := fx.svc.UpdateStatus(context.Background(), booking.ID, models.StatusPending); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for PENDING target, got %v", err)
	}
}

func TestUpdateStatus_Approve(t *testing.T) {
	fx := newBookingFixture(t, true)
	ctx := context.Background()
	booking := fx.create(t)

	updated, err := fx.svc.UpdateStatus(ctx, booking.ID, models.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %q", updated.Status)
	}

	// Redecide allowed under the default policy
	updated, err = fx.svc.UpdateStatus(ctx, booking.ID, models.StatusRejected)
	if err != nil {
		t.Fatalf("UpdateStatus redecide returned error: %v", err)
	}
	if updated.Status != models.StatusRejected {
		t.Fatalf("expected REJECTED after redecide, got %q", updated.Status)
	}
}

func TestUpdateStatus_RedecideBlocked(t *testing.T) {
	fx := newBookingFixture(t, false)
	ctx := context.Background()
	booking := fx.create(t)

	if _, err := fx.svc.UpdateStatus(ctx, booking.ID, models.StatusApproved); err != nil {
		t.Fatalf("first decision should succeed: %v", err)
	}
	if _, err := fx.svc.UpdateStatus(ctx, booking.ID, models.StatusRejected); !errors.Is(err, domain.ErrBookingAlreadyDecided) {
		t.Fatalf("expected ErrBookingAlreadyDecided, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	fx := newBookingFixture(t, true)

	if _, err := fx.svc.UpdateStatus(context.Background(), 9999, models.StatusApproved); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	fx := newBookingFixture(t, true)
	ctx := context.Background()
	booking := fx.create(t)

	if err := fx.svc.Delete(ctx, booking.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var members int64
	if err := fx.db.Model(&models.Member{}).Where("booking_id = ?", booking.ID).Count(&members).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if members != 0 {
		t.Fatalf("expected member rows removed with the booking, %d remain", members)
	}

	if _, err := fx.svc.GetByID(ctx, booking.ID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound after delete, got %v", err)
	}
}

func TestDeleteBooking_NotFound(t *testing.T) {
	fx := newBookingFixture(t, true)

	if err := fx.svc.Delete(context.Background(), 9999); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
