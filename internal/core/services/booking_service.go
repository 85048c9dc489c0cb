package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/config"
	"stayhub/internal/core/domain"
	"stayhub/internal/pkg/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingService handles the booking lifecycle: creation with guest
// members and identity documents, listing, and the manager decision
// flow over the PENDING/APPROVED/REJECTED status.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
	hotelRepo   repositories.HotelRepository
	uploader    storage.Uploader
	cfg         *config.Config
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	hotelRepo repositories.HotelRepository,
	uploader storage.Uploader,
	cfg *config.Config,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		hotelRepo:   hotelRepo,
		uploader:    uploader,
		cfg:         cfg,
	}
}

// MemberInput represents one guest in the create payload
type MemberInput struct {
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// CreateBookingInput represents create booking input. Documents map to
// Members by position: Documents[i] is the identity document of
// Members[i].
type CreateBookingInput struct {
	UserID    uint
	HotelID   uint
	StartDate time.Time
	EndDate   time.Time
	Members   []MemberInput
	Documents []*multipart.FileHeader
}

// Create validates the payload, uploads one identity document per
// member, and persists the booking with its member rows in a single
// transaction. Nothing is written until every check has passed.
func (s *BookingService) Create(ctx context.Context, input *CreateBookingInput) (*models.Booking, error) {
	if len(input.Members) == 0 {
		return nil, domain.ErrNoMembers
	}
	for _, m := range input.Members {
		if m.Name == "" || m.AadharNumber == "" {
			return nil, domain.ErrMemberFieldsMissing
		}
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.hotelRepo.GetByID(ctx, input.HotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, err
	}

	// Exactly one uploaded document per member.
	if len(input.Documents) != len(input.Members) {
		return nil, domain.ErrMemberDocMismatch
	}

	members := make([]models.Member, len(input.Members))
	for i, m := range input.Members {
		url, err := s.uploader.Upload(ctx, input.Documents[i], "members")
		if err != nil {
			return nil, err
		}
		members[i] = models.Member{
			Name:           m.Name,
			AadharNumber:   m.AadharNumber,
			AadharPhotoURL: url,
		}
	}

	booking := &models.Booking{
		UserID:    input.UserID,
		HotelID:   input.HotelID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    models.StatusPending,
		Members:   members,
	}

	if err := s.bookingRepo.CreateWithMembers(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking": booking.ID,
		"user":    booking.UserID,
		"hotel":   booking.HotelID,
		"members": len(members),
	}).Info("Booking created")

	return s.GetByID(ctx, booking.ID)
}

// ListByUser returns all bookings owned by the requester. Callers never
// see another user's bookings through this path.
func (s *BookingService) ListByUser(ctx context.Context, userID uint) ([]*models.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// BookingListOutput represents a booking listing page
type BookingListOutput struct {
	Bookings []*models.Booking `json:"bookings"`
	Total    int64             `json:"total"`
}

// ListByStatus returns bookings in the given status across all users
func (s *BookingService) ListByStatus(ctx context.Context, status string, offset, limit int) (*BookingListOutput, error) {
	if !models.IsBookingStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	bookings, total, err := s.bookingRepo.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, err
	}
	return &BookingListOutput{Bookings: bookings, Total: total}, nil
}

// GetByID gets a booking with its user, hotel and members
func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// UpdateStatus applies a manager decision. Only APPROVED and REJECTED
// are accepted as targets; PENDING is never a valid target. Whether an
// already-decided booking may be re-decided is a deployment policy.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Booking, error) {
	if !models.IsDecisionStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.cfg.Booking.AllowRedecide && booking.Status != models.StatusPending {
		return nil, domain.ErrBookingAlreadyDecided
	}

	booking.Status = status
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking": booking.ID,
		"status":  status,
	}).Info("Booking status updated")

	return booking, nil
}

// UpdateBookingInput represents the administrative field-level update
type UpdateBookingInput struct {
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

// Update corrects a booking's date range and status. Administrative
// path, not part of the approval workflow.
func (s *BookingService) Update(ctx context.Context, id uint, input *UpdateBookingInput) (*models.Booking, error) {
	if !models.IsBookingStatus(input.Status) {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.StartDate = input.StartDate
	booking.EndDate = input.EndDate
	booking.Status = input.Status

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete removes a booking and its members; a missing id surfaces as
// not found.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	affected, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
