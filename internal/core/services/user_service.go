package services

import (
	"context"
	"errors"
	"mime/multipart"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/core/domain"
	"stayhub/internal/pkg/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService handles profile completion and admin user management
type UserService struct {
	userRepo repositories.UserRepository
	uploader storage.Uploader
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, uploader storage.Uploader) *UserService {
	return &UserService{
		userRepo: userRepo,
		uploader: uploader,
	}
}

// CompleteProfileInput carries the identity-verification payload: the
// national ID number plus the profile photo and the photographed ID
// document.
type CompleteProfileInput struct {
	AadharNumber string
	ProfilePhoto *multipart.FileHeader
	AadharPhoto  *multipart.FileHeader
}

// CompleteProfileOutput returns the persisted identity fields
type CompleteProfileOutput struct {
	ImageURL       string `json:"imageUrl"`
	AadharNumber   string `json:"aadharNumber"`
	AadharPhotoURL string `json:"aadharPhotoUrl"`
}

// CompleteProfile uploads both images and stores the identity fields on
// the user record.
func (s *UserService) CompleteProfile(ctx context.Context, userID uint, input *CompleteProfileInput) (*CompleteProfileOutput, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	profileURL, err := s.uploader.Upload(ctx, input.ProfilePhoto, "profiles")
	if err != nil {
		return nil, err
	}
	aadharURL, err := s.uploader.Upload(ctx, input.AadharPhoto, "documents")
	if err != nil {
		return nil, err
	}

	user.ImageURL = profileURL
	user.AadharNumber = input.AadharNumber
	user.AadharPhotoURL = aadharURL

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithField("user", user.ID).Info("Profile completed")

	return &CompleteProfileOutput{
		ImageURL:       user.ImageURL,
		AadharNumber:   user.AadharNumber,
		AadharPhotoURL: user.AadharPhotoURL,
	}, nil
}

// ListUsersOutput represents a user listing page
type ListUsersOutput struct {
	Users []*models.UserResponse `json:"users"`
	Total int64                  `json:"total"`
}

// ListUsers lists all users (admin)
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) (*ListUsersOutput, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}

	return &ListUsersOutput{Users: responses, Total: total}, nil
}

// GetUserByID gets a user by ID (admin)
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// SetRole changes a user's role (admin). Admins cannot change their own
// role, so a deployment always keeps at least one admin.
func (s *UserService) SetRole(ctx context.Context, id, adminID uint, role string) (*models.UserResponse, error) {
	if role != models.RoleUser && role != models.RoleHotelManager && role != models.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}
	if id == adminID {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user": id, "role": role}).Info("Role updated")

	return user.ToResponse(), nil
}

// Deactivate soft deletes a user account (admin)
func (s *UserService) Deactivate(ctx context.Context, id, adminID uint) error {
	if id == adminID {
		return domain.ErrForbidden
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepo.Delete(ctx, id)
}
