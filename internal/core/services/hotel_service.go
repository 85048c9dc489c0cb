package services

import (
	"context"
	"errors"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/core/domain"

	"gorm.io/gorm"
)

// HotelService handles hotel catalog business logic
type HotelService struct {
	hotelRepo repositories.HotelRepository
}

// NewHotelService creates a new hotel service
func NewHotelService(hotelRepo repositories.HotelRepository) *HotelService {
	return &HotelService{hotelRepo: hotelRepo}
}

// HotelInput represents create/update hotel input
type HotelInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// HotelListOutput represents a hotel listing page
type HotelListOutput struct {
	Hotels []*models.Hotel `json:"hotels"`
	Total  int64           `json:"total"`
}

// List lists hotels
func (s *HotelService) List(ctx context.Context, offset, limit int) (*HotelListOutput, error) {
	hotels, total, err := s.hotelRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &HotelListOutput{Hotels: hotels, Total: total}, nil
}

// GetByID gets a hotel by ID
func (s *HotelService) GetByID(ctx context.Context, id uint) (*models.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

// Create creates a hotel
func (s *HotelService) Create(ctx context.Context, input *HotelInput) (*models.Hotel, error) {
	hotel := &models.Hotel{
		Name:     input.Name,
		Location: input.Location,
	}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Update updates a hotel; a missing id surfaces as not found
func (s *HotelService) Update(ctx context.Context, id uint, input *HotelInput) (*models.Hotel, error) {
	hotel, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hotel.Name = input.Name
	hotel.Location = input.Location

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Delete deletes a hotel; a missing id surfaces as not found
func (s *HotelService) Delete(ctx context.Context, id uint) error {
	affected, err := s.hotelRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}
