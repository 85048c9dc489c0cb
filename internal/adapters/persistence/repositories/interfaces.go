package repositories

import (
	"context"

	"stayhub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// HotelRepository defines hotel repository interface
type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id uint) (*models.Hotel, error)
	List(ctx context.Context, offset, limit int) ([]*models.Hotel, int64, error)
	Update(ctx context.Context, hotel *models.Hotel) error
	Delete(ctx context.Context, id uint) (int64, error)
}

// BookingRepository defines booking repository interface. Reads preload
// the owning user, the hotel and the member rows.
type BookingRepository interface {
	CreateWithMembers(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Booking, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.Booking, int64, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uint) (int64, error)
	CountPendingOlderThan(ctx context.Context, days int) (int64, error)
}
