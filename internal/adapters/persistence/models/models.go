package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles recognized in token claims.
const (
	RoleUser         = "USER"
	RoleHotelManager = "HOTEL_MANAGER"
	RoleAdmin        = "ADMIN"
)

// Booking approval states.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// IsDecisionStatus reports whether s is a valid target for a status update.
// PENDING is only ever the creation-time default.
func IsDecisionStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// IsBookingStatus reports whether s is any known booking status.
func IsBookingStatus(s string) bool {
	return s == StatusPending || IsDecisionStatus(s)
}

// User represents users table
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Role           string         `gorm:"size:20;default:'USER'" json:"role"`
	AadharNumber   string         `gorm:"size:20" json:"aadharNumber,omitempty"`
	AadharPhotoURL string         `gorm:"size:500" json:"aadharPhotoUrl,omitempty"`
	ImageURL       string         `gorm:"size:500" json:"imageUrl,omitempty"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO (never carries the password hash)
type UserResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	AadharNumber   string    `json:"aadharNumber,omitempty"`
	AadharPhotoURL string    `json:"aadharPhotoUrl,omitempty"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		AadharNumber:   u.AadharNumber,
		AadharPhotoURL: u.AadharPhotoURL,
		ImageURL:       u.ImageURL,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}

// Hotel represents hotels table
type Hotel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null" json:"name"`
	Location  string         `gorm:"size:200;not null" json:"location"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Hotel) TableName() string {
	return "hotels"
}

// Booking represents bookings table.
// Members are created in the same transaction as the booking and are
// removed with it (cascade).
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"userId"`
	HotelID   uint           `gorm:"index;not null" json:"hotelId"`
	StartDate time.Time      `gorm:"not null" json:"startDate"`
	EndDate   time.Time      `gorm:"not null" json:"endDate"`
	Status    string         `gorm:"size:20;default:'PENDING';index" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hotel   Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Members []Member `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"members"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Member represents booking_members table, one row per additional guest
// attached to a booking. AadharPhotoURL holds the uploaded identity
// document for that guest; documents map to members by position in the
// create request.
type Member struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BookingID      uint      `gorm:"index;not null" json:"bookingId"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	AadharNumber   string    `gorm:"size:20;not null" json:"aadharNumber"`
	AadharPhotoURL string    `gorm:"size:500" json:"aadharPhotoUrl"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Member) TableName() string {
	return "booking_members"
}

// AutoMigrate migrates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Hotel{},
		&Booking{},
		&Member{},
	)
}
