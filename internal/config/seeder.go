package config

import (
	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	logrus.Info("Running database seeders...")

	if err := s.seedStaffUsers(); err != nil {
		logrus.Warnf("Staff seeder skipped: %v", err)
	}
	if err := s.seedHotels(); err != nil {
		logrus.Warnf("Hotel seeder skipped: %v", err)
	}

	logrus.Info("Database seeding completed")
	return nil
}

// seedStaffUsers seeds a default admin and hotel manager for
// development. In production create these through a secure process and
// rotate the passwords.
func (s *Seeder) seedStaffUsers() error {
	var count int64
	s.db.Model(&models.User{}).Where("role IN ?", []string{models.RoleAdmin, models.RoleHotelManager}).Count(&count)
	if count > 0 {
		return nil
	}

	adminHash, err := password.Hash("admin123456")
	if err != nil {
		return err
	}
	managerHash, err := password.Hash("manager123456")
	if err != nil {
		return err
	}

	staff := []*models.User{
		{
			Name:     "Admin",
			Email:    "admin@stayhub.local",
			Password: adminHash,
			Role:     models.RoleAdmin,
			IsActive: true,
		},
		{
			Name:     "Hotel Manager",
			Email:    "manager@stayhub.local",
			Password: managerHash,
			Role:     models.RoleHotelManager,
			IsActive: true,
		},
	}

	for _, u := range staff {
		if err := s.db.Create(u).Error; err != nil {
			return err
		}
		logrus.Infof("Seeded %s user: %s", u.Role, u.Email)
	}

	return nil
}

// seedHotels seeds a starter catalog so the booking form has something
// to point at on a fresh database.
func (s *Seeder) seedHotels() error {
	var count int64
	s.db.Model(&models.Hotel{}).Count(&count)
	if count > 0 {
		return nil
	}

	hotels := []*models.Hotel{
		{Name: "The Grand Meridian", Location: "Mumbai"},
		{Name: "Lakeview Residency", Location: "Udaipur"},
		{Name: "Hilltop Retreat", Location: "Shimla"},
	}

	for _, h := range hotels {
		if err := s.db.Create(h).Error; err != nil {
			return err
		}
	}

	logrus.Infof("Seeded %d hotels", len(hotels))
	return nil
}
