package services

import (
	"context"
	"time"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MaintenanceService runs scheduled housekeeping: a daily report of
// bookings stuck in PENDING and a purge of old soft-deleted rows.
type MaintenanceService struct {
	db          *gorm.DB
	bookingRepo repositories.BookingRepository
	cfg         *config.Config
	cron        *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, bookingRepo repositories.BookingRepository, cfg *config.Config) *MaintenanceService {
	return &MaintenanceService{
		db:          db,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cron:        cron.New(),
	}
}

// Start schedules the maintenance jobs (08:30 daily)
func (s *MaintenanceService) Start() {
	s.cron.AddFunc("30 8 * * *", s.reportStalePending)
	s.cron.AddFunc("0 3 * * *", s.purgeDeleted)
	s.cron.Start()
	logrus.Info("Maintenance scheduler started")
}

// Stop stops the scheduler
func (s *MaintenanceService) Stop() {
	s.cron.Stop()
	logrus.Info("Maintenance scheduler stopped")
}

// reportStalePending logs how many bookings have been waiting on a
// manager decision for longer than the configured window.
func (s *MaintenanceService) reportStalePending() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.bookingRepo.CountPendingOlderThan(ctx, s.cfg.Booking.StalePendingDays)
	if err != nil {
		logrus.WithError(err).Error("Stale pending report failed")
		return
	}
	if count > 0 {
		logrus.WithFields(logrus.Fields{
			"count": count,
			"days":  s.cfg.Booking.StalePendingDays,
		}).Warn("Bookings awaiting manager decision")
	}
}

// purgeDeleted permanently removes soft-deleted rows older than 90 days
func (s *MaintenanceService) purgeDeleted() {
	cutoff := time.Now().AddDate(0, 0, -90)

	for _, model := range []interface{}{&models.Booking{}, &models.Hotel{}, &models.User{}} {
		res := s.db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(model)
		if res.Error != nil {
			logrus.WithError(res.Error).Error("Purge failed")
			continue
		}
		if res.RowsAffected > 0 {
			logrus.WithField("rows", res.RowsAffected).Info("Purged soft-deleted rows")
		}
	}
}
