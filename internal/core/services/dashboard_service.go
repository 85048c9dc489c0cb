package services

import (
	"context"

	"stayhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates counts for the manager dashboard
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardOutput represents dashboard aggregates
type DashboardOutput struct {
	Bookings struct {
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Rejected int64 `json:"rejected"`
		Total    int64 `json:"total"`
	} `json:"bookings"`
	Hotels int64 `json:"hotels"`
	Users  int64 `json:"users"`
}

// Summary returns booking counts by status plus catalog and user totals
func (s *DashboardService) Summary(ctx context.Context) (*DashboardOutput, error) {
	out := &DashboardOutput{}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			out.Bookings.Pending = row.Count
		case models.StatusApproved:
			out.Bookings.Approved = row.Count
		case models.StatusRejected:
			out.Bookings.Rejected = row.Count
		}
		out.Bookings.Total += row.Count
	}

	if err := s.db.WithContext(ctx).Model(&models.Hotel{}).Count(&out.Hotels).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&out.Users).Error; err != nil {
		return nil, err
	}

	return out, nil
}
