package repository

import (
	"context"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// PlatformStats is the admin dashboard headline block.
type PlatformStats struct {
	TotalMentees  int64   `json:"total_mentees"`
	TotalMentors  int64   `json:"total_mentors"`
	TotalSessions int64   `json:"total_sessions"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Collect gathers the platform counters. Revenue sums the fees of completed
// sessions only.
func (r *StatsRepository) Collect(ctx context.Context) (*PlatformStats, error) {
	var stats PlatformStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.User{}).
		Where("role = ?", domain.RoleMentee).
		Count(&stats.TotalMentees).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&domain.User{}).
		Where("role = ? AND verification_status = ?", domain.RoleMentor, domain.VerificationVerified).
		Count(&stats.TotalMentors).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&domain.Session{}).
		Where("status = ?", domain.SessionCompleted).
		Count(&stats.TotalSessions).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&domain.Session{}).
		Where("status = ?", domain.SessionCompleted).
		Select("COALESCE(SUM(fee), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
