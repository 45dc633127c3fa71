package repository

import (
	"context"
	"time"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeedbackRepository) ExistsForRater(ctx context.Context, sessionID, raterID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("session_id = ? AND rater_id = ?", sessionID, raterID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// FeedbackRow is a public feedback entry with the rater's display name.
type FeedbackRow struct {
	Score     int       `json:"score"`
	Comments  string    `json:"comments"`
	RaterName string    `json:"rater_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *FeedbackRepository) ListForRatee(ctx context.Context, rateeID int64) ([]FeedbackRow, error) {
	rows := make([]FeedbackRow, 0)
	err := r.db.WithContext(ctx).
		Table("feedback f").
		Select("f.score, f.comments, u.name AS rater_name, f.created_at").
		Joins("JOIN users u ON u.id = f.rater_id").
		Where("f.ratee_id = ?", rateeID).
		Order("f.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
