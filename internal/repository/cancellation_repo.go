package repository

import (
	"context"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type CancellationRepository struct {
	db *gorm.DB
}

func NewCancellationRepository(db *gorm.DB) *CancellationRepository {
	return &CancellationRepository{db: db}
}

func (r *CancellationRepository) GetByID(ctx context.Context, id int64) (*domain.CancellationRequest, error) {
	var cr domain.CancellationRequest
	if err := r.db.WithContext(ctx).First(&cr, id).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

// PendingRequestRow is one entry of the admin cancellation queue.
type PendingRequestRow struct {
	RequestID  int64  `json:"request_id"`
	SessionID  int64  `json:"session_id"`
	Reason     string `json:"reason"`
	MentorName string `json:"mentor_name"`
}

func (r *CancellationRepository) ListPending(ctx context.Context) ([]PendingRequestRow, error) {
	rows := make([]PendingRequestRow, 0)
	err := r.db.WithContext(ctx).
		Table("cancellation_requests cr").
		Select("cr.id AS request_id, cr.session_id, cr.reason, u.name AS mentor_name").
		Joins("JOIN users u ON u.id = cr.mentor_id").
		Where("cr.status = ?", domain.CancellationPending).
		Order("cr.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
