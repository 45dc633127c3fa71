package repository

import (
	"context"
	"time"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type DisputeRepository struct {
	db *gorm.DB
}

func NewDisputeRepository(db *gorm.DB) *DisputeRepository {
	return &DisputeRepository{db: db}
}

func (r *DisputeRepository) Create(ctx context.Context, d *domain.Dispute) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DisputeRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Dispute{}).
		Where("booking_id = ?", bookingID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Resolve closes an open dispute. Returns false when the dispute is missing or
// already resolved.
func (r *DisputeRepository) Resolve(ctx context.Context, disputeID, adminID int64, notes string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Dispute{}).
		Where("id = ? AND status = ?", disputeID, domain.DisputeOpen).
		Updates(map[string]any{
			"status":               domain.DisputeResolved,
			"resolved_by_admin_id": adminID,
			"resolution_notes":     notes,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// OpenDisputeRow is one entry of the admin dispute queue.
type OpenDisputeRow struct {
	DisputeID  int64     `json:"dispute_id"`
	BookingID  int64     `json:"booking_id"`
	Reason     string    `json:"reason"`
	MenteeName string    `json:"mentee_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *DisputeRepository) ListOpen(ctx context.Context) ([]OpenDisputeRow, error) {
	rows := make([]OpenDisputeRow, 0)
	err := r.db.WithContext(ctx).
		Table("disputes d").
		Select("d.id AS dispute_id, d.booking_id, d.reason, u.name AS mentee_name, d.created_at").
		Joins("JOIN users u ON u.id = d.raised_by_id").
		Where("d.status = ?", domain.DisputeOpen).
		Order("d.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
