package repository

import (
	"context"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// IsOwnedByMentee reports whether the booking belongs to the mentee.
func (r *BookingRepository) IsOwnedByMentee(ctx context.Context, bookingID, menteeID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND mentee_id = ?", bookingID, menteeID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BookingRepository) GetBySessionID(ctx context.Context, sessionID int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
