package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "open"
	DisputeResolved DisputeStatus = "resolved"
)

type Dispute struct {
	ID                int64         `json:"dispute_id" gorm:"column:id;primaryKey"`
	BookingID         int64         `json:"booking_id" gorm:"column:booking_id;uniqueIndex"`
	RaisedByID        int64         `json:"raised_by_id" gorm:"column:raised_by_id"`
	Reason            string        `json:"reason" gorm:"column:reason;type:text"`
	Status            DisputeStatus `json:"status" gorm:"column:status"`
	ResolvedByAdminID *int64        `json:"resolved_by_admin_id,omitempty" gorm:"column:resolved_by_admin_id"`
	ResolutionNotes   string        `json:"resolution_notes,omitempty" gorm:"column:resolution_notes;type:text"`
	CreatedAt         time.Time     `json:"created_at" gorm:"column:created_at"`
}

func (Dispute) TableName() string { return "disputes" }
