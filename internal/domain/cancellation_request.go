package domain

import "time"

type CancellationStatus string

const (
	CancellationPending  CancellationStatus = "pending"
	CancellationApproved CancellationStatus = "approved"
)

type CancellationRequest struct {
	ID                int64              `json:"request_id" gorm:"column:id;primaryKey"`
	SessionID         int64              `json:"session_id" gorm:"column:session_id;index"`
	MentorID          int64              `json:"mentor_id" gorm:"column:mentor_id"`
	Reason            string             `json:"reason" gorm:"column:reason;type:text"`
	Status            CancellationStatus `json:"status" gorm:"column:status"`
	ResolvedByAdminID *int64             `json:"resolved_by_admin_id,omitempty" gorm:"column:resolved_by_admin_id"`
	AdminNotes        string             `json:"admin_notes,omitempty" gorm:"column:admin_notes;type:text"`
	CreatedAt         time.Time          `json:"created_at" gorm:"column:created_at"`
}

func (CancellationRequest) TableName() string { return "cancellation_requests" }
