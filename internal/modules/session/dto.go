package session

import "time"

type CreateSlotRequest struct {
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Fee             float64   `json:"fee"`
}

type ConfirmBookingRequest struct {
	SessionID int64 `json:"session_id" binding:"required"`
}

type RequestCancellationRequest struct {
	SessionID int64  `json:"session_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type ApproveCancellationRequest struct {
	RequestID  int64  `json:"request_id" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}
