package domain

import "time"

type SessionStatus string

const (
	SessionAvailable           SessionStatus = "available"
	SessionBooked              SessionStatus = "booked"
	SessionCompleted           SessionStatus = "completed"
	SessionPendingCancellation SessionStatus = "pending_cancellation"
	SessionCanceled            SessionStatus = "canceled"
)

type SessionEvent string

const (
	EventBook                SessionEvent = "book"
	EventComplete            SessionEvent = "complete"
	EventRequestCancellation SessionEvent = "request_cancellation"
	EventApproveCancellation SessionEvent = "approve_cancellation"
	EventDelete              SessionEvent = "delete"
)

// SessionTransition is a single allowed edge in the slot lifecycle.
type SessionTransition struct {
	From  SessionStatus
	Event SessionEvent
	To    SessionStatus
}

// Deletion removes the row instead of rewriting status; the zero To marks it.
var sessionTransitions = []SessionTransition{
	{From: SessionAvailable, Event: EventBook, To: SessionBooked},
	{From: SessionAvailable, Event: EventDelete, To: ""},
	{From: SessionBooked, Event: EventComplete, To: SessionCompleted},
	{From: SessionBooked, Event: EventRequestCancellation, To: SessionPendingCancellation},
	{From: SessionPendingCancellation, Event: EventApproveCancellation, To: SessionCanceled},
}

// TransitionFor returns the allowed transition for a status+event pair.
// All session status writes go through this table; repositories persist
// whatever it yields and nothing else.
func TransitionFor(from SessionStatus, ev SessionEvent) (SessionTransition, bool) {
	for _, tr := range sessionTransitions {
		if tr.From == from && tr.Event == ev {
			return tr, true
		}
	}
	return SessionTransition{}, false
}

// IsTerminal reports whether no further transitions exist for the status.
func (s SessionStatus) IsTerminal() bool {
	for _, tr := range sessionTransitions {
		if tr.From == s {
			return false
		}
	}
	return true
}

// Occupied reports whether a session in this status holds a mentee.
// Invariant: mentee_id is non-null exactly in these states.
func (s SessionStatus) Occupied() bool {
	switch s {
	case SessionBooked, SessionCompleted, SessionPendingCancellation, SessionCanceled:
		return true
	}
	return false
}

type Session struct {
	ID                 int64         `json:"session_id" gorm:"column:id;primaryKey"`
	MentorID           int64         `json:"mentor_id" gorm:"column:mentor_id;index"`
	MenteeID           *int64        `json:"mentee_id,omitempty" gorm:"column:mentee_id"`
	StartTime          time.Time     `json:"start_time" gorm:"column:start_time"`
	DurationMinutes    int           `json:"duration_minutes" gorm:"column:duration_minutes"`
	Fee                float64       `json:"fee" gorm:"column:fee"`
	Status             SessionStatus `json:"status" gorm:"column:status"`
	CancellationReason string        `json:"cancellation_reason,omitempty" gorm:"column:cancellation_reason;type:text"`
	CreatedAt          time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (Session) TableName() string { return "sessions" }
