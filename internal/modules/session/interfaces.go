package session

import (
	"context"
	"time"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

// SessionRepository defines the persistence operations of the lifecycle engine.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	DeleteAvailable(ctx context.Context, sessionID, mentorID int64) (bool, error)
	ApplyOwnedTransition(ctx context.Context, sessionID, mentorID int64, tr domain.SessionTransition) (bool, error)
	Book(ctx context.Context, sessionID, menteeID int64, reference string) (*domain.Booking, error)
	RequestCancellation(ctx context.Context, sessionID, mentorID int64, reason string) (*domain.CancellationRequest, error)
	ApproveCancellation(ctx context.Context, requestID, adminID int64, notes string) (*domain.CancellationRequest, error)
	AvailableSummary(ctx context.Context, sessionID int64) (*repository.SessionSummary, error)
	MenteeBookings(ctx context.Context, menteeID int64) ([]repository.MenteeBookingRow, error)
	MentorSessions(ctx context.Context, mentorID int64) ([]repository.MentorSessionRow, error)
	UpcomingAvailableByMentor(ctx context.Context, mentorID int64, now time.Time) ([]domain.Session, error)
}
