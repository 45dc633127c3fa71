package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultDurationMinutes = 60

type Service struct {
	sessions SessionRepository
}

func NewService(sessions SessionRepository) *Service {
	return &Service{sessions: sessions}
}

// CreateSlot publishes a new available slot for the mentor.
func (s *Service) CreateSlot(ctx context.Context, mentorID int64, req CreateSlotRequest) (*domain.Session, error) {
	if req.StartTime.IsZero() || !req.StartTime.After(time.Now()) {
		return nil, ErrValidation
	}
	if req.DurationMinutes < 0 || req.Fee < 0 {
		return nil, ErrValidation
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	slot := &domain.Session{
		MentorID:        mentorID,
		StartTime:       req.StartTime,
		DurationMinutes: duration,
		Fee:             req.Fee,
		Status:          domain.SessionAvailable,
	}

	if err := s.sessions.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// DeleteSlot removes an available slot owned by the mentor. A slot that has
// been booked, or never existed, yields ErrStateConflict either way.
func (s *Service) DeleteSlot(ctx context.Context, mentorID, sessionID int64) error {
	if sessionID <= 0 {
		return ErrValidation
	}
	ok, err := s.sessions.DeleteAvailable(ctx, sessionID, mentorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStateConflict
	}
	return nil
}

// ConfirmBooking occupies an available slot for the mentee. The repository
// executes the lock-then-check-then-write transaction; a lost race surfaces
// as ErrStateConflict with no writes performed.
func (s *Service) ConfirmBooking(ctx context.Context, menteeID, sessionID int64) (*domain.Booking, error) {
	if sessionID <= 0 {
		return nil, ErrValidation
	}

	booking, err := s.sessions.Book(ctx, sessionID, menteeID, uuid.NewString())
	if err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return nil, ErrStateConflict
		}
		return nil, err
	}
	return booking, nil
}

// SessionSummary returns the pre-payment view of an available slot.
func (s *Service) SessionSummary(ctx context.Context, sessionID int64) (*repository.SessionSummary, error) {
	if sessionID <= 0 {
		return nil, ErrValidation
	}
	summary, err := s.sessions.AvailableSummary(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateConflict
		}
		return nil, err
	}
	return summary, nil
}

// CompleteSession moves a booked session to completed.
func (s *Service) CompleteSession(ctx context.Context, mentorID, sessionID int64) error {
	if sessionID <= 0 {
		return ErrValidation
	}

	tr, ok := domain.TransitionFor(domain.SessionBooked, domain.EventComplete)
	if !ok {
		return ErrStateConflict
	}

	applied, err := s.sessions.ApplyOwnedTransition(ctx, sessionID, mentorID, tr)
	if err != nil {
		return err
	}
	if !applied {
		return ErrStateConflict
	}
	return nil
}

// RequestCancellation files a cancellation request for a booked session and
// parks the session in pending_cancellation until an admin rules on it.
func (s *Service) RequestCancellation(ctx context.Context, mentorID, sessionID int64, reason string) (*domain.CancellationRequest, error) {
	if sessionID <= 0 || strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	request, err := s.sessions.RequestCancellation(ctx, sessionID, mentorID, strings.TrimSpace(reason))
	if err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return nil, ErrStateConflict
		}
		return nil, err
	}
	return request, nil
}

// ApproveCancellation resolves a pending request: request approved, session
// canceled with the mentor's reason, booking refunded — atomically.
func (s *Service) ApproveCancellation(ctx context.Context, adminID, requestID int64, notes string) (*domain.CancellationRequest, error) {
	if requestID <= 0 {
		return nil, ErrValidation
	}

	request, err := s.sessions.ApproveCancellation(ctx, requestID, adminID, notes)
	if err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return nil, ErrStateConflict
		}
		return nil, err
	}
	return request, nil
}

// MyBookings returns the mentee dashboard rows.
func (s *Service) MyBookings(ctx context.Context, menteeID int64) ([]repository.MenteeBookingRow, error) {
	return s.sessions.MenteeBookings(ctx, menteeID)
}

// MySessions returns the mentor dashboard rows.
func (s *Service) MySessions(ctx context.Context, mentorID int64) ([]repository.MentorSessionRow, error) {
	return s.sessions.MentorSessions(ctx, mentorID)
}
