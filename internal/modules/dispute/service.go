package dispute

import (
	"context"
	"strings"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type Service struct {
	bookings BookingReader
	disputes DisputeRepository
}

func NewService(bookings BookingReader, disputes DisputeRepository) *Service {
	return &Service{bookings: bookings, disputes: disputes}
}

// Raise opens a dispute on the mentee's own booking. The session's lifecycle
// state is deliberately not checked: a mentee may dispute a booked, completed,
// or canceled session alike.
func (s *Service) Raise(ctx context.Context, menteeID int64, req RaiseDisputeRequest) (*domain.Dispute, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrValidation
	}

	owned, err := s.bookings.IsOwnedByMentee(ctx, req.BookingID, menteeID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrForbidden
	}

	exists, err := s.disputes.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	d := &domain.Dispute{
		BookingID:  req.BookingID,
		RaisedByID: menteeID,
		Reason:     req.Reason,
		Status:     domain.DisputeOpen,
	}
	if err := s.disputes.Create(ctx, d); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return d, nil
}

// Resolve closes an open dispute on the admin's behalf.
func (s *Service) Resolve(ctx context.Context, adminID int64, req ResolveDisputeRequest) error {
	ok, err := s.disputes.Resolve(ctx, req.DisputeID, adminID, req.ResolutionNotes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStateConflict
	}
	return nil
}

func (s *Service) ListOpen(ctx context.Context) ([]repository.OpenDisputeRow, error) {
	return s.disputes.ListOpen(ctx)
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505")
}
