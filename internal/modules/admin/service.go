package admin

import (
	"context"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type Service struct {
	users         UserDirectory
	cancellations CancellationQueue
	stats         StatsSource
}

func NewService(users UserDirectory, cancellations CancellationQueue, stats StatsSource) *Service {
	return &Service{users: users, cancellations: cancellations, stats: stats}
}

func (s *Service) PendingMentors(ctx context.Context) ([]domain.User, error) {
	return s.users.PendingMentors(ctx)
}

// VerifyMentor approves a pending mentor. ErrStateConflict when no pending
// mentor matched the ID.
func (s *Service) VerifyMentor(ctx context.Context, mentorID int64) error {
	if mentorID <= 0 {
		return ErrValidation
	}

	ok, err := s.users.VerifyMentor(ctx, mentorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStateConflict
	}
	return nil
}

func (s *Service) CancellationRequests(ctx context.Context) ([]repository.PendingRequestRow, error) {
	return s.cancellations.ListPending(ctx)
}

func (s *Service) Stats(ctx context.Context) (*repository.PlatformStats, error) {
	return s.stats.Collect(ctx)
}
