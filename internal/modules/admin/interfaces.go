package admin

import (
	"context"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type UserDirectory interface {
	PendingMentors(ctx context.Context) ([]domain.User, error)
	VerifyMentor(ctx context.Context, mentorID int64) (bool, error)
}

type CancellationQueue interface {
	ListPending(ctx context.Context) ([]repository.PendingRequestRow, error)
}

type StatsSource interface {
	Collect(ctx context.Context) (*repository.PlatformStats, error)
}
