package catalog

import (
	"context"
	"time"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.MentorProfile) error
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
	VerifiedMentors(ctx context.Context) ([]repository.MentorCard, error)
	VerifiedMentorProfile(ctx context.Context, mentorID int64) (*repository.MentorPublicProfile, error)
}

type SlotReader interface {
	UpcomingAvailableByMentor(ctx context.Context, mentorID int64, now time.Time) ([]domain.Session, error)
}

type FeedbackReader interface {
	ListForRatee(ctx context.Context, rateeID int64) ([]repository.FeedbackRow, error)
}
