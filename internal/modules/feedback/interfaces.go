package feedback

import (
	"context"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type SessionReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	ExistsForRater(ctx context.Context, sessionID, raterID int64) (bool, error)
	ListForRatee(ctx context.Context, rateeID int64) ([]repository.FeedbackRow, error)
}
