package feedback

import (
	"context"
	"errors"
	"strings"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	sessions SessionReader
	feedback FeedbackRepository
}

func NewService(sessions SessionReader, feedback FeedbackRepository) *Service {
	return &Service{sessions: sessions, feedback: feedback}
}

// Submit records the mentee's rating of a completed session. The ratee is
// always the session's mentor; the rater must be the mentee who sat it.
func (s *Service) Submit(ctx context.Context, raterID int64, req SubmitFeedbackRequest) (*domain.Feedback, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, ErrValidation
	}

	session, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateConflict
		}
		return nil, err
	}

	if session.Status != domain.SessionCompleted {
		return nil, ErrStateConflict
	}
	if session.MenteeID == nil || *session.MenteeID != raterID {
		return nil, ErrStateConflict
	}

	exists, err := s.feedback.ExistsForRater(ctx, session.ID, raterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	f := &domain.Feedback{
		SessionID: session.ID,
		RaterID:   raterID,
		RateeID:   session.MentorID,
		Score:     req.Score,
		Comments:  req.Comments,
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return f, nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505")
}
