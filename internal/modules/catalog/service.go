package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileRepository
	slots    SlotReader
	feedback FeedbackReader
}

func NewService(profiles ProfileRepository, slots SlotReader, feedback FeedbackReader) *Service {
	return &Service{profiles: profiles, slots: slots, feedback: feedback}
}

// ListMentors returns the public directory of verified mentors.
func (s *Service) ListMentors(ctx context.Context) ([]repository.MentorCard, error) {
	return s.profiles.VerifiedMentors(ctx)
}

// MentorDetail returns one verified mentor's profile together with upcoming
// open slots and the feedback they have received.
func (s *Service) MentorDetail(ctx context.Context, mentorID int64) (*MentorDetail, error) {
	if mentorID <= 0 {
		return nil, ErrValidation
	}

	profile, err := s.profiles.VerifiedMentorProfile(ctx, mentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sessions, err := s.slots.UpcomingAvailableByMentor(ctx, mentorID, time.Now())
	if err != nil {
		return nil, err
	}

	feedback, err := s.feedback.ListForRatee(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	return &MentorDetail{
		Profile:  profile,
		Sessions: sessions,
		Feedback: feedback,
	}, nil
}

// HasProfile reports whether the mentor already filled in their profile.
func (s *Service) HasProfile(ctx context.Context, mentorID int64) (bool, error) {
	return s.profiles.ExistsForUser(ctx, mentorID)
}

// CreateProfile stores the mentor's one-and-only profile.
func (s *Service) CreateProfile(ctx context.Context, mentorID int64, req CreateProfileRequest) (*domain.MentorProfile, error) {
	if strings.TrimSpace(req.Headline) == "" || strings.TrimSpace(req.Bio) == "" {
		return nil, ErrValidation
	}

	p := &domain.MentorProfile{
		UserID:      mentorID,
		Headline:    req.Headline,
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
