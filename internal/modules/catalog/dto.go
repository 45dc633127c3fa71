package catalog

import (
	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type CreateProfileRequest struct {
	Headline    string `json:"headline" binding:"required" validate:"required,max=120"`
	Bio         string `json:"bio" binding:"required" validate:"required,max=2000"`
	LinkedinURL string `json:"linkedin_url" validate:"omitempty,url"`
}

// MentorDetail bundles everything the public mentor page shows.
type MentorDetail struct {
	Profile  *repository.MentorPublicProfile `json:"profile"`
	Sessions []domain.Session                `json:"sessions"`
	Feedback []repository.FeedbackRow        `json:"feedback"`
}
