package repository

import (
	"context"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.MentorProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.MentorProfile, error) {
	var p domain.MentorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&domain.MentorProfile{}).Where("user_id = ?", userID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// MentorCard is a row of the public mentor directory.
type MentorCard struct {
	UserID            int64  `json:"user_id"`
	Name              string `json:"name"`
	Headline          string `json:"headline"`
	Bio               string `json:"bio"`
	CompletedSessions int64  `json:"completed_sessions"`
}

// VerifiedMentors lists verified mentors that have a profile, with their
// completed-session counts.
func (r *ProfileRepository) VerifiedMentors(ctx context.Context) ([]MentorCard, error) {
	var cards []MentorCard
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.name, mp.headline, mp.bio,
			(SELECT COUNT(*) FROM sessions s WHERE s.mentor_id = u.id AND s.status = ?) AS completed_sessions`,
			domain.SessionCompleted).
		Joins("JOIN mentor_profiles mp ON mp.user_id = u.id").
		Where("u.role = ? AND u.verification_status = ?", domain.RoleMentor, domain.VerificationVerified).
		Scan(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// MentorPublicProfile is the detail view of one verified mentor.
type MentorPublicProfile struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Headline    string `json:"headline"`
	Bio         string `json:"bio"`
	LinkedinURL string `json:"linkedin_url"`
}

func (r *ProfileRepository) VerifiedMentorProfile(ctx context.Context, mentorID int64) (*MentorPublicProfile, error) {
	var p MentorPublicProfile
	err := r.db.WithContext(ctx).
		Table("users u").
		Select("u.id AS user_id, u.name, mp.headline, mp.bio, mp.linkedin_url").
		Joins("JOIN mentor_profiles mp ON mp.user_id = u.id").
		Where("u.id = ? AND u.role = ? AND u.verification_status = ?",
			mentorID, domain.RoleMentor, domain.VerificationVerified).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
