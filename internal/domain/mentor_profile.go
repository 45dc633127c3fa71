package domain

import "time"

type MentorProfile struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	UserID      int64     `json:"user_id" gorm:"column:user_id;uniqueIndex"`
	Headline    string    `json:"headline" gorm:"column:headline"`
	Bio         string    `json:"bio" gorm:"column:bio;type:text"`
	LinkedinURL string    `json:"linkedin_url,omitempty" gorm:"column:linkedin_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (MentorProfile) TableName() string { return "mentor_profiles" }
