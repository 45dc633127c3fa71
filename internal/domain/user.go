package domain

import "time"

type Role string

const (
	RoleMentee Role = "mentee"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMentee, RoleMentor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

type User struct {
	ID                 int64              `json:"id" gorm:"column:id;primaryKey"`
	Name               string             `json:"name" gorm:"column:name"`
	Email              string             `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash       string             `json:"-" gorm:"column:password_hash"`
	Role               Role               `json:"role" gorm:"column:role"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"column:verification_status"`
	CreatedAt          time.Time          `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }
