package domain

import "time"

type Feedback struct {
	ID        int64     `json:"feedback_id" gorm:"column:id;primaryKey"`
	SessionID int64     `json:"session_id" gorm:"column:session_id;uniqueIndex:idx_feedback_once,priority:1"`
	RaterID   int64     `json:"rater_id" gorm:"column:rater_id;uniqueIndex:idx_feedback_once,priority:2"`
	RateeID   int64     `json:"ratee_id" gorm:"column:ratee_id;index"`
	Score     int       `json:"score" gorm:"column:score"`
	Comments  string    `json:"comments,omitempty" gorm:"column:comments;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Feedback) TableName() string { return "feedback" }
