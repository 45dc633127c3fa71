package domain

import "time"

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            int64         `json:"booking_id" gorm:"column:id;primaryKey"`
	Reference     string        `json:"reference" gorm:"column:reference;uniqueIndex"`
	SessionID     int64         `json:"session_id" gorm:"column:session_id;index"`
	MenteeID      int64         `json:"mentee_id" gorm:"column:mentee_id;index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"column:payment_status"`
	CreatedAt     time.Time     `json:"created_at" gorm:"column:created_at"`
}

func (Booking) TableName() string { return "bookings" }
