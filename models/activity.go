package models

import (
	"time"
)

// Activity is a single recorded workout session. Points are computed by the
// client that records the activity; this service only stores and sums them.
type Activity struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	ActivityType string    `json:"activity_type" gorm:"not null"` // free-form: running, cycling, ...
	Duration     int       `json:"duration"`                      // minutes
	Distance     *float64  `json:"distance,omitempty"`            // kilometers, optional
	Calories     int       `json:"calories"`
	Points       int       `json:"points"`
	Date         time.Time `json:"date" gorm:"index"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
