package models

import (
	"time"
)

// User is an account on the fitness tracker. The password is stored as an
// opaque string and is never serialized in responses — authentication is
// handled upstream.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Age          int       `json:"age"`
	FitnessLevel string    `json:"fitness_level" gorm:"default:'beginner'"` // beginner | intermediate | advanced
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
