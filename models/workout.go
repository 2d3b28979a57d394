package models

import (
	"time"
)

// Workout is a recommended workout plan, matched to users by fitness level.
type Workout struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Slug             string    `json:"slug" gorm:"index"`
	Description      string    `json:"description"`
	FitnessLevel     string    `json:"fitness_level" gorm:"index"`
	ActivityType     string    `json:"activity_type" gorm:"index"`
	Duration         int       `json:"duration"` // recommended minutes
	CaloriesEstimate int       `json:"calories_estimate"`
	Instructions     []string  `json:"instructions" gorm:"serializer:json"`
	EquipmentNeeded  []string  `json:"equipment_needed" gorm:"serializer:json"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}
