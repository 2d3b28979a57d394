package models

import (
	"time"
)

// LeaderboardEntry is the per-user standing. One entry per user; the totals
// are denormalized from activities by the leaderboard sync worker, and Rank
// is only meaningful right after a recompute pass (see services.AssignRanks).
type LeaderboardEntry struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	UserID           string     `json:"user_id" gorm:"uniqueIndex;not null"`
	Username         string     `json:"username"`
	TotalPoints      int        `json:"total_points" gorm:"default:0;index"`
	TotalActivities  int        `json:"total_activities" gorm:"default:0"`
	TotalDuration    int        `json:"total_duration" gorm:"default:0"` // minutes
	Rank             int        `json:"rank" gorm:"default:0"`           // 0 = not ranked yet
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}
