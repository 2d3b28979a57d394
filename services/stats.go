package services

import (
	"fitness-tracker-system/models"

	"gorm.io/gorm"
)

// UserStats are the summed activity counters for a single user.
type UserStats struct {
	TotalActivities int64 `json:"total_activities"`
	TotalPoints     int   `json:"total_points"`
	TotalDuration   int   `json:"total_duration"`
	TotalCalories   int   `json:"total_calories"`
}

// TeamStats are the summed activity counters across a team's members.
type TeamStats struct {
	TotalMembers    int   `json:"total_members"`
	TotalActivities int64 `json:"total_activities"`
	TotalPoints     int   `json:"total_points"`
	TotalDuration   int   `json:"total_duration"`
}

// StatsService computes read-only aggregates over the activities table.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type activitySums struct {
	N        int64 `gorm:"column:n"`
	Points   int   `gorm:"column:points"`
	Duration int   `gorm:"column:duration"`
	Calories int   `gorm:"column:calories"`
}

const sumSelect = "COUNT(*) AS n, " +
	"COALESCE(SUM(points), 0) AS points, " +
	"COALESCE(SUM(duration), 0) AS duration, " +
	"COALESCE(SUM(calories), 0) AS calories"

// UserStats sums activities owned by userID. An unknown user is not an
// error — the sums are simply all zero.
func (s *StatsService) UserStats(userID string) (UserStats, error) {
	var row activitySums
	err := s.DB.Model(&models.Activity{}).
		Select(sumSelect).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return UserStats{}, err
	}
	return UserStats{
		TotalActivities: row.N,
		TotalPoints:     row.Points,
		TotalDuration:   row.Duration,
		TotalCalories:   row.Calories,
	}, nil
}

// TeamStats sums activities owned by any of memberIDs. TotalMembers is the
// size of the member set as given; an empty set short-circuits to zeros.
func (s *StatsService) TeamStats(memberIDs []string) (TeamStats, error) {
	stats := TeamStats{TotalMembers: len(memberIDs)}
	if len(memberIDs) == 0 {
		return stats, nil
	}

	var row activitySums
	err := s.DB.Model(&models.Activity{}).
		Select(sumSelect).
		Where("user_id IN ?", memberIDs).
		Scan(&row).Error
	if err != nil {
		return TeamStats{}, err
	}
	stats.TotalActivities = row.N
	stats.TotalPoints = row.Points
	stats.TotalDuration = row.Duration
	return stats, nil
}
