package services_test

import (
	"testing"
	"time"

	"fitness-tracker-system/models"
	"fitness-tracker-system/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStatsUnknownUserIsAllZeros(t *testing.T) {
	db := newTestDB(t)
	stats := services.NewStatsService(db)

	got, err := stats.UserStats("no-such-user")
	require.NoError(t, err)
	assert.Equal(t, services.UserStats{}, got)
}

func TestUserStatsSums(t *testing.T) {
	db := newTestDB(t)
	stats := services.NewStatsService(db)

	user := seedUser(t, db, "runner")
	other := seedUser(t, db, "cyclist")

	for i, a := range []struct{ points, duration, calories int }{
		{100, 30, 250},
		{40, 20, 150},
		{60, 45, 400},
	} {
		act := models.Activity{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			ActivityType: "running",
			Duration:     a.duration,
			Calories:     a.calories,
			Points:       a.points,
			Date:         time.Now().AddDate(0, 0, -i),
		}
		require.NoError(t, db.Create(&act).Error)
	}
	// Activity owned by someone else must not leak into the sums.
	noise := models.Activity{
		ID: uuid.NewString(), UserID: other.ID, ActivityType: "cycling",
		Duration: 60, Calories: 500, Points: 80, Date: time.Now(),
	}
	require.NoError(t, db.Create(&noise).Error)

	got, err := stats.UserStats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalActivities)
	assert.Equal(t, 200, got.TotalPoints)
	assert.Equal(t, 95, got.TotalDuration)
	assert.Equal(t, 800, got.TotalCalories)
}

func TestTeamStatsEmptyMemberSet(t *testing.T) {
	db := newTestDB(t)
	stats := services.NewStatsService(db)

	got, err := stats.TeamStats(nil)
	require.NoError(t, err)
	assert.Equal(t, services.TeamStats{TotalMembers: 0}, got)
}

func TestTeamStatsSumsAcrossMembers(t *testing.T) {
	db := newTestDB(t)
	stats := services.NewStatsService(db)

	a := seedUser(t, db, "alpha")
	b := seedUser(t, db, "beta")

	for _, act := range []models.Activity{
		{ID: uuid.NewString(), UserID: a.ID, ActivityType: "running", Duration: 30, Calories: 200, Points: 50, Date: time.Now()},
		{ID: uuid.NewString(), UserID: b.ID, ActivityType: "yoga", Duration: 45, Calories: 120, Points: 25, Date: time.Now()},
	} {
		require.NoError(t, db.Create(&act).Error)
	}

	got, err := stats.TeamStats([]string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalMembers)
	assert.Equal(t, int64(2), got.TotalActivities)
	assert.Equal(t, 75, got.TotalPoints)
	assert.Equal(t, 75, got.TotalDuration)
}

func TestTeamStatsCountsMembersAsGiven(t *testing.T) {
	db := newTestDB(t)
	stats := services.NewStatsService(db)

	// Member count reflects the set as handed in, duplicates included.
	got, err := stats.TeamStats([]string{"u1", "u1", "u2"})
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalMembers)
	assert.Zero(t, got.TotalActivities)
}
