package services_test

import (
	"testing"

	"fitness-tracker-system/models"
	"fitness-tracker-system/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, userID string, points int) models.LeaderboardEntry {
	return models.LeaderboardEntry{ID: id, UserID: userID, Username: userID, TotalPoints: points}
}

func TestAssignRanksTieBrokenByEntryID(t *testing.T) {
	entries := []models.LeaderboardEntry{
		entry("a", "user-a", 500),
		entry("b", "user-b", 900),
		entry("c", "user-c", 900),
		entry("d", "user-d", 100),
	}

	ranked := services.AssignRanks(entries)

	require.Len(t, ranked, 4)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "c", ranked[1].ID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "a", ranked[2].ID)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "d", ranked[3].ID)
	assert.Equal(t, 4, ranked[3].Rank)
}

func TestAssignRanksDensePermutation(t *testing.T) {
	entries := []models.LeaderboardEntry{
		entry("e1", "u1", 10),
		entry("e2", "u2", 700),
		entry("e3", "u3", 700),
		entry("e4", "u4", 0),
		entry("e5", "u5", 350),
	}

	ranked := services.AssignRanks(entries)

	seen := map[int]bool{}
	for _, e := range ranked {
		assert.False(t, seen[e.Rank], "duplicate rank %d", e.Rank)
		seen[e.Rank] = true
	}
	for want := 1; want <= len(ranked); want++ {
		assert.True(t, seen[want], "missing rank %d", want)
	}
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].TotalPoints, ranked[i].TotalPoints)
	}
}

func TestAssignRanksIdempotent(t *testing.T) {
	entries := []models.LeaderboardEntry{
		entry("x", "ux", 40),
		entry("y", "uy", 90),
		entry("z", "uz", 90),
	}

	first := services.AssignRanks(entries)
	firstRanks := map[string]int{}
	for _, e := range first {
		firstRanks[e.ID] = e.Rank
	}

	second := services.AssignRanks(first)
	for _, e := range second {
		assert.Equal(t, firstRanks[e.ID], e.Rank)
	}
}

func TestAssignRanksEmpty(t *testing.T) {
	ranked := services.AssignRanks(nil)
	assert.Empty(t, ranked)
}

func TestRecomputeRankingsPersists(t *testing.T) {
	db := newTestDB(t)

	for _, e := range []models.LeaderboardEntry{
		entry("a", "user-a", 500),
		entry("b", "user-b", 900),
		entry("c", "user-c", 900),
		entry("d", "user-d", 100),
	} {
		require.NoError(t, db.Create(&e).Error)
	}

	ranked, err := services.RecomputeRankings(db)
	require.NoError(t, err)
	assert.Equal(t, 4, ranked)

	var stored []models.LeaderboardEntry
	require.NoError(t, db.Order("rank ASC").Find(&stored).Error)
	require.Len(t, stored, 4)
	assert.Equal(t, []string{"b", "c", "a", "d"}, []string{stored[0].ID, stored[1].ID, stored[2].ID, stored[3].ID})
	for i, e := range stored {
		assert.Equal(t, i+1, e.Rank)
	}

	// Second pass with no data change keeps the assignment.
	_, err = services.RecomputeRankings(db)
	require.NoError(t, err)

	var again []models.LeaderboardEntry
	require.NoError(t, db.Order("rank ASC").Find(&again).Error)
	for i := range stored {
		assert.Equal(t, stored[i].ID, again[i].ID)
		assert.Equal(t, stored[i].Rank, again[i].Rank)
	}
}

func TestRecomputeRankingsEmptySet(t *testing.T) {
	db := newTestDB(t)

	ranked, err := services.RecomputeRankings(db)
	require.NoError(t, err)
	assert.Zero(t, ranked)
}
