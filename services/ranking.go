package services

import (
	"sort"

	"fitness-tracker-system/models"

	"gorm.io/gorm"
)

// AssignRanks orders entries by total points (highest first) and assigns
// dense ranks 1..N. Ties do not share a rank — each entry gets the next
// integer. The secondary key is the entry ID, so a recompute over the same
// data always produces the same assignment regardless of how the store
// happened to return the rows.
func AssignRanks(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].ID < entries[j].ID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RecomputeRankings reads every leaderboard entry, assigns fresh ranks and
// persists them, all inside one transaction so a failed pass never leaves a
// mixed old/new assignment. Returns the number of entries ranked.
func RecomputeRankings(db *gorm.DB) (int, error) {
	ranked := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var entries []models.LeaderboardEntry
		if err := tx.Order("total_points DESC, id ASC").Find(&entries).Error; err != nil {
			return err
		}

		entries = AssignRanks(entries)
		for _, e := range entries {
			err := tx.Model(&models.LeaderboardEntry{}).
				Where("id = ?", e.ID).
				Update("rank", e.Rank).Error
			if err != nil {
				return err
			}
		}

		ranked = len(entries)
		return nil
	})
	return ranked, err
}
