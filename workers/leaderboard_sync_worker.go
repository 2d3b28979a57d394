// workers/leaderboard_sync_worker.go
package workers

import (
	"context"
	"log"
	"time"

	"fitness-tracker-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activityTotals is the per-user aggregate pulled from the activities table.
type activityTotals struct {
	UserID          string     `gorm:"column:user_id"`
	TotalActivities int        `gorm:"column:total_activities"`
	TotalPoints     int        `gorm:"column:total_points"`
	TotalDuration   int        `gorm:"column:total_duration"`
	LastActivity    *time.Time `gorm:"column:last_activity"`
}

// LeaderboardSyncWorker keeps the denormalized leaderboard totals in step
// with the activities table. Totals are rebuilt from scratch each pass, so a
// deleted or edited activity is reflected on the next tick rather than
// patched incrementally.
type LeaderboardSyncWorker struct {
	db       *gorm.DB
	interval time.Duration
}

func NewLeaderboardSyncWorker(db *gorm.DB, interval time.Duration) *LeaderboardSyncWorker {
	return &LeaderboardSyncWorker{db: db, interval: interval}
}

func (w *LeaderboardSyncWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting Leaderboard Sync Worker (activities → leaderboard)…")
	go w.run(ctx)
}

func (w *LeaderboardSyncWorker) run(ctx context.Context) {
	if err := w.SyncOnce(ctx); err != nil {
		log.Printf("⚠️ Initial leaderboard sync failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Leaderboard Sync Worker stopped")
			return
		case <-ticker.C:
			if err := w.SyncOnce(ctx); err != nil {
				log.Printf("⚠️ Leaderboard sync failed: %v", err)
			}
		}
	}
}

// SyncOnce rebuilds every user's leaderboard entry from their activities.
// Users without an entry get one created; users without activities keep a
// zeroed entry rather than none at all.
func (w *LeaderboardSyncWorker) SyncOnce(ctx context.Context) error {
	db := w.db.WithContext(ctx)

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}

	var totals []activityTotals
	err := db.Model(&models.Activity{}).
		Select("user_id, " +
			"COUNT(*) AS total_activities, " +
			"COALESCE(SUM(points), 0) AS total_points, " +
			"COALESCE(SUM(duration), 0) AS total_duration, " +
			"MAX(date) AS last_activity").
		Group("user_id").
		Scan(&totals).Error
	if err != nil {
		return err
	}

	byUser := make(map[string]activityTotals, len(totals))
	for _, t := range totals {
		byUser[t.UserID] = t
	}

	for _, u := range users {
		t := byUser[u.ID] // zero totals when the user has no activities

		entry := models.LeaderboardEntry{
			ID:               uuid.NewString(),
			UserID:           u.ID,
			Username:         u.Username,
			TotalPoints:      t.TotalPoints,
			TotalActivities:  t.TotalActivities,
			TotalDuration:    t.TotalDuration,
			LastActivityDate: t.LastActivity,
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "total_points", "total_activities",
				"total_duration", "last_activity_date", "updated_at",
			}),
		}).Create(&entry).Error
		if err != nil {
			return err
		}
	}

	return nil
}
