// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartRankingScheduler re-runs the rank assignment on an interval so ranks
// trail the synced totals by at most one tick. On-demand recomputes via
// POST /leaderboard/update_rankings remain available in between.
func (s *LeaderboardService) StartRankingScheduler(interval time.Duration) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Scheduler] failed to start ranking scheduler: %v", err)
		return
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ranked, err := RecomputeRankings(s.DB)
			if err != nil {
				log.Printf("[Scheduler] ranking recompute failed: %v", err)
				return
			}
			log.Printf("[Scheduler] rankings refreshed (%d entries)", ranked)
		}),
	)
	if err != nil {
		log.Printf("[Scheduler] failed to schedule ranking job: %v", err)
	}
}
