// workers/team_points_worker.go
package workers

import (
	"context"
	"log"
	"time"

	"fitness-tracker-system/models"

	"gorm.io/gorm"
)

// TeamPointsClient rebuilds each team's denormalized total_points from its
// members' activities.
type TeamPointsClient struct {
	DB *gorm.DB
}

func NewTeamPointsClient(db *gorm.DB) *TeamPointsClient {
	return &TeamPointsClient{DB: db}
}

// PollTeamPoints refreshes team totals on an interval until ctx is done.
func PollTeamPoints(ctx context.Context, client *TeamPointsClient, interval time.Duration) {
	if err := client.RefreshOnce(ctx); err != nil {
		log.Printf("⚠️ Initial team points refresh failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Team points worker stopped")
			return
		case <-ticker.C:
			if err := client.RefreshOnce(ctx); err != nil {
				log.Printf("⚠️ Team points refresh failed: %v", err)
			}
		}
	}
}

// RefreshOnce recomputes total_points for every team in one pass. A team
// with no members or no member activity lands on zero.
func (c *TeamPointsClient) RefreshOnce(ctx context.Context) error {
	db := c.DB.WithContext(ctx)

	var teams []models.Team
	if err := db.Find(&teams).Error; err != nil {
		return err
	}

	for _, team := range teams {
		var memberIDs []string
		err := db.Model(&models.TeamMember{}).
			Where("team_id = ?", team.ID).
			Pluck("user_id", &memberIDs).Error
		if err != nil {
			return err
		}

		total := 0
		if len(memberIDs) > 0 {
			var sum struct {
				Points int `gorm:"column:points"`
			}
			err := db.Model(&models.Activity{}).
				Select("COALESCE(SUM(points), 0) AS points").
				Where("user_id IN ?", memberIDs).
				Scan(&sum).Error
			if err != nil {
				return err
			}
			total = sum.Points
		}

		if total != team.TotalPoints {
			err := db.Model(&models.Team{}).
				Where("id = ?", team.ID).
				Update("total_points", total).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}
