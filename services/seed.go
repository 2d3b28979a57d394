package services

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fitness-tracker-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type seedUser struct {
	Username     string
	Email        string
	FullName     string
	Age          int
	FitnessLevel string
	Team         string
}

var seedUsers = []seedUser{
	{"ironman", "ironman@marvel.com", "Tony Stark", 45, "advanced", "Team Marvel"},
	{"captainamerica", "captainamerica@marvel.com", "Steve Rogers", 35, "advanced", "Team Marvel"},
	{"blackwidow", "blackwidow@marvel.com", "Natasha Romanoff", 32, "intermediate", "Team Marvel"},
	{"thor", "thor@marvel.com", "Thor Odinson", 40, "advanced", "Team Marvel"},
	{"hulk", "hulk@marvel.com", "Bruce Banner", 42, "beginner", "Team Marvel"},
	{"batman", "batman@dc.com", "Bruce Wayne", 38, "advanced", "Team DC"},
	{"superman", "superman@dc.com", "Clark Kent", 33, "advanced", "Team DC"},
	{"wonderwoman", "wonderwoman@dc.com", "Diana Prince", 30, "intermediate", "Team DC"},
	{"flash", "flash@dc.com", "Barry Allen", 28, "intermediate", "Team DC"},
	{"aquaman", "aquaman@dc.com", "Arthur Curry", 34, "beginner", "Team DC"},
}

var seedActivityTypes = []string{"running", "cycling", "swimming", "strength", "yoga"}

type seedWorkout struct {
	Name         string
	Description  string
	FitnessLevel string
	ActivityType string
	Duration     int
	Calories     int
	Instructions []string
	Equipment    []string
}

var seedWorkouts = []seedWorkout{
	{
		"Morning Jog Starter", "Easy-paced jog to build a running habit.",
		"beginner", "running", 20, 150,
		[]string{"Warm up with a 5 minute walk", "Jog at conversational pace for 12 minutes", "Cool down with a 3 minute walk"},
		[]string{"running shoes"},
	},
	{
		"Bodyweight Basics", "Full-body strength session with no equipment.",
		"beginner", "strength", 25, 180,
		[]string{"3x10 squats", "3x8 push-ups (knees ok)", "3x20s plank", "Stretch"},
		[]string{},
	},
	{
		"Gentle Yoga Flow", "Low-impact mobility and breathing work.",
		"beginner", "yoga", 30, 100,
		[]string{"Sun salutations x5", "Warrior sequence", "5 minutes of final rest"},
		[]string{"yoga mat"},
	},
	{
		"Tempo Run", "Sustained effort run to raise lactate threshold.",
		"intermediate", "running", 40, 400,
		[]string{"10 minute easy warm-up", "20 minutes at tempo pace", "10 minute cool-down"},
		[]string{"running shoes"},
	},
	{
		"Hill Repeats", "Cycling intervals on a moderate climb.",
		"intermediate", "cycling", 45, 500,
		[]string{"15 minute spin warm-up", "6x2 minute climbs with easy descents", "10 minute cool-down"},
		[]string{"bicycle", "helmet"},
	},
	{
		"Pool Pyramid", "Swim pyramid set for aerobic endurance.",
		"intermediate", "swimming", 40, 450,
		[]string{"200m easy warm-up", "50-100-150-200-150-100-50m with 30s rest", "100m easy cool-down"},
		[]string{"goggles"},
	},
	{
		"Interval Burner", "High-intensity run intervals for experienced athletes.",
		"advanced", "running", 50, 650,
		[]string{"15 minute progressive warm-up", "8x400m at 5k pace with 90s rest", "10 minute cool-down"},
		[]string{"running shoes"},
	},
	{
		"Heavy Compound Day", "Barbell strength session built around the big lifts.",
		"advanced", "strength", 60, 550,
		[]string{"5x5 back squat", "5x5 bench press", "3x5 deadlift", "Accessory core work"},
		[]string{"barbell", "rack", "bench"},
	},
	{
		"Century Prep Ride", "Long endurance ride with structured efforts.",
		"advanced", "cycling", 120, 1400,
		[]string{"20 minute easy spin", "3x20 minutes at sweet spot with 10 minute recoveries", "20 minute easy spin"},
		[]string{"bicycle", "helmet", "bottles"},
	},
}

// SeedDatabase wipes the five collections and repopulates them with demo
// data, then recomputes rankings so the leaderboard is immediately coherent.
func SeedDatabase(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, m := range []interface{}{
		&models.TeamMember{}, &models.Team{}, &models.Activity{},
		&models.LeaderboardEntry{}, &models.Workout{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}

	log.Println("Populating users...")
	teamMembers := map[string][]string{}
	userIDs := map[string]string{}
	for _, su := range seedUsers {
		u := models.User{
			ID:           uuid.NewString(),
			Username:     su.Username,
			Email:        su.Email,
			Password:     "demo-password",
			FullName:     su.FullName,
			Age:          su.Age,
			FitnessLevel: su.FitnessLevel,
		}
		if err := db.Create(&u).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.Username, err)
		}
		userIDs[su.Username] = u.ID
		teamMembers[su.Team] = append(teamMembers[su.Team], u.ID)
	}

	log.Println("Populating teams...")
	for name, memberIDs := range teamMembers {
		t := models.Team{
			ID:          uuid.NewString(),
			Name:        name,
			Description: fmt.Sprintf("%s fitness squad", name),
			CaptainID:   memberIDs[0],
		}
		if err := db.Create(&t).Error; err != nil {
			return fmt.Errorf("failed to seed team %s: %w", name, err)
		}
		if err := insertMembers(db, t.ID, memberIDs); err != nil {
			return fmt.Errorf("failed to seed team members for %s: %w", name, err)
		}
	}

	log.Println("Populating activities and leaderboard...")
	for _, su := range seedUsers {
		id := userIDs[su.Username]
		totalPoints, totalDuration := 0, 0
		count := 5 + rand.Intn(10)
		var lastDate time.Time
		for i := 0; i < count; i++ {
			duration := 20 + rand.Intn(70)
			points := duration + rand.Intn(50)
			distance := float64(rand.Intn(150)) / 10.0
			date := time.Now().AddDate(0, 0, -rand.Intn(30))
			a := models.Activity{
				ID:           uuid.NewString(),
				UserID:       id,
				ActivityType: seedActivityTypes[rand.Intn(len(seedActivityTypes))],
				Duration:     duration,
				Distance:     &distance,
				Calories:     duration * 8,
				Points:       points,
				Date:         date,
				Notes:        "seeded demo activity",
			}
			if err := db.Create(&a).Error; err != nil {
				return fmt.Errorf("failed to seed activity: %w", err)
			}
			totalPoints += points
			totalDuration += duration
			if date.After(lastDate) {
				lastDate = date
			}
		}

		entry := models.LeaderboardEntry{
			ID:               uuid.NewString(),
			UserID:           id,
			Username:         su.Username,
			TotalPoints:      totalPoints,
			TotalActivities:  count,
			TotalDuration:    totalDuration,
			LastActivityDate: &lastDate,
		}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to seed leaderboard entry: %w", err)
		}
	}

	log.Println("Populating workouts...")
	for _, sw := range seedWorkouts {
		w := models.Workout{
			ID:               uuid.NewString(),
			Name:             sw.Name,
			Slug:             slug.Make(sw.Name),
			Description:      sw.Description,
			FitnessLevel:     sw.FitnessLevel,
			ActivityType:     sw.ActivityType,
			Duration:         sw.Duration,
			CaloriesEstimate: sw.Calories,
			Instructions:     sw.Instructions,
			EquipmentNeeded:  sw.Equipment,
		}
		if err := db.Create(&w).Error; err != nil {
			return fmt.Errorf("failed to seed workout %s: %w", sw.Name, err)
		}
	}

	ranked, err := RecomputeRankings(db)
	if err != nil {
		return fmt.Errorf("failed to compute initial rankings: %w", err)
	}
	log.Printf("✅ Seed complete: %d users, %d teams, %d workouts, %d ranked entries",
		len(seedUsers), len(teamMembers), len(seedWorkouts), ranked)
	return nil
}
