package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-tracker-system/handlers"
	"fitness-tracker-system/models"
	"fitness-tracker-system/services"
	"fitness-tracker-system/utils"
	"fitness-tracker-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey so handlers can answer 409 uniformly.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Activity{},
		&models.LeaderboardEntry{},
		&models.Workout{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	// `fitness-tracker-system seed` (or SEED_DB=true) repopulates demo data
	// and exits.
	if (len(os.Args) > 1 && os.Args[1] == "seed") || os.Getenv("SEED_DB") == "true" {
		if err := services.SeedDatabase(db); err != nil {
			log.Fatal("seed failed:", err)
		}
		return
	}

	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}
	if err := utils.InitR2(); err != nil {
		log.Printf("⚠️  %v — avatar uploads will use local storage", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, avatars are the only uploads
	})
	app.Use(recover.New())
	app.Use(logger.New())

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Println("⚠️  ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID",
	}))

	userService := services.NewUserService(db)
	teamService := services.NewTeamService(db)
	activityService := services.NewActivityService(db)
	leaderboardService := services.NewLeaderboardService(db)
	workoutService := services.NewWorkoutService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Denormalized counters are maintained out-of-band: the sync worker
	// rebuilds leaderboard totals from activities, the points worker
	// rebuilds team totals, and the scheduler keeps ranks fresh.
	syncWorker := workers.NewLeaderboardSyncWorker(db, 1*time.Minute)
	syncWorker.Start(ctx)

	teamPointsClient := workers.NewTeamPointsClient(db)
	go workers.PollTeamPoints(ctx, teamPointsClient, 1*time.Minute)

	leaderboardService.StartRankingScheduler(5 * time.Minute)

	handlers.SetupRootRoutes(app)
	handlers.SetupUserRoutes(app, userService)
	handlers.SetupTeamRoutes(app, teamService)
	handlers.SetupActivityRoutes(app, activityService)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)
	handlers.SetupWorkoutRoutes(app, workoutService)

	app.Static("/uploads", "./uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Leaderboard sync worker running (every 1m)")
	log.Println("✅ Team points worker running (every 1m)")
	log.Println("✅ Ranking scheduler running (every 5m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
