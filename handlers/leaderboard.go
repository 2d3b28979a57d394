package handlers

import (
	"fitness-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Get("/leaderboard/top", leaderboardService.GetTopEntries)
	app.Post("/leaderboard/update_rankings", leaderboardService.UpdateRankings)

	app.Get("/leaderboard", leaderboardService.GetLeaderboard)
	app.Post("/leaderboard", leaderboardService.CreateEntry)
	app.Get("/leaderboard/:id", leaderboardService.GetEntryByID)
	app.Put("/leaderboard/:id", leaderboardService.UpdateEntry)
	app.Patch("/leaderboard/:id", leaderboardService.UpdateEntry)
	app.Delete("/leaderboard/:id", leaderboardService.DeleteEntry)
}
