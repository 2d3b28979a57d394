package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRootRoutes exposes the API index listing the resource collections.
func SetupRootRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"users":       "/users",
			"teams":       "/teams",
			"activities":  "/activities",
			"leaderboard": "/leaderboard",
			"workouts":    "/workouts",
		})
	})
}
