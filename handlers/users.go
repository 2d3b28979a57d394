package handlers

import (
	"fitness-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	app.Get("/users", userService.GetAllUsers)
	app.Post("/users", userService.CreateUser)
	app.Get("/users/:id", userService.GetUserByID)
	app.Put("/users/:id", userService.UpdateUser)
	app.Patch("/users/:id", userService.UpdateUser)
	app.Delete("/users/:id", userService.DeleteUser)

	// Derived endpoints
	app.Get("/users/:id/activities", userService.GetUserActivities)
	app.Get("/users/:id/stats", userService.GetUserStats)
	app.Post("/users/:id/avatar", userService.UploadAvatar)
}
