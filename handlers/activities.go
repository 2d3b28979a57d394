package handlers

import (
	"fitness-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupActivityRoutes(app *fiber.App, activityService *services.ActivityService) {
	// /recent before /:id so it isn't captured as an id
	app.Get("/activities/recent", activityService.GetRecentActivities)

	app.Get("/activities", activityService.GetAllActivities)
	app.Post("/activities", activityService.CreateActivity)
	app.Get("/activities/:id", activityService.GetActivityByID)
	app.Put("/activities/:id", activityService.UpdateActivity)
	app.Patch("/activities/:id", activityService.UpdateActivity)
	app.Delete("/activities/:id", activityService.DeleteActivity)
}
