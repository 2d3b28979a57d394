package handlers

import (
	"fitness-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	app.Get("/teams", teamService.GetAllTeams)
	app.Post("/teams", teamService.CreateTeam)
	app.Get("/teams/:id", teamService.GetTeamByID)
	app.Put("/teams/:id", teamService.UpdateTeam)
	app.Patch("/teams/:id", teamService.UpdateTeam)
	app.Delete("/teams/:id", teamService.DeleteTeam)

	// Membership + stats
	app.Post("/teams/:id/add_member", teamService.AddMember)
	app.Post("/teams/:id/remove_member", teamService.RemoveMember)
	app.Get("/teams/:id/stats", teamService.GetTeamStats)
}
