package handlers

import (
	"fitness-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupWorkoutRoutes(app *fiber.App, workoutService *services.WorkoutService) {
	app.Get("/workouts/recommend", workoutService.RecommendWorkouts)

	app.Get("/workouts", workoutService.GetAllWorkouts)
	app.Post("/workouts", workoutService.CreateWorkout)
	app.Get("/workouts/:id", workoutService.GetWorkoutByID)
	app.Put("/workouts/:id", workoutService.UpdateWorkout)
	app.Patch("/workouts/:id", workoutService.UpdateWorkout)
	app.Delete("/workouts/:id", workoutService.DeleteWorkout)
}
