package services

import (
	"errors"

	"fitness-tracker-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type WorkoutService struct {
	DB *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{DB: db}
}

type createWorkoutRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	FitnessLevel     string   `json:"fitness_level"`
	ActivityType     string   `json:"activity_type"`
	Duration         int      `json:"duration"`
	CaloriesEstimate int      `json:"calories_estimate"`
	Instructions     []string `json:"instructions"`
	EquipmentNeeded  []string `json:"equipment_needed"`
}

type updateWorkoutRequest struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	FitnessLevel     *string   `json:"fitness_level"`
	ActivityType     *string   `json:"activity_type"`
	Duration         *int      `json:"duration"`
	CaloriesEstimate *int      `json:"calories_estimate"`
	Instructions     *[]string `json:"instructions"`
	EquipmentNeeded  *[]string `json:"equipment_needed"`
}

// CreateWorkout adds a workout recommendation. The slug is derived from the
// name.
func (s *WorkoutService) CreateWorkout(c *fiber.Ctx) error {
	var req createWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if req.Duration < 0 || req.CaloriesEstimate < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration and calories_estimate must be non-negative"})
	}
	if req.FitnessLevel == "" {
		req.FitnessLevel = "beginner"
	}
	if req.Instructions == nil {
		req.Instructions = []string{}
	}
	if req.EquipmentNeeded == nil {
		req.EquipmentNeeded = []string{}
	}

	workout := models.Workout{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Slug:             slug.Make(req.Name),
		Description:      req.Description,
		FitnessLevel:     req.FitnessLevel,
		ActivityType:     req.ActivityType,
		Duration:         req.Duration,
		CaloriesEstimate: req.CaloriesEstimate,
		Instructions:     req.Instructions,
		EquipmentNeeded:  req.EquipmentNeeded,
	}

	if err := s.DB.Create(&workout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create workout"})
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// GetAllWorkouts lists workouts, optionally filtered by ?fitness_level= and
// ?activity_type=.
func (s *WorkoutService) GetAllWorkouts(c *fiber.Ctx) error {
	db := s.DB
	if level := c.Query("fitness_level"); level != "" {
		db = db.Where("fitness_level = ?", level)
	}
	if activityType := c.Query("activity_type"); activityType != "" {
		db = db.Where("activity_type = ?", activityType)
	}

	workouts := []models.Workout{}
	if err := db.Find(&workouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch workouts"})
	}
	return c.JSON(workouts)
}

// RecommendWorkouts returns up to 5 workouts for a fitness level, default
// "beginner". Fewer than 5 matches return just those — never padded.
func (s *WorkoutService) RecommendWorkouts(c *fiber.Ctx) error {
	level := c.Query("fitness_level", "beginner")

	workouts := []models.Workout{}
	if err := s.DB.Where("fitness_level = ?", level).Limit(5).Find(&workouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch workouts"})
	}
	return c.JSON(workouts)
}

// GetWorkoutByID returns a single workout.
func (s *WorkoutService) GetWorkoutByID(c *fiber.Ctx) error {
	var workout models.Workout
	if err := s.DB.First(&workout, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch workout"})
	}
	return c.JSON(workout)
}

// UpdateWorkout applies the provided fields. A name change refreshes the
// slug.
func (s *WorkoutService) UpdateWorkout(c *fiber.Ctx) error {
	var workout models.Workout
	if err := s.DB.First(&workout, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch workout"})
	}

	var req updateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		workout.Name = *req.Name
		workout.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		workout.Description = *req.Description
	}
	if req.FitnessLevel != nil {
		workout.FitnessLevel = *req.FitnessLevel
	}
	if req.ActivityType != nil {
		workout.ActivityType = *req.ActivityType
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration must be non-negative"})
		}
		workout.Duration = *req.Duration
	}
	if req.CaloriesEstimate != nil {
		if *req.CaloriesEstimate < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "calories_estimate must be non-negative"})
		}
		workout.CaloriesEstimate = *req.CaloriesEstimate
	}
	if req.Instructions != nil {
		workout.Instructions = *req.Instructions
	}
	if req.EquipmentNeeded != nil {
		workout.EquipmentNeeded = *req.EquipmentNeeded
	}

	if err := s.DB.Save(&workout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update workout"})
	}
	return c.JSON(workout)
}

// DeleteWorkout removes a workout recommendation.
func (s *WorkoutService) DeleteWorkout(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Workout{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete workout"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "workout not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
