package services

import (
	"errors"
	"time"

	"fitness-tracker-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

type createActivityRequest struct {
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Duration     int       `json:"duration"`
	Distance     *float64  `json:"distance"`
	Calories     int       `json:"calories"`
	Points       int       `json:"points"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes"`
}

type updateActivityRequest struct {
	ActivityType *string    `json:"activity_type"`
	Duration     *int       `json:"duration"`
	Distance     *float64   `json:"distance"`
	Calories     *int       `json:"calories"`
	Points       *int       `json:"points"`
	Date         *time.Time `json:"date"`
	Notes        *string    `json:"notes"`
}

// CreateActivity records a workout session. Points arrive pre-computed from
// the recording client.
func (s *ActivityService) CreateActivity(c *fiber.Ctx) error {
	var req createActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body (date must be RFC3339)"})
	}
	if req.UserID == "" || req.ActivityType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id and activity_type are required"})
	}
	if req.Duration < 0 || req.Calories < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration and calories must be non-negative"})
	}
	if req.Distance != nil && *req.Distance < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "distance must be non-negative"})
	}
	if req.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}

	activity := models.Activity{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		ActivityType: req.ActivityType,
		Duration:     req.Duration,
		Distance:     req.Distance,
		Calories:     req.Calories,
		Points:       req.Points,
		Date:         req.Date,
		Notes:        req.Notes,
	}

	if err := s.DB.Create(&activity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create activity"})
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

// GetAllActivities lists activities newest first, optionally filtered by
// ?user_id=.
func (s *ActivityService) GetAllActivities(c *fiber.Ctx) error {
	db := s.DB.Order("date DESC")
	if userID := c.Query("user_id"); userID != "" {
		db = db.Where("user_id = ?", userID)
	}

	activities := []models.Activity{}
	if err := db.Find(&activities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch activities"})
	}
	return c.JSON(activities)
}

// GetRecentActivities returns the 10 most recent activities across all users.
func (s *ActivityService) GetRecentActivities(c *fiber.Ctx) error {
	activities := []models.Activity{}
	if err := s.DB.Order("date DESC").Limit(10).Find(&activities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch activities"})
	}
	return c.JSON(activities)
}

// GetActivityByID returns a single activity.
func (s *ActivityService) GetActivityByID(c *fiber.Ctx) error {
	var activity models.Activity
	if err := s.DB.First(&activity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch activity"})
	}
	return c.JSON(activity)
}

// UpdateActivity applies the provided fields. The owning user cannot be
// reassigned.
func (s *ActivityService) UpdateActivity(c *fiber.Ctx) error {
	var activity models.Activity
	if err := s.DB.First(&activity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch activity"})
	}

	var req updateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.ActivityType != nil {
		activity.ActivityType = *req.ActivityType
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration must be non-negative"})
		}
		activity.Duration = *req.Duration
	}
	if req.Distance != nil {
		if *req.Distance < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "distance must be non-negative"})
		}
		activity.Distance = req.Distance
	}
	if req.Calories != nil {
		if *req.Calories < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "calories must be non-negative"})
		}
		activity.Calories = *req.Calories
	}
	if req.Points != nil {
		activity.Points = *req.Points
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	if err := s.DB.Save(&activity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update activity"})
	}
	return c.JSON(activity)
}

// DeleteActivity removes an activity. Leaderboard totals catch up on the
// next sync pass.
func (s *ActivityService) DeleteActivity(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Activity{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete activity"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
