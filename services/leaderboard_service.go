package services

import (
	"errors"
	"time"

	"fitness-tracker-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

type createEntryRequest struct {
	UserID           string     `json:"user_id"`
	Username         string     `json:"username"`
	TotalPoints      int        `json:"total_points"`
	TotalActivities  int        `json:"total_activities"`
	TotalDuration    int        `json:"total_duration"`
	LastActivityDate *time.Time `json:"last_activity_date"`
}

type updateEntryRequest struct {
	Username         *string    `json:"username"`
	TotalPoints      *int       `json:"total_points"`
	TotalActivities  *int       `json:"total_activities"`
	TotalDuration    *int       `json:"total_duration"`
	LastActivityDate *time.Time `json:"last_activity_date"`
}

// CreateEntry adds a leaderboard entry. One entry per user — a second entry
// for the same user_id is a conflict.
func (s *LeaderboardService) CreateEntry(c *fiber.Ctx) error {
	var req createEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	entry := models.LeaderboardEntry{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		Username:         req.Username,
		TotalPoints:      req.TotalPoints,
		TotalActivities:  req.TotalActivities,
		TotalDuration:    req.TotalDuration,
		LastActivityDate: req.LastActivityDate,
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "leaderboard entry already exists for this user"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create entry"})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetLeaderboard lists all entries, highest points first.
func (s *LeaderboardService) GetLeaderboard(c *fiber.Ctx) error {
	entries := []models.LeaderboardEntry{}
	if err := s.DB.Order("total_points DESC, id ASC").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch leaderboard"})
	}
	return c.JSON(entries)
}

// GetTopEntries returns the top 10 entries by points.
func (s *LeaderboardService) GetTopEntries(c *fiber.Ctx) error {
	entries := []models.LeaderboardEntry{}
	if err := s.DB.Order("total_points DESC, id ASC").Limit(10).Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch leaderboard"})
	}
	return c.JSON(entries)
}

// GetEntryByID returns a single entry.
func (s *LeaderboardService) GetEntryByID(c *fiber.Ctx) error {
	var entry models.LeaderboardEntry
	if err := s.DB.First(&entry, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch entry"})
	}
	return c.JSON(entry)
}

// UpdateEntry applies the provided fields. Rank is not editable here — it is
// only assigned by a recompute pass.
func (s *LeaderboardService) UpdateEntry(c *fiber.Ctx) error {
	var entry models.LeaderboardEntry
	if err := s.DB.First(&entry, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch entry"})
	}

	var req updateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Username != nil {
		entry.Username = *req.Username
	}
	if req.TotalPoints != nil {
		entry.TotalPoints = *req.TotalPoints
	}
	if req.TotalActivities != nil {
		entry.TotalActivities = *req.TotalActivities
	}
	if req.TotalDuration != nil {
		entry.TotalDuration = *req.TotalDuration
	}
	if req.LastActivityDate != nil {
		entry.LastActivityDate = req.LastActivityDate
	}

	if err := s.DB.Save(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update entry"})
	}
	return c.JSON(entry)
}

// DeleteEntry removes a leaderboard entry.
func (s *LeaderboardService) DeleteEntry(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.LeaderboardEntry{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete entry"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateRankings recomputes and persists every entry's rank in one pass.
func (s *LeaderboardService) UpdateRankings(c *fiber.Ctx) error {
	ranked, err := RecomputeRankings(s.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update rankings"})
	}
	return c.JSON(fiber.Map{
		"message":        "rankings updated successfully",
		"entries_ranked": ranked,
	})
}
