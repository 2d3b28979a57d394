package services

import (
	"errors"
	"path/filepath"

	"fitness-tracker-system/models"
	"fitness-tracker-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	DB    *gorm.DB
	Stats *StatsService
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, Stats: NewStatsService(db)}
}

type createUserRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	Age          int    `json:"age"`
	FitnessLevel string `json:"fitness_level"`
}

type updateUserRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	FullName     *string `json:"full_name"`
	Age          *int    `json:"age"`
	FitnessLevel *string `json:"fitness_level"`
}

// CreateUser registers a new user. Username and email are unique across all
// users; the password is accepted here but never serialized back.
func (s *UserService) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username, email, and password are required"})
	}
	if req.Age < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "age must be non-negative"})
	}
	if req.FitnessLevel == "" {
		req.FitnessLevel = "beginner"
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Age:          req.Age,
		FitnessLevel: req.FitnessLevel,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "username or email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetAllUsers returns every user.
func (s *UserService) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
	}
	return c.JSON(users)
}

// GetUserByID returns a single user.
func (s *UserService) GetUserByID(c *fiber.Ctx) error {
	user, err := s.findUser(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
	}
	return c.JSON(user)
}

// UpdateUser applies the provided fields to a user. Serves both PUT and
// PATCH — omitted fields keep their current value.
func (s *UserService) UpdateUser(c *fiber.Ctx) error {
	user, err := s.findUser(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Age != nil {
		if *req.Age < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "age must be non-negative"})
		}
		user.Age = *req.Age
	}
	if req.FitnessLevel != nil {
		user.FitnessLevel = *req.FitnessLevel
	}

	if err := s.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "username or email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user"})
	}

	return c.JSON(user)
}

// DeleteUser removes a user. Activities, team memberships and leaderboard
// entries are left in place — there is no cascading delete.
func (s *UserService) DeleteUser(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.User{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete user"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserActivities returns all activities owned by a user, newest first.
func (s *UserService) GetUserActivities(c *fiber.Ctx) error {
	user, err := s.findUser(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
	}

	activities := []models.Activity{}
	if err := s.DB.Where("user_id = ?", user.ID).Order("date DESC").Find(&activities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch activities"})
	}
	return c.JSON(activities)
}

// GetUserStats returns summed activity counters for a user. A user with no
// activities gets all-zero counters, never absent fields.
func (s *UserService) GetUserStats(c *fiber.Ctx) error {
	user, err := s.findUser(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
	}

	stats, err := s.Stats.UserStats(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute stats"})
	}
	return c.JSON(stats)
}

// UploadAvatar stores a user's avatar image and records its public URL.
// Images go to R2 when configured, otherwise to the local uploads dir.
func (s *UserService) UploadAvatar(c *fiber.Ctx) error {
	user, err := s.findUser(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
	}

	avatar, err := c.FormFile("avatar")
	if err != nil || avatar.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
	}
	if avatar.Size > 5*1024*1024 { // 5MB
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar too large (max 5MB)"})
	}

	ext := filepath.Ext(avatar.Filename)
	if ext == "" {
		ext = ".jpg"
	}

	var url string
	if utils.R2Enabled() {
		url, err = utils.UploadFileToR2(avatar, "avatars/"+uuid.NewString()+ext)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload avatar"})
		}
	} else {
		local := utils.GetUploadPath("avatars/" + uuid.NewString() + ext)
		if err := utils.SaveFile(avatar, local); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save avatar"})
		}
		url = "/" + filepath.ToSlash(local)
	}

	user.AvatarURL = url
	if err := s.DB.Save(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user"})
	}
	return c.JSON(user)
}

func (s *UserService) findUser(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
