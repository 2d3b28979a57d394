package services

import (
	"errors"

	"fitness-tracker-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamService struct {
	DB    *gorm.DB
	Stats *StatsService
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db, Stats: NewStatsService(db)}
}

type createTeamRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CaptainID   string   `json:"captain_id"`
	MemberIDs   []string `json:"member_ids"`
}

type updateTeamRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	CaptainID   *string   `json:"captain_id"`
	MemberIDs   *[]string `json:"member_ids"`
}

type memberRequest struct {
	UserID string `json:"user_id"`
}

// CreateTeam creates a team and its initial membership set. Duplicate ids in
// member_ids collapse into one membership row.
func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	var req createTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	team := models.Team{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CaptainID:   req.CaptainID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return insertMembers(tx, team.ID, req.MemberIDs)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create team"})
	}

	return c.Status(fiber.StatusCreated).JSON(s.withMembers(&team))
}

// GetAllTeams returns every team with its membership set.
func (s *TeamService) GetAllTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := s.DB.Preload("Members").Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch teams"})
	}
	for i := range teams {
		teams[i].FillMemberIDs()
	}
	return c.JSON(teams)
}

// GetTeamByID returns a single team with its membership set.
func (s *TeamService) GetTeamByID(c *fiber.Ctx) error {
	team, err := s.findTeam(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}
	return c.JSON(team)
}

// UpdateTeam applies the provided fields. A member_ids value replaces the
// whole membership set; omitting it leaves the set untouched.
func (s *TeamService) UpdateTeam(c *fiber.Ctx) error {
	team, err := s.findTeam(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}

	var req updateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.CaptainID != nil {
		team.CaptainID = *req.CaptainID
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Save(team).Error; err != nil {
			return err
		}
		if req.MemberIDs != nil {
			if err := tx.Delete(&models.TeamMember{}, "team_id = ?", team.ID).Error; err != nil {
				return err
			}
			if err := insertMembers(tx, team.ID, *req.MemberIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update team"})
	}

	team, err = s.findTeam(team.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}
	return c.JSON(team)
}

// DeleteTeam removes a team and its membership rows. Member users are not
// touched.
func (s *TeamService) DeleteTeam(c *fiber.Ctx) error {
	id := c.Params("id")

	var deleted int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Team{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Delete(&models.TeamMember{}, "team_id = ?", id).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete team"})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMember adds a user to the team. The insert is a single
// ON CONFLICT DO NOTHING statement against the membership set, so concurrent
// adds of the same user cannot produce a duplicate and a repeat add is a
// no-op. The user id is not checked against the users table.
func (s *TeamService) AddMember(c *fiber.Ctx) error {
	team, err := s.findTeam(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	member := models.TeamMember{TeamID: team.ID, UserID: req.UserID}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to add member"})
	}

	team, err = s.findTeam(team.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}
	return c.JSON(team)
}

// RemoveMember removes a user from the team. Removing a user who is not a
// member is a no-op.
func (s *TeamService) RemoveMember(c *fiber.Ctx) error {
	team, err := s.findTeam(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	err = s.DB.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", team.ID, req.UserID).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to remove member"})
	}

	team, err = s.findTeam(team.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}
	return c.JSON(team)
}

// GetTeamStats returns summed activity counters across the team's members.
func (s *TeamService) GetTeamStats(c *fiber.Ctx) error {
	team, err := s.findTeam(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}

	stats, err := s.Stats.TeamStats(team.MemberIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute stats"})
	}
	return c.JSON(stats)
}

func (s *TeamService) findTeam(id string) (*models.Team, error) {
	var team models.Team
	if err := s.DB.Preload("Members").First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	team.FillMemberIDs()
	return &team, nil
}

func (s *TeamService) withMembers(team *models.Team) *models.Team {
	loaded, err := s.findTeam(team.ID)
	if err != nil {
		team.FillMemberIDs()
		return team
	}
	return loaded
}

func insertMembers(tx *gorm.DB, teamID string, userIDs []string) error {
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		m := models.TeamMember{TeamID: teamID, UserID: id}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
			return err
		}
	}
	return nil
}
