package services_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-tracker-system/handlers"
	"fitness-tracker-system/models"
	"fitness-tracker-system/services"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the full schema.
// Connections are pinned to one so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Activity{},
		&models.LeaderboardEntry{},
		&models.Workout{},
	))
	return db
}

// newTestApp wires the full route surface against a fresh database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New()

	handlers.SetupRootRoutes(app)
	handlers.SetupUserRoutes(app, services.NewUserService(db))
	handlers.SetupTeamRoutes(app, services.NewTeamService(db))
	handlers.SetupActivityRoutes(app, services.NewActivityService(db))
	handlers.SetupLeaderboardRoutes(app, services.NewLeaderboardService(db))
	handlers.SetupWorkoutRoutes(app, services.NewWorkoutService(db))

	return app, db
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		Password:     "secret",
		FullName:     "Test " + username,
		Age:          30,
		FitnessLevel: "beginner",
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}
