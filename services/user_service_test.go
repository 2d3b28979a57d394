package services_test

import (
	"net/http"
	"testing"

	"fitness-tracker-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHidesPassword(t *testing.T) {
	app, _ := newTestApp(t)

	req := jsonRequest(t, http.MethodPost, "/users", map[string]interface{}{
		"username":  "ironman",
		"email":     "ironman@marvel.com",
		"password":  "jarvis",
		"full_name": "Tony Stark",
		"age":       45,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "ironman", body["username"])
	assert.Equal(t, "beginner", body["fitness_level"], "fitness level should default")
	_, hasPassword := body["password"]
	assert.False(t, hasPassword, "password must never be serialized")
}

func TestCreateUserValidatesRequiredFields(t *testing.T) {
	app, _ := newTestApp(t)

	req := jsonRequest(t, http.MethodPost, "/users", map[string]interface{}{
		"username": "nopassword",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "existing")

	req := jsonRequest(t, http.MethodPost, "/users", map[string]interface{}{
		"username": "someoneelse",
		"email":    "existing@example.com",
		"password": "pw",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetUserNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/users/missing-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatchUserUpdatesOnlyProvidedFields(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "patchme")

	req := jsonRequest(t, http.MethodPatch, "/users/"+user.ID, map[string]interface{}{
		"fitness_level": "advanced",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "advanced", updated.FitnessLevel)
	assert.Equal(t, user.Username, updated.Username, "unrelated fields keep their value")
	assert.Equal(t, user.Email, updated.Email)
}

func TestDeleteUserThenGone(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "deleteme")

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/users/"+user.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/users/"+user.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserStatsEndpointZeroCounters(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "idle")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/users/"+user.ID+"/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	// All four counters must be present and zero, never absent.
	for _, key := range []string{"total_activities", "total_points", "total_duration", "total_calories"} {
		v, ok := body[key]
		require.True(t, ok, "missing %s", key)
		assert.EqualValues(t, 0, v)
	}
}

func TestUserActivitiesEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "mover")
	other := seedUser(t, db, "bystander")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/activities", map[string]interface{}{
		"user_id":       user.ID,
		"activity_type": "running",
		"duration":      30,
		"calories":      250,
		"points":        40,
		"date":          "2026-08-20T07:30:00Z",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/users/"+user.ID+"/activities", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var activities []models.Activity
	decodeBody(t, resp, &activities)
	require.Len(t, activities, 1)
	assert.Equal(t, user.ID, activities[0].UserID)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/users/"+other.ID+"/activities", nil))
	require.NoError(t, err)
	var none []models.Activity
	decodeBody(t, resp, &none)
	assert.Empty(t, none)
}
