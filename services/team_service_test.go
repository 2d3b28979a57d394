package services_test

import (
	"net/http"
	"testing"
	"time"

	"fitness-tracker-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTeam(t *testing.T, app *fiber.App, name string, memberIDs []string) models.Team {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teams", map[string]interface{}{
		"name":       name,
		"member_ids": memberIDs,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var team models.Team
	decodeBody(t, resp, &team)
	return team
}

func TestCreateTeamDedupesMemberIDs(t *testing.T) {
	app, _ := newTestApp(t)

	team := seedTeam(t, app, "Team Marvel", []string{"u1", "u2", "u1", "u2", "u3"})
	assert.ElementsMatch(t, []string{"u1", "u2", "u3"}, team.MemberIDs)
}

func TestCreateTeamRequiresName(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teams", map[string]interface{}{
		"description": "no name",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddMemberIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t)
	team := seedTeam(t, app, "Team DC", []string{"u1"})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teams/"+team.ID+"/add_member", map[string]interface{}{
			"user_id": "u2",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Team
		decodeBody(t, resp, &got)
		assert.ElementsMatch(t, []string{"u1", "u2"}, got.MemberIDs)
	}
}

func TestAddMemberRequiresUserID(t *testing.T) {
	app, _ := newTestApp(t)
	team := seedTeam(t, app, "Team Empty", nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teams/"+team.ID+"/add_member", map[string]interface{}{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemoveMemberAbsentIsNoOp(t *testing.T) {
	app, _ := newTestApp(t)
	team := seedTeam(t, app, "Team Solo", []string{"u1"})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teams/"+team.ID+"/remove_member", map[string]interface{}{
		"user_id": "not-a-member",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Team
	decodeBody(t, resp, &got)
	assert.ElementsMatch(t, []string{"u1"}, got.MemberIDs)
}

func TestRemoveMemberDeletesMembership(t *testing.T) {
	app, _ := newTestApp(t)
	team := seedTeam(t, app, "Team Duo", []string{"u1", "u2"})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teams/"+team.ID+"/remove_member", map[string]interface{}{
		"user_id": "u1",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Team
	decodeBody(t, resp, &got)
	assert.ElementsMatch(t, []string{"u2"}, got.MemberIDs)
}

func TestUpdateTeamReplacesMemberSet(t *testing.T) {
	app, _ := newTestApp(t)
	team := seedTeam(t, app, "Team Shift", []string{"u1", "u2"})

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/teams/"+team.ID, map[string]interface{}{
		"member_ids": []string{"u3"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Team
	decodeBody(t, resp, &got)
	assert.ElementsMatch(t, []string{"u3"}, got.MemberIDs)
	assert.Equal(t, "Team Shift", got.Name, "omitted fields are untouched")
}

func TestDeleteTeamKeepsUsers(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "survivor")
	team := seedTeam(t, app, "Team Doomed", []string{user.ID})

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/teams/"+team.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var remaining int64
	require.NoError(t, db.Model(&models.TeamMember{}).Where("team_id = ?", team.ID).Count(&remaining).Error)
	assert.Zero(t, remaining, "membership rows go with the team")

	var stillThere models.User
	assert.NoError(t, db.First(&stillThere, "id = ?", user.ID).Error)
}

func TestTeamStatsEndpointSumsMembers(t *testing.T) {
	app, db := newTestApp(t)
	a := seedUser(t, db, "stat-a")
	b := seedUser(t, db, "stat-b")
	outsider := seedUser(t, db, "stat-outsider")

	for _, act := range []models.Activity{
		{ID: uuid.NewString(), UserID: a.ID, ActivityType: "running", Duration: 30, Calories: 200, Points: 50, Date: time.Now()},
		{ID: uuid.NewString(), UserID: b.ID, ActivityType: "cycling", Duration: 60, Calories: 400, Points: 70, Date: time.Now()},
		{ID: uuid.NewString(), UserID: outsider.ID, ActivityType: "yoga", Duration: 45, Calories: 100, Points: 20, Date: time.Now()},
	} {
		require.NoError(t, db.Create(&act).Error)
	}

	team := seedTeam(t, app, "Team Stats", []string{a.ID, b.ID})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/teams/"+team.ID+"/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.EqualValues(t, 2, body["total_members"])
	assert.EqualValues(t, 2, body["total_activities"])
	assert.EqualValues(t, 120, body["total_points"])
	assert.EqualValues(t, 90, body["total_duration"])
}

func TestTeamNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/teams/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
