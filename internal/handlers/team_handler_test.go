package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite/internal/repository"
	"labsite/model"
	"labsite/services"
)

type listingTeams struct {
	fakeTeams
	members []model.TeamMember
}

func (f *listingTeams) GetAll(ctx context.Context) ([]model.TeamMember, error) {
	return f.members, nil
}

type missingTeams struct{ fakeTeams }

func (f *missingTeams) Delete(ctx context.Context, id string) error {
	return repository.ErrNotFound
}

func TestListTeams(t *testing.T) {
	repo := &listingTeams{members: []model.TeamMember{
		{ID: "t1", Name: "Ann", Role: "Principal Investigator", RoleOrder: 1,
			Education: []string{}, ResearchInterests: []string{}, Awards: []string{}},
	}}
	app := fiber.New()
	app.Get("/api/teams", ListTeamsHandler(repo))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/teams", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []model.TeamMember
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "Ann", out[0].Name)
	assert.NotNil(t, out[0].Education, "list fields serialize as [] rather than null")
}

func TestCreateTeamFromMultipartForm(t *testing.T) {
	teams := &fakeTeams{}
	svc := &services.Submission{Teams: teams, Host: &fakeHost{}}
	app := fiber.New()
	app.Post("/api/teams", CreateTeamHandler(svc))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "Ann Lee"))
	require.NoError(t, w.WriteField("role", "PhD Student"))
	require.NoError(t, w.WriteField("education", "BSc Chemistry, MSc Chemistry"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/teams", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out model.TeamMember
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Ann Lee", out.Name)
	assert.Equal(t, 4, out.RoleOrder)
	assert.Equal(t, []string{"BSc Chemistry", "MSc Chemistry"}, out.Education)
	require.Len(t, teams.added, 1)
}

func TestDeleteTeamNotFound(t *testing.T) {
	app := fiber.New()
	app.Delete("/api/teams/:id", DeleteTeamHandler(&missingTeams{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/teams/deadbeef", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteTeamNoContent(t *testing.T) {
	app := fiber.New()
	app.Delete("/api/teams/:id", DeleteTeamHandler(&fakeTeams{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/teams/deadbeef", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
