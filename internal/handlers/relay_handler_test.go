package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite/dto"
	"labsite/internal/imagehost"
	"labsite/model"
)

// ----- fakes -----

type fakeHost struct {
	uploads    int
	deletedURL string
	uploadErr  error
	deleteErr  error
}

func (f *fakeHost) Upload(ctx context.Context, name string, data []byte) (*imagehost.Image, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &imagehost.Image{
		URL:        "https://i.ibb.co/abc123/" + name,
		DisplayURL: "https://i.ibb.co/abc123/" + name,
		Size:       int64(len(data)),
	}, nil
}

func (f *fakeHost) DeleteByURL(ctx context.Context, imageURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedURL = imageURL
	return nil
}

type fakeTeams struct {
	added   []model.TeamMember
	patched map[string]dto.TeamPatch
	err     error
}

func (f *fakeTeams) GetAll(ctx context.Context) ([]model.TeamMember, error) { return nil, nil }

func (f *fakeTeams) Add(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	m.ID = "t1"
	f.added = append(f.added, m)
	return m, nil
}

func (f *fakeTeams) Update(ctx context.Context, id string, patch dto.TeamPatch) error {
	if f.err != nil {
		return f.err
	}
	if f.patched == nil {
		f.patched = map[string]dto.TeamPatch{}
	}
	f.patched[id] = patch
	return nil
}

func (f *fakeTeams) Delete(ctx context.Context, id string) error { return nil }

type fakeResearch struct {
	patched map[string]dto.ResearchPatch
}

func (f *fakeResearch) GetAll(ctx context.Context) ([]model.ResearchProject, error) {
	return nil, nil
}

func (f *fakeResearch) Add(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	return p, nil
}

func (f *fakeResearch) Update(ctx context.Context, id string, patch dto.ResearchPatch) error {
	if f.patched == nil {
		f.patched = map[string]dto.ResearchPatch{}
	}
	f.patched[id] = patch
	return nil
}

func (f *fakeResearch) Delete(ctx context.Context, id string) error { return nil }

func multipartFile(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// ----- tests -----

func TestUploadNoFile(t *testing.T) {
	host := &fakeHost{}
	app := fiber.New()
	app.Post("/api/upload", UploadHandler(host, t.TempDir()))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "No file uploaded", out.Error)
	assert.Equal(t, 0, host.uploads)
}

func TestUploadSuccessCleansTempFile(t *testing.T) {
	host := &fakeHost{}
	dir := t.TempDir()
	app := fiber.New()
	app.Post("/api/upload", UploadHandler(host, dir))

	body, contentType := multipartFile(t, "file", "cat.jpg", "image-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	require.NotNil(t, out.Data)
	assert.Equal(t, "https://i.ibb.co/abc123/cat.jpg", out.Data.URL)
	assert.Equal(t, 1, host.uploads)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be removed after relay")
}

func TestUploadHostFailureStillCleansUp(t *testing.T) {
	host := &fakeHost{uploadErr: errors.New("imgbb unavailable")}
	dir := t.TempDir()
	app := fiber.New()
	app.Post("/api/upload", UploadHandler(host, dir))

	body, contentType := multipartFile(t, "file", "cat.jpg", "image-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "imgbb unavailable")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteImageMissingFields(t *testing.T) {
	host := &fakeHost{}
	teams := &fakeTeams{}
	app := fiber.New()
	app.Delete("/api/delete-image", DeleteImageHandler(host, teams, &fakeResearch{}))

	req := httptest.NewRequest(http.MethodDelete, "/api/delete-image",
		strings.NewReader(`{"imageUrl": "https://host/a.jpg"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.DeleteImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Image URL and ID are required", out.Error)
	assert.Empty(t, host.deletedURL)
	assert.Empty(t, teams.patched)
}

func TestDeleteImageBlanksTeamImage(t *testing.T) {
	host := &fakeHost{}
	teams := &fakeTeams{}
	app := fiber.New()
	app.Delete("/api/delete-image", DeleteImageHandler(host, teams, &fakeResearch{}))

	req := httptest.NewRequest(http.MethodDelete, "/api/delete-image",
		strings.NewReader(`{"imageUrl": "https://host/a.jpg", "teamId": "t1"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.DeleteImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "Image deleted successfully", out.Message)

	assert.Equal(t, "https://host/a.jpg", host.deletedURL)
	patch, ok := teams.patched["t1"]
	require.True(t, ok)
	require.NotNil(t, patch.ImageURL)
	assert.Equal(t, "", *patch.ImageURL)
}

func TestDeleteImageResearchType(t *testing.T) {
	host := &fakeHost{}
	research := &fakeResearch{}
	app := fiber.New()
	app.Delete("/api/delete-image", DeleteImageHandler(host, &fakeTeams{}, research))

	req := httptest.NewRequest(http.MethodDelete, "/api/delete-image",
		strings.NewReader(`{"imageUrl": "https://host/a.jpg", "teamId": "r1", "type": "research"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	patch, ok := research.patched["r1"]
	require.True(t, ok)
	require.NotNil(t, patch.ImageURL)
	assert.Equal(t, "", *patch.ImageURL)
}

func TestDeleteImageHostFailureSkipsDBWrite(t *testing.T) {
	host := &fakeHost{deleteErr: errors.New("gone")}
	teams := &fakeTeams{}
	app := fiber.New()
	app.Delete("/api/delete-image", DeleteImageHandler(host, teams, &fakeResearch{}))

	req := httptest.NewRequest(http.MethodDelete, "/api/delete-image",
		strings.NewReader(`{"imageUrl": "https://host/a.jpg", "teamId": "t1"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.DeleteImageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Failed to delete image from ImgBB", out.Error)
	assert.Empty(t, teams.patched)
}
