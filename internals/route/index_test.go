package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	refService "tahfidz_backend/internals/features/quran/reference/service"
	targetService "tahfidz_backend/internals/features/quran/targets/service"
	helper "tahfidz_backend/internals/helpers"
)

func newApp(t *testing.T, pinger func() error) *fiber.App {
	t.Helper()
	idx := refService.MustNewIndex()
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupRoutes(app, Deps{
		Index:     idx,
		Planner:   targetService.NewPlanner(idx),
		JWTSecret: "rahasia",
		Pinger:    pinger,
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestSetupRoutes_Public(t *testing.T) {
	app := newApp(t, func() error { return nil })

	resp := get(t, app, "/api/public/quran/surahs/2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/public/quran/juz/30")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/public/quran/targets/plan?juz=30")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSetupRoutes_UserNeedsToken(t *testing.T) {
	app := newApp(t, nil)

	for _, path := range []string{"/api/u/quran/targets", "/api/u/quran/memorizations", "/api/u/quran/targets/plan?juz=1"} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestHealth_NoDatabase(t *testing.T) {
	app := newApp(t, nil)

	resp := get(t, app, "/health")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DOWN", body["status"])
}
