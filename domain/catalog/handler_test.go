package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-platform/pkg/logger"
)

func get(t *testing.T, path string) CatalogResponse {
	t.Helper()
	h := NewHandler(logger.Get())

	e := echo.New()
	e.GET("/api/external/services", h.Services)
	e.GET("/api/external/clients", h.Clients)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestServices(t *testing.T) {
	resp := get(t, "/api/external/services")

	assert.True(t, resp.Success)
	assert.Equal(t, 12, resp.DataCount)
	assert.Equal(t, "mimprofile.e-mim.in", resp.Source)

	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 12)

	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Omni Channel Solutions", first["title"])
	assert.NotEmpty(t, first["features"])
}

func TestClients(t *testing.T) {
	resp := get(t, "/api/external/clients")

	assert.True(t, resp.Success)
	assert.Equal(t, len(clientLogoFiles), resp.DataCount)

	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, items)

	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1679639493487", first["name"])
	assert.Equal(t, logoBase+"1679639493487.jpg", first["logo_url"])
}

func TestClientName(t *testing.T) {
	cases := map[string]string{
		"HomeLand-Realty-logo.webp":    "Homeland Realty Logo",
		"nestleWaters.jpg":             "Nestlewaters",
		"Untitled-10.png":              "Untitled 10",
		"esnaad_developments_logo.jpg": "Esnaad Developments Logo",
		"bmw.jpg":                      "Bmw",
	}
	for in, want := range cases {
		assert.Equal(t, want, clientName(in), in)
	}
}
