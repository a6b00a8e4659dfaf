package swagger

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"webhookrepo/internal/env"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocJSONServesRegisteredDoc(t *testing.T) {
	env.VERSION = "7.7.7"

	app := fiber.New()
	Register(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))

	assert.Equal(t, "7.7.7", doc.Info.Version)
	assert.Contains(t, doc.Paths, "/webhook/receiver")
	assert.Contains(t, doc.Paths, "/api/events")
}

func TestApplyDocDefaultsKeepsInvalidJSON(t *testing.T) {
	assert.Equal(t, []byte("nope"), applyDocDefaults([]byte("nope")))
}
