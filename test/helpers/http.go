// Package helpers drives the Fiber app in handler tests.
package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"webhookrepo/internal/errmsg"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

// RequestRunner sends one request through app.Test and returns the body and status.
func RequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	headers map[string]string,
	config ...fiber.TestConfig,
) (bodyBytes []byte, statusCode int) {
	t.Helper()

	config = append(config, fiber.TestConfig{Timeout: 10 * time.Second})
	req, err := http.NewRequest(
		method,
		path,
		bytes.NewBuffer(sendBytes),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := app.Test(req, config[0])
	require.NoError(t, err)
	defer res.Body.Close()

	statusCode = res.StatusCode

	bodyBytes, err = io.ReadAll(res.Body)
	require.NoError(t, err)

	return
}

// ResponseErrorCheck asserts the response carries serr as {"error": ...}.
func ResponseErrorCheck(
	t *testing.T,
	serr errmsg.StatusError,
	bodyBytes []byte,
	statusCode int,
) {
	t.Helper()

	require.Equal(t, serr.StatusCode, statusCode)

	var body struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal(bodyBytes, &body)
	require.NoError(t, err)

	require.Equal(t, serr.Message, body.Error)
}

// MustJSON encodes payload and fails the test on serialization errors.
func MustJSON(t *testing.T, payload any) []byte {
	t.Helper()

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)

	return encoded
}
