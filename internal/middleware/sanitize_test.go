package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEchoApp returns the body the handler saw after sanitizing.
func newEchoApp() *fiber.App {
	app := fiber.New()
	app.All("/echo", SanitizeJSON(), func(c *fiber.Ctx) error {
		return c.Send(c.Body())
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestSanitizeJSONCleansStrings(t *testing.T) {
	app := newEchoApp()

	status, raw := send(t, app, http.MethodPost, `{
		"title": "<b>Rock & Roll</b>",
		"storeName": "Ann's Prints & Co",
		"bio": "<script>alert(1)</script>Oils & ink",
		"price": 120.50,
		"dimensions": {"note": "<i>50 x 70</i> \"framed\""},
		"image": ["https://cdn.example.com/a.jpg?w=1&h=2", "<b>kept</b>"]
	}`)
	require.Equal(t, http.StatusOK, status)

	var got struct {
		Title      string            `json:"title"`
		StoreName  string            `json:"storeName"`
		Bio        string            `json:"bio"`
		Price      json.Number       `json:"price"`
		Dimensions map[string]string `json:"dimensions"`
		Image      []string          `json:"image"`
	}
	require.NoError(t, json.Unmarshal(raw, &got), string(raw))

	assert.Equal(t, "Rock & Roll", got.Title)
	assert.Equal(t, "Ann's Prints & Co", got.StoreName)
	assert.Equal(t, "Oils & ink", got.Bio)
	assert.Equal(t, "120.50", got.Price.String())
	assert.Equal(t, `50 x 70 "framed"`, got.Dimensions["note"])
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg?w=1&h=2", "<b>kept</b>"}, got.Image)
}

func TestSanitizeJSONRejectsMalformedBody(t *testing.T) {
	status, raw := send(t, newEchoApp(), http.MethodPatch, `{"title": "unterminated`)
	assert.Equal(t, http.StatusBadRequest, status)

	var env dto.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.CodeValidation, env.Error.Code)
}

func TestSanitizeJSONSkipsReadsAndEmptyBodies(t *testing.T) {
	app := newEchoApp()

	status, raw := send(t, app, http.MethodDelete, `<b>not json</b>`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `<b>not json</b>`, string(raw))

	status, raw = send(t, app, http.MethodPut, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, raw)
}
