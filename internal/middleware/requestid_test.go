package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRequestIDApp wires the middleware in front of a handler that reports the
// ID it saw in the request context, so tests can check both sides.
func newRequestIDApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen, _ = c.Locals(LocalsRequestID).(string)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	app := newRequestIDApp(&seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	id := resp.Header.Get(HeaderRequestID)
	require.NotEmpty(t, id)

	// The generated ID must be a well-formed UUID and must match what the
	// downstream handler saw in c.Locals.
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestRequestIDPassthrough(t *testing.T) {
	var seen string
	app := newRequestIDApp(&seen)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "upstream-id-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// A client-supplied ID is kept, not replaced.
	assert.Equal(t, "upstream-id-42", resp.Header.Get(HeaderRequestID))
	assert.Equal(t, "upstream-id-42", seen)
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	var seen string
	app := newRequestIDApp(&seen)

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		resp.Body.Close()
		ids[resp.Header.Get(HeaderRequestID)] = true
	}

	assert.Len(t, ids, 5)
}
