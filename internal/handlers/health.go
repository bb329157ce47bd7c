// Package handlers contains the HTTP route handler functions for the Cinna API.
// Each handler corresponds to one endpoint and is responsible for reading the
// request, performing any logic, and writing the JSON response.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinna/cinna-graphrag/internal/models"
)

// statusMessage is the fixed GET / payload. The mobile client and the deploy
// smoke test both match on this exact string, so don't reword it casually.
const statusMessage = "Cinna GraphRAG backend is running!"

// Root handles GET /.
// It returns a fixed JSON status so load balancers, container health probes,
// and developers can verify the server is up. Intentionally lightweight: no
// lookups, no auth, no side effects.
func Root(c *fiber.Ctx) error {
	return c.JSON(models.StatusResponse{Status: statusMessage})
}
