// Package middleware contains HTTP middleware functions for the Cinna API.
// Middleware sits between the HTTP server and route handlers — it runs on
// every request that passes through it, making it the right place for
// cross-cutting concerns like request tracing and metrics.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	// uuid generates the random identifiers used to tag each request.
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request identifier, both inbound
// (a client or upstream proxy may already have assigned one) and outbound.
const HeaderRequestID = "X-Request-ID"

// LocalsRequestID is the c.Locals key under which the request ID is stored so
// downstream handlers and log statements can read it without re-parsing headers.
const LocalsRequestID = "requestID"

// RequestID returns a middleware handler that ensures every request has a
// unique identifier. If the client already sent an X-Request-ID header (for
// example from an upstream gateway), that value is kept so traces stay joined
// across services; otherwise a fresh UUID is generated. The ID is stored in
// the request context and echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}
