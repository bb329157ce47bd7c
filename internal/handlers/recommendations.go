// Package handlers contains the HTTP route handler functions for the Cinna API.
// This file handles POST /recommendations — the endpoint the frontend calls
// with the genres a user picked.
//
// The eventual design is a GraphRAG pipeline: genres seed a graph traversal
// over a movie knowledge graph, and retrieved candidates are ranked before
// being returned. None of that exists yet. Today the handler validates the
// request, echoes the genres back as query, and returns the catalog's fixed
// list — a constant function over any valid input. The request/response
// contract is final, so the frontend integration doesn't have to change when
// real retrieval lands behind it.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinna/cinna-graphrag/internal/catalog"
	"github.com/cinna/cinna-graphrag/internal/models"
)

// Recommendations handles POST /recommendations.
//
// Request:  {"genres": ["horror", "comedy"]}   — genres required, may be empty
// Response: {"query": [...], "response": [Movie, ...]}
//
// The only failure mode is a bad body: unparseable JSON, a wrong-typed genres
// field, or a missing/null genres field all return 400 with an error envelope.
// Every structurally valid request succeeds.
func Recommendations(c *fiber.Ctx) error {
	// c.BodyParser reads the body and unmarshals JSON fields that match the
	// struct tags. It fails on syntactically invalid JSON and on type
	// mismatches (e.g. "genres": "horror" instead of a list).
	var req models.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	// A nil slice means genres was absent from the JSON (or explicitly null).
	// The field is required, so reject. An empty list ("genres": []) decodes
	// to a non-nil empty slice and is perfectly valid.
	if req.Genres == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "genres is required",
		})
	}

	return c.JSON(models.RecommendationResponse{
		Query:    req.Genres,
		Response: catalog.Movies(),
	})
}
