// Package catalog is the data layer of the Cinna backend.
// Until the GraphRAG retrieval pipeline is hooked up, the catalog is a fixed,
// in-memory list of movies defined at compile time — there is no database,
// no cache, and no external movie API behind it. Handlers call Movies() and
// get the same ranked list on every call.
//
// This package is the seam where a real retriever will eventually plug in:
// swapping the constant list for a graph query changes nothing in the handlers.
package catalog

import "github.com/cinna/cinna-graphrag/internal/models"

// recommended is the canonical recommendation list, in ranked order.
// The records use real TMDb ids and poster paths so the frontend renders
// exactly what it will render once live retrieval exists.
var recommended = []models.Movie{
	{
		ID:          1,
		Title:       "Inception",
		Overview:    "A thief enters dreams to steal secrets.",
		ReleaseDate: "2010-07-16",
		PosterPath:  "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		VoteAverage: 8.8,
	},
	{
		ID:          2,
		Title:       "Dune: Part Two",
		Overview:    "Paul unites with the Fremen against Harkonnen.",
		ReleaseDate: "2024-03-01",
		PosterPath:  "/1E5baAaEse26fej7uHcjOgEE2t2.jpg",
		VoteAverage: 8.6,
	},
	{
		ID:          3,
		Title:       "Interstellar",
		Overview:    "A crew travels through a wormhole for humanity.",
		ReleaseDate: "2014-11-07",
		PosterPath:  "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		VoteAverage: 8.7,
	},
}

// Movies returns the recommendation list in ranked order.
// It returns a fresh copy on every call so callers can't mutate the canonical
// records — the catalog must stay identical for the lifetime of the process.
func Movies() []models.Movie {
	out := make([]models.Movie, len(recommended))
	copy(out, recommended)
	return out
}
