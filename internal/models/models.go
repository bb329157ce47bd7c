// Package models defines the JSON data shapes exchanged over the Cinna API.
// The struct field tags (the backtick strings like `json:"..."`) tell the JSON
// encoder which key each field maps to — Go field names are CamelCase by
// convention, but the wire format uses snake_case to stay compatible with the
// TMDb-style payloads the mobile client already understands.
//
// None of these types carry behaviour: they are pure data. Handlers build them,
// the encoder serialises them, and nothing mutates them afterwards.
package models

// Movie is a single recommended title in the TMDb response shape.
// The fields mirror what TMDb's /movie endpoints return, so the frontend can
// render a movie card (poster, title, rating) without any translation layer.
type Movie struct {
	ID          int     `json:"id"`           // TMDb movie identifier
	Title       string  `json:"title"`        // Display title
	Overview    string  `json:"overview"`     // One-line plot summary
	ReleaseDate string  `json:"release_date"` // "YYYY-MM-DD"; kept as text because it's display-only
	PosterPath  string  `json:"poster_path"`  // Opaque TMDb image path, e.g. "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"
	VoteAverage float64 `json:"vote_average"` // TMDb average rating on a 0–10 scale
}

// RecommendationRequest is the JSON body we expect on POST /recommendations.
// genres is required. A nil slice after decoding means the field was missing
// (or explicitly null) — the handler rejects that with a 400. The values
// themselves are free-form: they are echoed back, never interpreted.
type RecommendationRequest struct {
	Genres []string `json:"genres"` // Required: the genres the user asked about, in their order
}

// RecommendationResponse is what POST /recommendations sends back.
// query echoes the request's genres verbatim so the client can correlate the
// answer with what it asked; response is the recommended movie list.
type RecommendationResponse struct {
	Query    []string `json:"query"`    // The request's genres, unmodified and in the same order
	Response []Movie  `json:"response"` // Recommended movies, in ranked order
}

// StatusResponse is the GET / liveness payload.
type StatusResponse struct {
	Status string `json:"status"`
}
