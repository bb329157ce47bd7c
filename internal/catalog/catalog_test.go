package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoviesFixedOrder(t *testing.T) {
	movies := Movies()

	require.Len(t, movies, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{movies[0].ID, movies[1].ID, movies[2].ID})
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, "Dune: Part Two", movies[1].Title)
	assert.Equal(t, "Interstellar", movies[2].Title)
}

func TestMoviesIdenticalAcrossCalls(t *testing.T) {
	assert.Equal(t, Movies(), Movies())
}

// Movies hands out copies: mutating a returned slice must not leak into the
// canonical catalog.
func TestMoviesReturnsCopy(t *testing.T) {
	first := Movies()
	first[0].Title = "Tampered"
	first[0].VoteAverage = 0

	second := Movies()
	assert.Equal(t, "Inception", second[0].Title)
	assert.InDelta(t, 8.8, second[0].VoteAverage, 0.001)
}
