package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Agurato/cinebusca/internal/model"
)

func TestSearchResultYear(t *testing.T) {
	assert.Equal(t, 1999, model.SearchResult{ReleaseDate: "1999-03-30"}.Year())
	assert.Equal(t, 0, model.SearchResult{}.Year())
	assert.Equal(t, 0, model.SearchResult{ReleaseDate: "n/a"}.Year())
}

func TestCredits(t *testing.T) {
	credits := model.Credits{
		Cast: []model.CastMember{
			{ID: 6384, Name: "Keanu Reeves", Character: "Neo"},
			{ID: 2975, Name: "Laurence Fishburne", Character: "Morpheus"},
			{ID: 530, Name: "Carrie-Anne Moss", Character: "Trinity"},
		},
		Crew: []model.CrewMember{
			{ID: 9339, Name: "Lilly Wachowski", Job: "Director", Department: "Directing"},
			{ID: 9340, Name: "Lana Wachowski", Job: "Director", Department: "Directing"},
			{ID: 9339, Name: "Lilly Wachowski", Job: "Writer", Department: "Writing"},
			{ID: 9339, Name: "Lilly Wachowski", Job: "Screenplay", Department: "Writing"},
			{ID: 1091, Name: "Joel Silver", Job: "Producer", Department: "Production"},
		},
	}

	t.Run("Directors", func(t *testing.T) {
		directors := credits.Directors()
		assert.Len(t, directors, 2)
		assert.Equal(t, "Lilly Wachowski", directors[0].Name)
		assert.Equal(t, "Lana Wachowski", directors[1].Name)
	})

	t.Run("Writers", func(t *testing.T) {
		writers := credits.Writers()
		assert.Len(t, writers, 1)
		assert.Equal(t, int64(9339), writers[0].ID)
	})

	t.Run("TopCast", func(t *testing.T) {
		assert.Len(t, credits.TopCast(2), 2)
		assert.Len(t, credits.TopCast(6), 3)
		assert.Empty(t, credits.TopCast(-1))
	})
}

func TestCursor(t *testing.T) {
	cursor := model.Cursor{Page: 1, TotalPages: 3}
	assert.False(t, cursor.Contains(0))
	assert.True(t, cursor.Contains(1))
	assert.True(t, cursor.Contains(3))
	assert.False(t, cursor.Contains(4))
	assert.False(t, cursor.HasPrevious())
	assert.True(t, cursor.HasNext())

	cursor.Page = 3
	assert.True(t, cursor.HasPrevious())
	assert.False(t, cursor.HasNext())

	assert.False(t, model.Cursor{}.Contains(1))
}
