package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/cinebusca/internal/model"
)

func TestPrintSearch(t *testing.T) {
	var buf bytes.Buffer
	printSearch(&buf, model.SearchState{
		Query:  "Matrix",
		Cursor: model.Cursor{Page: 1, TotalPages: 2},
		Results: []model.SearchResult{
			{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", VoteAverage: 8.2},
			{ID: 1, Title: strings.Repeat("a", 50)},
		},
	})

	out := buf.String()
	assert.Contains(t, out, `Movies for "Matrix" (page 1/2)`)
	assert.Contains(t, out, "     603 │ The Matrix")
	assert.Contains(t, out, "│ 1999 │  8.2")
	assert.Contains(t, out, strings.Repeat("a", 39)+"...")
	assert.Contains(t, out, "Next page: --page 2")
}

func TestPrintSearch_NoResults(t *testing.T) {
	var buf bytes.Buffer
	printSearch(&buf, model.SearchState{Query: "zzzz", Results: []model.SearchResult{}})
	assert.Equal(t, "No movies found for \"zzzz\"\n", buf.String())
}

func TestPrintDetails(t *testing.T) {
	var buf bytes.Buffer
	printDetails(&buf, &model.MovieDetail{
		SearchResult: model.SearchResult{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", VoteAverage: 8.2},
		Runtime:      136,
		Genres:       []model.Genre{{ID: 28, Name: "Ação"}},
		Credits: model.Credits{
			Cast: []model.CastMember{{Name: "Keanu Reeves", Character: "Neo"}},
			Crew: []model.CrewMember{{Name: "Lana Wachowski", Job: "Director", Department: "Directing"}},
		},
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "The Matrix (1999)", lines[0])
	out := buf.String()
	assert.Contains(t, out, "Rating:    8.2")
	assert.Contains(t, out, "Runtime:   136 min")
	assert.Contains(t, out, "Genres:    Ação")
	assert.Contains(t, out, "Directors: Lana Wachowski")
	assert.Contains(t, out, "Cast:      Keanu Reeves (Neo)")
	assert.Contains(t, out, "Poster:    /static/img/placeholder.svg")
	assert.NotContains(t, out, "Writers:")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "cinebusca dev\n", buf.String())
}
