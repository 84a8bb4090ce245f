package model

import (
	"strconv"

	"github.com/samber/lo"
)

// SearchResult is a movie as returned by the search endpoint. Favorites share this shape.
type SearchResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

// Year returns the release year, or 0 when the release date is unknown
func (sr SearchResult) Year() int {
	if len(sr.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(sr.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// SearchPage is one page of search results
type SearchPage struct {
	Page       int            `json:"page"`
	Results    []SearchResult `json:"results"`
	TotalPages int            `json:"total_pages"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the core movie record merged with its credits
type MovieDetail struct {
	SearchResult
	Tagline             string    `json:"tagline,omitempty"`
	Runtime             int       `json:"runtime"`
	Genres              []Genre   `json:"genres"`
	ProductionCompanies []Company `json:"production_companies"`
	ProductionCountries []string  `json:"production_countries"`
	Credits             Credits   `json:"credits"`
}

// Summary returns the search-result shaped part of the detail, as stored in favorites
func (md MovieDetail) Summary() SearchResult {
	return md.SearchResult
}

type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits holds the cast and crew roster of a movie
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Directors returns the crew members whose job is Director
func (c Credits) Directors() []CrewMember {
	return lo.Filter(c.Crew, func(member CrewMember, _ int) bool {
		return member.Job == "Director"
	})
}

// Writers returns the crew members of the Writing department, once per person
func (c Credits) Writers() []CrewMember {
	writers := lo.Filter(c.Crew, func(member CrewMember, _ int) bool {
		return member.Department == "Writing"
	})
	return lo.UniqBy(writers, func(member CrewMember) int64 {
		return member.ID
	})
}

// TopCast returns the first n cast members in billing order
func (c Credits) TopCast(n int) []CastMember {
	if n < 0 {
		n = 0
	}
	return lo.Subset(c.Cast, 0, uint(n))
}
