package infrastructure

import (
	"fmt"
	"net/http"
	"strconv"

	tmdb "github.com/cyruzin/golang-tmdb"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/Agurato/cinebusca/internal/model"
)

const placeholderPath = "/static/img/placeholder.svg"

// DefaultLanguage is the language of search results and movie details
var DefaultLanguage = language.BrazilianPortuguese

type MetadataWrapper struct {
	client   *tmdb.Client
	language string
}

// MetadataOption configures a MetadataWrapper
type MetadataOption func(*MetadataWrapper)

// WithLanguage sets the language used for searches and details
func WithLanguage(tag language.Tag) MetadataOption {
	return func(mw *MetadataWrapper) {
		mw.language = tag.String()
	}
}

// WithHTTPClient sets the HTTP client used to reach TMDB
func WithHTTPClient(hc http.Client) MetadataOption {
	return func(mw *MetadataWrapper) {
		mw.client.SetClientConfig(hc)
	}
}

// NewMetadataWrapper initializes a MetadataWrapper
func NewMetadataWrapper(tmdbAPIKey string, opts ...MetadataOption) (*MetadataWrapper, error) {
	client, err := tmdb.Init(tmdbAPIKey)
	if err != nil {
		return nil, err
	}
	mw := &MetadataWrapper{
		client:   client,
		language: DefaultLanguage.String(),
	}
	for _, opt := range opts {
		opt(mw)
	}
	return mw, nil
}

// GetPosterLink returns the URL of a poster, or a placeholder image when there is none
func GetPosterLink(key string) string {
	if key == "" {
		return placeholderPath
	}
	return tmdb.GetImageURL(key, tmdb.W500)
}

// SearchMovies fetches one page of results for a query
func (mw MetadataWrapper) SearchMovies(query string, page int) (*model.SearchPage, error) {
	urlOptions := map[string]string{
		"page":     strconv.Itoa(page),
		"language": mw.language,
	}
	res, err := mw.client.GetSearchMovies(query, urlOptions)
	if err != nil {
		return nil, fmt.Errorf("could not search movies for '%s': %w", query, err)
	}

	searchPage := &model.SearchPage{
		Page:       int(res.Page),
		TotalPages: int(res.TotalPages),
		Results:    make([]model.SearchResult, 0, len(res.Results)),
	}
	for _, movie := range res.Results {
		searchPage.Results = append(searchPage.Results, model.SearchResult{
			ID:          int64(movie.ID),
			Title:       movie.Title,
			Overview:    movie.Overview,
			PosterPath:  movie.PosterPath,
			VoteAverage: float64(movie.VoteAverage),
			ReleaseDate: movie.ReleaseDate,
		})
	}
	log.Debug().Str("query", query).Int("page", page).Int("results", len(searchPage.Results)).Msg("Searched movies")
	return searchPage, nil
}

// GetMovieDetails fetches the core record of a movie
func (mw MetadataWrapper) GetMovieDetails(id int64) (*model.MovieDetail, error) {
	details, err := mw.client.GetMovieDetails(int(id), map[string]string{
		"language": mw.language,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get details of movie %d: %w", id, err)
	}

	return &model.MovieDetail{
		SearchResult: model.SearchResult{
			ID:          int64(details.ID),
			Title:       details.Title,
			Overview:    details.Overview,
			PosterPath:  details.PosterPath,
			VoteAverage: float64(details.VoteAverage),
			ReleaseDate: details.ReleaseDate,
		},
		Tagline:             details.Tagline,
		Runtime:             int(details.Runtime),
		Genres:              genres(details),
		ProductionCompanies: productionCompanies(details),
		ProductionCountries: productionCountries(details),
	}, nil
}

// GetMovieCredits fetches the cast and crew of a movie
func (mw MetadataWrapper) GetMovieCredits(id int64) (*model.Credits, error) {
	credits, err := mw.client.GetMovieCredits(int(id), nil)
	if err != nil {
		return nil, fmt.Errorf("could not get credits of movie %d: %w", id, err)
	}

	roster := &model.Credits{
		Cast: make([]model.CastMember, 0, len(credits.Cast)),
		Crew: make([]model.CrewMember, 0, len(credits.Crew)),
	}
	for _, cast := range credits.Cast {
		roster.Cast = append(roster.Cast, model.CastMember{
			ID:        int64(cast.ID),
			Name:      cast.Name,
			Character: cast.Character,
			Order:     int(cast.Order),
		})
	}
	for _, crew := range credits.Crew {
		roster.Crew = append(roster.Crew, model.CrewMember{
			ID:         int64(crew.ID),
			Name:       crew.Name,
			Job:        crew.Job,
			Department: crew.Department,
		})
	}
	return roster, nil
}

func genres(details *tmdb.MovieDetails) []model.Genre {
	genres := make([]model.Genre, 0, len(details.Genres))
	for _, genre := range details.Genres {
		genres = append(genres, model.Genre{ID: int64(genre.ID), Name: genre.Name})
	}
	return genres
}

func productionCompanies(details *tmdb.MovieDetails) []model.Company {
	companies := make([]model.Company, 0, len(details.ProductionCompanies))
	for _, company := range details.ProductionCompanies {
		companies = append(companies, model.Company{ID: int64(company.ID), Name: company.Name})
	}
	return companies
}

func productionCountries(details *tmdb.MovieDetails) []string {
	countries := make([]string, 0, len(details.ProductionCountries))
	for _, country := range details.ProductionCountries {
		countries = append(countries, country.Iso3166_1)
	}
	return countries
}
