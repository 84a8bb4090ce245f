package business

import "github.com/Agurato/cinebusca/internal/model"

//go:generate mockgen -source=interfaces.go -destination=mocks/metadata.go -package=mocks

type MovieSearcher interface {
	SearchMovies(query string, page int) (*model.SearchPage, error)
}

type MovieDetailGetter interface {
	GetMovieDetails(id int64) (*model.MovieDetail, error)
	GetMovieCredits(id int64) (*model.Credits, error)
}
