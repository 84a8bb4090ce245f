package business

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Agurato/cinebusca/internal/model"
)

// DetailLoader fetches a movie and its credits and merges them
type DetailLoader struct {
	MovieDetailGetter
}

func NewDetailLoader(mdg MovieDetailGetter) *DetailLoader {
	return &DetailLoader{
		MovieDetailGetter: mdg,
	}
}

// LoadDetails returns the movie with its credits. Both fetches must succeed.
func (dl DetailLoader) LoadDetails(id int64) (*model.MovieDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid movie ID %d", model.ErrDetailsFailed, id)
	}

	var (
		details *model.MovieDetail
		credits *model.Credits
		g       errgroup.Group
	)
	g.Go(func() (err error) {
		details, err = dl.MovieDetailGetter.GetMovieDetails(id)
		return err
	})
	g.Go(func() (err error) {
		credits, err = dl.MovieDetailGetter.GetMovieCredits(id)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Int64("tmdbID", id).Msg("Could not load movie details")
		return nil, fmt.Errorf("%w: %w", model.ErrDetailsFailed, err)
	}

	merged := *details
	merged.Credits = *credits
	return &merged, nil
}
