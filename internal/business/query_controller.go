package business

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Agurato/cinebusca/internal/model"
)

// QueryController owns the search text, the results and the pagination cursor
type QueryController struct {
	MovieSearcher
	state *model.SearchState
}

func NewQueryController(ms MovieSearcher, state *model.SearchState) *QueryController {
	return &QueryController{
		MovieSearcher: ms,
		state:         state,
	}
}

// State returns the search state the controller works on
func (qc QueryController) State() model.SearchState {
	return *qc.state
}

// Search fetches a page of results for query.
// On failure, or when page is past the last page of the query, the previous results and cursor are kept.
func (qc *QueryController) Search(query string, page int) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.ErrEmptyQuery
	}
	if page < 1 || page > model.MaxTotalPages {
		return fmt.Errorf("page %d: %w", page, model.ErrPageOutOfRange)
	}

	res, err := qc.MovieSearcher.SearchMovies(query, page)
	if err != nil {
		log.Error().Err(err).Str("query", query).Int("page", page).Msg("Could not search movies")
		return fmt.Errorf("%w: %w", model.ErrSearchFailed, err)
	}

	cursor := model.Cursor{
		Page:       page,
		TotalPages: min(res.TotalPages, model.MaxTotalPages),
	}
	// A query without results still has its first page
	if page > max(cursor.TotalPages, 1) {
		return fmt.Errorf("page %d of %d: %w", page, cursor.TotalPages, model.ErrPageOutOfRange)
	}

	results := res.Results
	if results == nil {
		results = []model.SearchResult{}
	}
	qc.state.Query = query
	qc.state.Results = results
	qc.state.Cursor = cursor
	return nil
}

// GoToPage searches the current query again at another page, within the cursor bounds
func (qc *QueryController) GoToPage(page int) error {
	if !qc.state.Cursor.Contains(page) {
		return fmt.Errorf("page %d of %d: %w", page, qc.state.Cursor.TotalPages, model.ErrPageOutOfRange)
	}
	return qc.Search(qc.state.Query, page)
}

func (qc *QueryController) NextPage() error {
	return qc.GoToPage(qc.state.Cursor.Page + 1)
}

func (qc *QueryController) PreviousPage() error {
	return qc.GoToPage(qc.state.Cursor.Page - 1)
}
