package business

import (
	"errors"

	"github.com/Agurato/cinebusca/internal/model"
)

// App coordinates the query controller, the detail loader and the favorites
// over the state of one browser session
type App struct {
	state *model.AppState

	Query     *QueryController
	Details   *DetailLoader
	Favorites *Favorites
}

// NewApp builds an App on an existing state. A nil state starts a fresh session.
func NewApp(state *model.AppState, ms MovieSearcher, mdg MovieDetailGetter, s Storage) *App {
	if state == nil {
		state = model.NewAppState()
	}
	if state.View == "" {
		state.View = model.ViewSearch
	}
	return &App{
		state:     state,
		Query:     NewQueryController(ms, &state.Search),
		Details:   NewDetailLoader(mdg),
		Favorites: NewFavorites(s),
	}
}

// State returns the current state
func (a App) State() *model.AppState {
	return a.state
}

func (a *App) ShowSearch() {
	a.switchView(model.ViewSearch)
}

func (a *App) ShowFavorites() {
	a.switchView(model.ViewFavorites)
}

// Search runs a new search and shows the search view
func (a *App) Search(query string, page int) error {
	a.switchView(model.ViewSearch)
	a.state.Error = ""
	return a.publishSearchError(a.Query.Search(query, page))
}

// GoToPage moves the current search to another page.
// An out of range page is rejected without any request.
func (a *App) GoToPage(page int) error {
	a.switchView(model.ViewSearch)
	if !a.state.Search.Cursor.Contains(page) {
		return a.Query.GoToPage(page)
	}
	a.state.Error = ""
	return a.publishSearchError(a.Query.GoToPage(page))
}

// ShowDetails shows the details view for a movie.
// On failure the previously loaded detail, if any, is kept.
func (a *App) ShowDetails(id int64) error {
	a.state.View = model.ViewDetails
	a.state.SelectedID = id
	a.state.Error = ""

	detail, err := a.Details.LoadDetails(id)
	if err != nil {
		a.state.Error = model.DetailsFailedMessage
		return err
	}
	a.state.Detail = detail
	return nil
}

// ToggleFavorite toggles a movie currently known to the session: in the results,
// the details view, or the favorites themselves
func (a *App) ToggleFavorite(id int64) error {
	movie, ok := a.lookup(id)
	if !ok {
		return model.ErrUnknownMovie
	}
	return a.Favorites.Toggle(movie)
}

func (a App) IsFavorite(id int64) bool {
	return a.Favorites.IsFavorite(id)
}

func (a *App) switchView(view model.View) {
	if a.state.View == view {
		return
	}
	// The detail only lives while the details view is shown
	if a.state.View == model.ViewDetails {
		a.state.Detail = nil
		a.state.SelectedID = 0
	}
	a.state.View = view
	a.state.Error = ""
}

func (a *App) publishSearchError(err error) error {
	if errors.Is(err, model.ErrSearchFailed) {
		a.state.Error = model.SearchFailedMessage
	}
	return err
}

func (a App) lookup(id int64) (model.SearchResult, bool) {
	if a.state.Detail != nil && a.state.Detail.ID == id {
		return a.state.Detail.Summary(), true
	}
	for _, movie := range a.state.Search.Results {
		if movie.ID == id {
			return movie, true
		}
	}
	return a.Favorites.Get(id)
}
