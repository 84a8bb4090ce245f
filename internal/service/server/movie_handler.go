package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/model"
)

// Number of cast members shown on the details page
const topCastSize = 6

// MovieHandler serves the search, details and favorites pages
type MovieHandler struct {
	appLoader
	paginater *business.Paginater
}

func NewMovieHandler(ms business.MovieSearcher, mdg business.MovieDetailGetter, p *business.Paginater) *MovieHandler {
	return &MovieHandler{
		appLoader: appLoader{
			MovieSearcher:     ms,
			MovieDetailGetter: mdg,
		},
		paginater: p,
	}
}

// GETIndex displays the search page with the last search of the session
func (mh MovieHandler) GETIndex(c *gin.Context) {
	app := mh.loadApp(c)
	app.ShowSearch()
	mh.saveApp(c, app)
	mh.renderApp(c, http.StatusOK, app)
}

// GETSearch runs a new search
func (mh MovieHandler) GETSearch(c *gin.Context) {
	page := 1
	if param, ok := c.GetQuery("page"); ok {
		page = parsePage(param)
	}

	app := mh.loadApp(c)
	err := app.Search(c.Query("query"), page)
	mh.saveApp(c, app)
	mh.renderApp(c, httpStatus(err), app)
}

// GETSearchPage moves the current search to another page
func (mh MovieHandler) GETSearchPage(c *gin.Context) {
	app := mh.loadApp(c)
	err := app.GoToPage(parsePage(c.Param("page")))
	if errors.Is(err, model.ErrPageOutOfRange) {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}
	mh.saveApp(c, app)
	mh.renderApp(c, httpStatus(err), app)
}

// GETMovie displays the details of a movie
func (mh MovieHandler) GETMovie(c *gin.Context) {
	id, ok := parseMovieID(c.Param("id"))
	if !ok {
		MainHandler{}.Error404(c)
		return
	}

	app := mh.loadApp(c)
	err := app.ShowDetails(id)
	mh.saveApp(c, app)
	mh.renderApp(c, httpStatus(err), app)
}

// GETFavorites displays the favorites of the session
func (mh MovieHandler) GETFavorites(c *gin.Context) {
	app := mh.loadApp(c)
	app.ShowFavorites()
	mh.saveApp(c, app)
	mh.renderApp(c, http.StatusOK, app)
}

// POSTToggleFavorite adds or removes a movie from the favorites, then goes back to the previous page
func (mh MovieHandler) POSTToggleFavorite(c *gin.Context) {
	id, ok := parseMovieID(c.Param("id"))
	if !ok {
		MainHandler{}.Error404(c)
		return
	}

	app := mh.loadApp(c)
	if err := app.ToggleFavorite(id); err != nil {
		if errors.Is(err, model.ErrUnknownMovie) {
			MainHandler{}.Error404(c)
			return
		}
		log.Error().Err(err).Int64("movieID", id).Msg("Could not toggle favorite")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusSeeOther, localPath(c.PostForm("back")))
}

// renderApp renders the page of the current view
func (mh MovieHandler) renderApp(c *gin.Context, code int, app *business.App) {
	state := app.State()
	favorites := app.Favorites.List()
	obj := gin.H{
		"state": state,
		"error": state.Error,
		"favoriteIDs": lo.Associate(favorites, func(movie model.SearchResult) (int64, bool) {
			return movie.ID, true
		}),
	}

	var name string
	switch state.View {
	case model.ViewDetails:
		name = "pages/details.go.html"
		obj["title"] = "Detalhes"
		if detail := state.Detail; detail != nil {
			obj["title"] = detail.Title
			if year := detail.Year(); year > 0 {
				obj["title"] = fmt.Sprintf("%s (%d)", detail.Title, year)
			}
			obj["detail"] = detail
			obj["directors"] = detail.Credits.Directors()
			obj["writers"] = detail.Credits.Writers()
			obj["cast"] = detail.Credits.TopCast(topCastSize)
		}
	case model.ViewFavorites:
		name = "pages/favorites.go.html"
		obj["title"] = "Favoritos"
		obj["favorites"] = favorites
	default:
		name = "pages/search.go.html"
		obj["title"] = "cinebusca"
		if state.Search.Query != "" {
			obj["title"] = fmt.Sprintf("%s - cinebusca", state.Search.Query)
		}
		obj["search"] = state.Search
		obj["pages"] = mh.paginater.GetPagination(state.Search.Cursor)
	}
	RenderHTML(c, code, name, obj)
}
