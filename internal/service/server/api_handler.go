package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/infrastructure"
	"github.com/Agurato/cinebusca/internal/model"
)

type movieResponse struct {
	model.SearchResult
	Favorite bool `json:"favorite"`
}

type detailResponse struct {
	*model.MovieDetail
	Favorite bool `json:"favorite"`
}

type searchResponse struct {
	Query      string          `json:"query"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Results    []movieResponse `json:"results"`
}

type toggleResponse struct {
	ID       int64 `json:"id"`
	Favorite bool  `json:"favorite"`
	Count    int   `json:"count"`
}

// APIHandler serves the JSON API. Searches and details do not change the state of the session.
type APIHandler struct {
	appLoader
}

func NewAPIHandler(ms business.MovieSearcher, mdg business.MovieDetailGetter) *APIHandler {
	return &APIHandler{
		appLoader: appLoader{
			MovieSearcher:     ms,
			MovieDetailGetter: mdg,
		},
	}
}

// GETSearch searches movies
func (ah APIHandler) GETSearch(c *gin.Context) {
	page := 1
	if param, ok := c.GetQuery("page"); ok {
		page = parsePage(param)
	}

	qc := business.NewQueryController(ah.MovieSearcher, &model.SearchState{})
	if err := qc.Search(c.Query("query"), page); err != nil {
		jsonError(c, err)
		return
	}

	favorites := ah.favorites(c)
	state := qc.State()
	c.JSON(http.StatusOK, searchResponse{
		Query:      state.Query,
		Page:       state.Cursor.Page,
		TotalPages: state.Cursor.TotalPages,
		Results: lo.Map(state.Results, func(movie model.SearchResult, _ int) movieResponse {
			return movieResponse{
				SearchResult: movie,
				Favorite:     favorites.IsFavorite(movie.ID),
			}
		}),
	})
}

// GETMovie returns the details and credits of a movie
func (ah APIHandler) GETMovie(c *gin.Context) {
	id, ok := parseMovieID(c.Param("id"))
	if !ok {
		jsonError(c, model.ErrUnknownMovie)
		return
	}

	detail, err := business.NewDetailLoader(ah.MovieDetailGetter).LoadDetails(id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, detailResponse{
		MovieDetail: detail,
		Favorite:    ah.favorites(c).IsFavorite(id),
	})
}

// GETFavorites returns the favorites of the session
func (ah APIHandler) GETFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, ah.favorites(c).List())
}

// POSTToggleFavorite adds or removes a movie from the favorites.
// The movie is read from the request body if any, or else looked up in the session.
func (ah APIHandler) POSTToggleFavorite(c *gin.Context) {
	id, ok := parseMovieID(c.Param("id"))
	if !ok {
		jsonError(c, model.ErrUnknownMovie)
		return
	}

	var movie model.SearchResult
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&movie); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if movie.ID != 0 && movie.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "movie id does not match the path"})
			return
		}
		movie.ID = id
	}

	app := ah.loadApp(c)
	var err error
	if movie.Title != "" {
		err = app.Favorites.Toggle(movie)
	} else {
		err = app.ToggleFavorite(id)
	}
	if err != nil {
		log.Warn().Err(err).Int64("movieID", id).Msg("Could not toggle favorite")
		jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, toggleResponse{
		ID:       id,
		Favorite: app.IsFavorite(id),
		Count:    app.Favorites.Len(),
	})
}

func (ah APIHandler) favorites(c *gin.Context) *business.Favorites {
	return business.NewFavorites(infrastructure.NewSessionStorage(sessions.Default(c)))
}

func jsonError(c *gin.Context, err error) {
	code := httpStatus(err)
	if code == http.StatusOK {
		code = http.StatusBadRequest
	}
	c.JSON(code, gin.H{"error": errorMessage(err)})
}
