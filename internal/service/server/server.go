package server

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/pariz/gountries"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/config"
	"github.com/Agurato/cinebusca/internal/infrastructure"
)

const (
	// SessionName is the name of the browser session cookie
	SessionName = "cinebusca-session"
	// AppStateKey is the session key for the serialized application state
	AppStateKey = "appState"
)

// Options are the settings of the web server
type Options struct {
	// SessionStore is config.SessionStoreMemory or config.SessionStoreCookie
	SessionStore  string
	CookieSecret  string
	TemplatesPath string
	StaticPath    string
}

var countries = gountries.New()

// NewServer initializes the server
func NewServer(opts Options, mainHandler *MainHandler, movieHandler *MovieHandler, apiHandler *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(requestID, requestLogger, gin.Recovery())

	router.SetTrustedProxies(nil)

	// Sessions
	router.Use(sessions.Sessions(SessionName, newSessionStore(opts)))

	// Add template functions
	router.SetFuncMap(template.FuncMap{
		"add": func(a int, b int) int {
			return a + b
		},
		"countryName": func(code string) string {
			country, err := countries.FindCountryByAlpha(code)
			if err != nil {
				return code
			}
			return country.Name.Common
		},
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict needs key and value pairs")
			}
			dict := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
				}
				dict[key] = pairs[i+1]
			}
			return dict, nil
		},
		"posterURL": infrastructure.GetPosterLink,
		"rating": func(vote float64) string {
			return fmt.Sprintf("%.1f", vote)
		},
		"runtime": func(minutes int) string {
			if minutes <= 0 {
				return ""
			}
			return fmt.Sprintf("%dh %02dmin", minutes/60, minutes%60)
		},
		"title": func(s string) string {
			return cases.Title(language.BrazilianPortuguese).String(s)
		},
	})

	// Load templates
	router.LoadHTMLGlob(filepath.Join(opts.TemplatesPath, "**", "*"))

	// Static files
	router.Static("/static", opts.StaticPath)
	// 404
	router.NoRoute(mainHandler.Error404)

	router.GET("/healthz", mainHandler.GETHealth)

	router.GET("/", movieHandler.GETIndex).
		GET("/search", movieHandler.GETSearch).
		GET("/search/page/:page", movieHandler.GETSearchPage).
		GET("/movie/:id", movieHandler.GETMovie).
		GET("/favorites", movieHandler.GETFavorites).
		POST("/favorites/:id/toggle", movieHandler.POSTToggleFavorite)

	api := router.Group("/api")
	{
		api.GET("/search", apiHandler.GETSearch)
		api.GET("/movie/:id", apiHandler.GETMovie)
		api.GET("/favorites", apiHandler.GETFavorites)
		api.POST("/favorites/:id", apiHandler.POSTToggleFavorite)
	}

	return router
}

func newSessionStore(opts Options) sessions.Store {
	var store sessions.Store
	if opts.SessionStore == config.SessionStoreCookie {
		store = cookie.NewStore([]byte(opts.CookieSecret))
	} else {
		store = memstore.NewStore([]byte(opts.CookieSecret))
	}
	// MaxAge 0 ends the session with the browser
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// RenderHTML renders HTML pages and adds useful objects for templates
func RenderHTML(c *gin.Context, code int, name string, obj gin.H) {
	favorites := business.NewFavorites(infrastructure.NewSessionStorage(sessions.Default(c)))
	obj["nav"] = gin.H{
		"favoritesCount": favorites.Len(),
	}
	c.HTML(code, name, obj)
}
