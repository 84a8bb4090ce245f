package server

import (
	"encoding/json"
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/infrastructure"
	"github.com/Agurato/cinebusca/internal/model"
)

// appLoader rebuilds the application of a browser session on each request
type appLoader struct {
	business.MovieSearcher
	business.MovieDetailGetter
}

// loadApp restores the application from the session of the request.
// A missing or malformed state starts a fresh one.
func (al appLoader) loadApp(c *gin.Context) *business.App {
	session := sessions.Default(c)
	return business.NewApp(loadState(session), al.MovieSearcher, al.MovieDetailGetter, infrastructure.NewSessionStorage(session))
}

// saveApp stores the application state in the session of the request
func (al appLoader) saveApp(c *gin.Context, app *business.App) {
	if err := saveState(sessions.Default(c), app.State()); err != nil {
		log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("Could not save application state")
	}
}

func loadState(session sessions.Session) *model.AppState {
	raw, ok := session.Get(AppStateKey).(string)
	if !ok || raw == "" {
		return model.NewAppState()
	}
	var state model.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Warn().Err(err).Msg("Ignoring malformed application state")
		return model.NewAppState()
	}
	return &state
}

func saveState(session sessions.Session, state *model.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not serialize application state: %w", err)
	}
	session.Set(AppStateKey, string(raw))
	if err := session.Save(); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}
	return nil
}
