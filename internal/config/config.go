package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Environment variables names
const (
	EnvTMDBAPIKey    = "TMDB_API_KEY"
	EnvTMDBLanguage  = "TMDB_LANGUAGE"
	EnvCookieSecret  = "COOKIE_SECRET"
	EnvSessionStore  = "SESSION_STORE"
	EnvListenAddr    = "LISTEN_ADDR"
	EnvTemplatesPath = "TEMPLATES_PATH"
	EnvStaticPath    = "STATIC_PATH"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvLogFile       = "LOG_FILE"
	EnvGinMode       = "GIN_MODE"
)

// Session store kinds
const (
	SessionStoreMemory = "memory"
	SessionStoreCookie = "cookie"
)

var ErrMissingAPIKey = errors.New(EnvTMDBAPIKey + " is not set")

type Config struct {
	TMDBAPIKey   string
	Language     language.Tag
	CookieSecret string
	SessionStore string

	ListenAddr    string
	TemplatesPath string
	StaticPath    string
	GinMode       string

	Log LogConfig
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		TMDBAPIKey:    os.Getenv(EnvTMDBAPIKey),
		CookieSecret:  os.Getenv(EnvCookieSecret),
		SessionStore:  strings.ToLower(getEnv(EnvSessionStore, SessionStoreMemory)),
		ListenAddr:    getEnv(EnvListenAddr, ":8080"),
		TemplatesPath: getEnv(EnvTemplatesPath, "web/templates"),
		StaticPath:    getEnv(EnvStaticPath, "web/static"),
		GinMode:       getEnv(EnvGinMode, "release"),
		Log: LogConfig{
			Level:  getEnv(EnvLogLevel, "info"),
			Format: getEnv(EnvLogFormat, "json"),
			File:   os.Getenv(EnvLogFile),
		},
	}

	lang, err := language.Parse(getEnv(EnvTMDBLanguage, "pt-BR"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTMDBLanguage, err)
	}
	cfg.Language = lang

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Sessions held in memory die with the process, so a random key is enough
	if cfg.CookieSecret == "" {
		log.Warn().Msgf("%s is not set, using a random key", EnvCookieSecret)
		cfg.CookieSecret = string(securecookie.GenerateRandomKey(32))
	}
	return cfg, nil
}

// Validate checks the settings needed to reach TMDB and to store sessions
func (c Config) Validate() error {
	if c.TMDBAPIKey == "" {
		return ErrMissingAPIKey
	}
	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreCookie:
	default:
		return fmt.Errorf("invalid %s '%s': must be '%s' or '%s'", EnvSessionStore, c.SessionStore, SessionStoreMemory, SessionStoreCookie)
	}
	if c.SessionStore == SessionStoreCookie && len(c.CookieSecret) < 16 {
		return fmt.Errorf("%s must be at least 16 characters long with the cookie session store", EnvCookieSecret)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
