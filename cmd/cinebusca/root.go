package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Agurato/cinebusca/internal/config"
	"github.com/Agurato/cinebusca/internal/infrastructure"
)

var version = "dev"

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "cinebusca",
	Short: "Search movies on TMDB and keep favorites",
	Long: `cinebusca - search The Movie Database, browse movie details
and keep a list of favorite movies for the browser session.

Without a command, the web server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("cinebusca {{.Version}}\n")
}

// setup loads the configuration, configures logging and connects to TMDB
func setup() (*config.Config, *infrastructure.MetadataWrapper, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.SetupLogger(cfg.Log)

	metadata, err := infrastructure.NewMetadataWrapper(cfg.TMDBAPIKey, infrastructure.WithLanguage(cfg.Language))
	if err != nil {
		log.Error().Err(err).Msg("Could not create TMDB client")
		return nil, nil, err
	}
	return cfg, metadata, nil
}
