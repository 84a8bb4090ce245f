package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/service/server"
)

// Number of pages linked on each side of the current one
const paginationAround = 2

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, metadata, err := setup()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	mainHandler := server.NewMainHandler()
	movieHandler := server.NewMovieHandler(metadata, metadata, business.NewPaginater(paginationAround))
	apiHandler := server.NewAPIHandler(metadata, metadata)

	router := server.NewServer(
		server.Options{
			SessionStore:  cfg.SessionStore,
			CookieSecret:  cfg.CookieSecret,
			TemplatesPath: cfg.TemplatesPath,
			StaticPath:    cfg.StaticPath,
		},
		mainHandler,
		movieHandler,
		apiHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("sessionStore", cfg.SessionStore).
		Str("language", cfg.Language.String()).
		Str("version", version).
		Msg("Starting cinebusca")
	if err := server.Run(ctx, cfg.ListenAddr, router); err != nil {
		log.Error().Err(err).Msg("Server stopped")
		return err
	}
	log.Info().Msg("Server stopped")
	return nil
}
