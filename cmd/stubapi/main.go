package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bilgisen/kientruc/internal/config"
	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/bilgisen/kientruc/internal/stubapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	output := cfg.LogFile
	if output == "" {
		output = "stdout"
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: cfg.LogPretty,
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Str("fixtures", cfg.StubFixtures).Msg("Starting stub API...")

	srv := stubapi.New(stubapi.NewDirSource(cfg.StubFixtures))

	go func() {
		if err := srv.Listen(":" + cfg.StubPort); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down stub API...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Int("requests", len(srv.Requests())).Msg("Stub API exited properly")
}
