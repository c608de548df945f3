package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movecar-service/internal/app"
	"movecar-service/internal/config"
	"movecar-service/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.Init("info")
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize app")
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().Str("port", cfg.AppPort).Msg("movecar-service started")

	<-ctx.Done() // wait for Ctrl+C

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("movecar-service stopped cleanly")
}
