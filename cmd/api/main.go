package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mealfinder/backend/config"
	"github.com/mealfinder/backend/internal/database"
	"github.com/mealfinder/backend/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Info("loaded configuration from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	srv := server.New(cfg, db)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.WithError(err).Fatal("server error")
		}
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down server")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.WithError(err).Fatal("server shutdown error")
	}
	log.Info("server stopped")
}
