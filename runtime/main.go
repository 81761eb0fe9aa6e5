package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/sdr_trainer/services"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	store, err := services.NewStoreService(os.Getenv("STORE_DRIVER"))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid store configuration")
		return
	}

	ctx, err := context.NewCtx(
		store,
		&services.MonitoringService{},
		&services.ContentService{},
		&services.ProgressService{},
		&services.ReviewService{},
		&services.SessionService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped")
		return
	}
}
