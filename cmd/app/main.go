package main

import (
	"pms/config"
	"pms/di"
	"pms/helper"
	"pms/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title PMS Booking API
// @version 1.0
// @description Room directory, rate table and booking lifecycle for hotel properties.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
