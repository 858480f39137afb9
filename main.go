// main.go
package main

import (
	"context"
	"log"

	"booking-widget/cmd"
	"booking-widget/internal/data/repository"
	"booking-widget/internal/wire"
	"booking-widget/pkg/database"
	"booking-widget/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Confirmations are only recorded when a database is configured
	var repos *repository.Repository
	if config.Database.Enabled() {
		db, err := database.InitDB(context.Background(), config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	} else {
		logger.Info("No database configured, confirmations will not be recorded")
	}

	app := wire.Wiring(repos, config, logger)
	defer app.Close()

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
