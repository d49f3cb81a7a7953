package main

import (
	"github.com/ovenly/costbook/backend/config"
	"github.com/ovenly/costbook/backend/internal/database"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

func main() {
	log := logger.New("migrate")
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalw("migration failed", "error", err)
	}

	log.Infow("migrations applied")
}
