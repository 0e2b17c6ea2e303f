package main

import (
	"log"

	"github.com/flexpass/gympass-backend-go/internal/api"
	"github.com/flexpass/gympass-backend-go/internal/config"
	"github.com/flexpass/gympass-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	migrator := database.NewMigrationManager(database.GetDB(), cfg.MigrationsPath)
	if err := migrator.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	router := api.SetupRouter(cfg, database.GetDB())

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
