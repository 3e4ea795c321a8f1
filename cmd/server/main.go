package main

import (
	"context"
	"log"
	"net/http"

	"activityboard/internal/adapters/rest"
	"activityboard/internal/application"
	"activityboard/internal/config"
	"activityboard/internal/infrastructure/database"
	"activityboard/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Failed to apply migrations: %v", err)
	}

	activityRepo := database.NewActivityRepository(pool)
	participantRepo := database.NewParticipantRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	activityUC := application.NewActivityService(activityRepo)
	signupUC := application.NewSignupService(activityRepo, participantRepo, translator)

	router := rest.NewRouter(rest.NewHandler(activityUC, signupUC))

	log.Printf("✅ Activities API listening on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}
