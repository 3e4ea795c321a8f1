package main

import (
	"log"
	"net/http"

	"activityboard/internal/adapters/web"
	"activityboard/internal/config"
	"activityboard/internal/infrastructure/i18n"
	"activityboard/pkg/activityapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	client := activityapi.New(cfg.APIBaseURL)
	translator := i18n.NewTranslator(cfg.DefaultLocale)
	handler := web.NewHandler(client, web.NewStatusBoard(), translator, cfg.DefaultLocale)

	log.Printf("✅ Signup page listening on %s (API at %s)", cfg.WebAddr, cfg.APIBaseURL)
	log.Fatal(http.ListenAndServe(cfg.WebAddr, handler.Router()))
}
