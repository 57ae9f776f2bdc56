package main

import (
	"log"
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/auth"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Router
	router := api.NewRouter(pool, tokens, cfg.AllowedOrigins)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
