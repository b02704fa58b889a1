package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"domain-swap/api"
	"domain-swap/history"
	"domain-swap/preset"
	"domain-swap/storage"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	store, err := storage.NewStore(dataDir)
	if err != nil {
		log.Fatalf("failed to open data dir: %v", err)
	}

	hm, err := history.NewManager(store)
	if err != nil {
		log.Fatalf("failed to load history: %v", err)
	}
	pm, err := preset.NewManager(store)
	if err != nil {
		log.Fatalf("failed to load presets: %v", err)
	}

	router := api.RegisterRoutes(hm, pm, staticFiles)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("domain-swap listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
