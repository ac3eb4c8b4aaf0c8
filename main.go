package main

import (
	"log"
	"net/http"
	"os"

	"viralagent/api"
	"viralagent/auth"
	"viralagent/orchestrator"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	orch := orchestrator.NewFromEnv()
	store := auth.NewStoreFromEnv()

	r := api.NewRouter(orch, store)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/automation/run")
	log.Println("  GET  /api/automation/run")
	log.Println("  GET  /api/auth/tiktok")
	log.Println("  GET  /api/auth/tiktok/callback")
	log.Println("  GET  /api/auth/debug")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
