package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"GemScout/internal/di"
	"GemScout/pkg/config"
)

func main() {
	// Optional .env for local development; real env vars still win.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
