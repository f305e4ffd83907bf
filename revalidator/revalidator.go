package main

import (
	"leaguedash/fetcher/assets"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/redis"
	"leaguedash/scheduler/jobs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load the env and refresh the shared asset version once.
// Used to seed redis before the API instances start.
func main() {
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	logs := logger.NewWriterLogger(os.Stdout)

	redisClient := redis.NewClient(cfg)
	defer redisClient.Close()

	resolver := assets.NewConfiguredResolver(cfg, redisClient, logs)
	if err := jobs.RefreshVersion(resolver, logs); err != nil {
		redisClient.Close()
		log.Fatal(err)
	}
}
