package main

import (
	"context"
	"errors"
	"leaguedash/fetcher/assets"
	"leaguedash/fetcher/repositories"
	"leaguedash/pkg/config"
	"leaguedash/pkg/database"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/redis"
	"leaguedash/scheduler/jobs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

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

	logs, err := logger.CreateLogger(os.Stdout)
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer logs.Close()

	redisClient := redis.NewClient(cfg)
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()); err != nil {
		logs.Warnf("Redis is unavailable, the version will not be shared: %v", err)
	}

	resolver := assets.NewConfiguredResolver(cfg, redisClient, logs)

	logs.Infof("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	if err := jobs.RegisterVersionRefresh(s, resolver, cfg.Assets.VersionTTL, logs); err != nil {
		log.Fatal(err)
	}

	if err := jobs.RegisterLogUpload(s, logs, cfg.Bucket, "scheduler"); err != nil {
		log.Fatal(err)
	}

	if repo := newSnapshotRepository(cfg, logs); repo != nil {
		if err := jobs.RegisterSnapshotPrune(s, repo, cfg.Database.SnapshotRetention, logs); err != nil {
			log.Fatal(err)
		}
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		if err := s.Shutdown(); err != nil {
			logs.Errorf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	logs.Infof("Shutting down scheduler...")
}

// newSnapshotRepository connects to the snapshot database, returning nil when none is configured.
func newSnapshotRepository(cfg *config.Config, logs *logger.Logger) repositories.MatchRepository {
	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		if !errors.Is(err, database.ErrNoDatabase) {
			logs.Errorf("Snapshot database unavailable: %v", err)
		}
		return nil
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		logs.Errorf("Couldn't get raw db connection: %v", err)
		return nil
	}

	if err := database.RunMigrations(cfg, rawDb, logs); err != nil {
		logs.Errorf("Couldn't run the migrations: %v", err)
		return nil
	}

	repo, err := repositories.NewMatchRepository(db)
	if err != nil {
		logs.Errorf("Couldn't create the match repository: %v", err)
		return nil
	}
	return repo
}
