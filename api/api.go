package main

import (
	"context"
	"errors"
	"leaguedash/api/modules"
	"leaguedash/api/routes"
	"leaguedash/fetcher/assets"
	"leaguedash/fetcher/data"
	"leaguedash/fetcher/repositories"
	"leaguedash/pkg/cache"
	"leaguedash/pkg/config"
	"leaguedash/pkg/database"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/redis"
	"leaguedash/scheduler/jobs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load the environment variables if not running on Docker.
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

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := redisClient.Ping(ctx); err != nil {
		logs.Warnf("Redis is unavailable, shared caches will miss: %v", err)
	}

	store := newMatchStore(cfg, redisClient, logs)

	fetcher := data.NewConfiguredFetcher(cfg, store, logs)
	defer fetcher.Close()

	resolver := assets.NewConfiguredResolver(cfg, redisClient, logs)

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		Config:   cfg,
		Fetcher:  fetcher,
		Resolver: resolver,
		Logger:   logs,
	})

	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
		module.MatchHandler,
		module.StaticHandler,
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Client-Id", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           corsHandler.Handler(router.Engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer, healthServer, err := startHealthServer(cfg.Server.GRPCPort, logs)
	if err != nil {
		logs.Errorf("Couldn't start the health server: %v", err)
		return
	}

	// Warm the version cache, requests use the fallback until it completes.
	resolver.Latest()

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		logs.Errorf("Failed to create the log scheduler: %v", err)
		return
	}
	if err := jobs.RegisterLogUpload(s, logs, cfg.Bucket, "api"); err != nil {
		logs.Errorf("%v", err)
		return
	}
	s.Start()
	defer s.Shutdown()

	go func() {
		logs.Infof("API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logs.Errorf("API server failed: %v", err)
			stop()
		}
	}()

	// Wait for a termination signal or a server failure.
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	select {
	case <-signalChannel:
	case <-ctx.Done():
	}

	logs.Infof("Shutting down the API...")
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logs.Errorf("Couldn't stop the API server gracefully: %v", err)
	}
	grpcServer.GracefulStop()
}

// newMatchStore chains the redis match cache with the snapshot database when one is configured.
func newMatchStore(cfg *config.Config, redisClient *redis.RedisClient, logs *logger.Logger) cache.MatchStore {
	tiers := []cache.MatchStore{
		cache.NewRedisMatchCache(redisClient, cfg.Cache.MatchRedisTTL, func(err error) bool {
			return errors.Is(err, redis.Nil)
		}),
	}

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		if !errors.Is(err, database.ErrNoDatabase) {
			logs.Errorf("Snapshot database unavailable: %v", err)
		}
		return cache.NewTieredMatchStore(logs, tiers...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logs.Errorf("Couldn't get the raw db connection: %v", err)
		return cache.NewTieredMatchStore(logs, tiers...)
	}

	if err := database.RunMigrations(cfg, sqlDB, logs); err != nil {
		logs.Errorf("Couldn't run the migrations: %v", err)
		return cache.NewTieredMatchStore(logs, tiers...)
	}

	repo, err := repositories.NewMatchRepository(db)
	if err != nil {
		logs.Errorf("Couldn't create the match repository: %v", err)
		return cache.NewTieredMatchStore(logs, tiers...)
	}

	return cache.NewTieredMatchStore(logs, append(tiers, repo)...)
}
