package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server configuration for the HTTP API and the health endpoint.
type ServerConfiguration struct {
	Port           string
	GRPCPort       string
	AllowedOrigins []string
}

// Backend configuration, the REST API that holds player and match data.
type BackendConfiguration struct {
	BaseURL     string
	Timeout     time.Duration
	LimitCount  int
	LimitWindow time.Duration
	Concurrency int
}

// Assets configuration for Data Dragon and CommunityDragon.
type AssetsConfiguration struct {
	DDragonURL         string
	CommunityDragonURL string
	FallbackVersion    string
	VersionTTL         time.Duration
}

// Cache durations per kind of data.
type CacheConfiguration struct {
	PlayerTTL       time.Duration
	HistoryTTL      time.Duration
	MatchRedisTTL   time.Duration
	CleanupInterval time.Duration
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration. An empty URL disables the snapshot store.
type DatabaseConfiguration struct {
	URL               string
	Database          string
	MigrationsPath    string
	SnapshotRetention time.Duration
}

// Bucket configuration used for shipping the log files.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Config holds every setting used by the processes of this module.
type Config struct {
	Environment string
	Server      ServerConfiguration
	Backend     BackendConfiguration
	Assets      AssetsConfiguration
	Cache       CacheConfiguration
	Redis       RedisConfiguration
	Database    DatabaseConfiguration
	Bucket      BucketConfiguration
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var err error
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfiguration{
			Port:           getEnv("API_PORT", "8080"),
			GRPCPort:       getEnv("GRPC_PORT", "50051"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Redis: RedisConfiguration{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Database: DatabaseConfiguration{
			URL:            os.Getenv("DATABASE_URL"),
			Database:       getEnv("POSTGRES_DB", "leaguedash"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Bucket: BucketConfiguration{
			Region:       getEnv("BUCKET_REGION", "us-east-1"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
		},
	}

	cfg.Backend = BackendConfiguration{
		BaseURL: strings.TrimRight(getEnv("BACKEND_URL", "http://127.0.0.1:8000"), "/"),
	}
	if cfg.Backend.Timeout, err = getDuration("BACKEND_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Backend.LimitCount, err = getInt("BACKEND_LIMIT_COUNT", 20); err != nil {
		return nil, err
	}
	if cfg.Backend.LimitWindow, err = getDuration("BACKEND_LIMIT_WINDOW", time.Second); err != nil {
		return nil, err
	}
	if cfg.Backend.Concurrency, err = getInt("BACKEND_CONCURRENCY", 5); err != nil {
		return nil, err
	}

	cfg.Assets = AssetsConfiguration{
		DDragonURL:         strings.TrimRight(getEnv("DDRAGON_URL", "https://ddragon.leagueoflegends.com"), "/"),
		CommunityDragonURL: strings.TrimRight(getEnv("CDRAGON_URL", "https://raw.communitydragon.org"), "/"),
		FallbackVersion:    getEnv("FALLBACK_VERSION", "15.13.1"),
	}
	if cfg.Assets.VersionTTL, err = getDuration("VERSION_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.Database.SnapshotRetention, err = getDuration("SNAPSHOT_RETENTION", 30*24*time.Hour); err != nil {
		return nil, err
	}

	if cfg.Cache.PlayerTTL, err = getDuration("PLAYER_CACHE_TTL", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Cache.HistoryTTL, err = getDuration("HISTORY_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Cache.MatchRedisTTL, err = getDuration("MATCH_REDIS_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Cache.CleanupInterval, err = getDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RedisAddr returns the host:port pair of the redis server.
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// getEnv returns the variable value or the default when unset.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return parsed, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
