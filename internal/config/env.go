package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// defaults applied when the corresponding env var is unset
const (
	defaultViralThreshold       = 0.10
	defaultExplorationFraction  = 0.10
	defaultCandidateOverfetch   = 5
	defaultMaxPerCreator        = 2
	defaultMaxPerCategory       = 5
	defaultTrendingSnapshotSecs = 15
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	dbConnStr := os.Getenv("DATABASE_CONNECTION_STRING")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if dbConnStr == "" {
		return nil, fmt.Errorf("DATABASE_CONNECTION_STRING environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		DatabaseConnString:   dbConnStr,
		Environment:          environment,
		Port:                 port,
		ViralThreshold:       floatEnv("FEED_VIRAL_THRESHOLD", defaultViralThreshold),
		ExplorationFraction:  floatEnv("FEED_EXPLORATION_FRACTION", defaultExplorationFraction),
		CandidateOverfetch:   intEnv("FEED_CANDIDATE_OVERFETCH", defaultCandidateOverfetch),
		MaxPerCreator:        intEnv("FEED_MAX_PER_CREATOR", defaultMaxPerCreator),
		MaxPerCategory:       intEnv("FEED_MAX_PER_CATEGORY", defaultMaxPerCategory),
		TrendingSnapshotSecs: intEnv("TRENDING_SNAPSHOT_SECS", defaultTrendingSnapshotSecs),
	}

	if cfg.ViralThreshold <= 0 || cfg.ViralThreshold >= 1 {
		return nil, fmt.Errorf("FEED_VIRAL_THRESHOLD must be in (0, 1), got %v", cfg.ViralThreshold)
	}

	if cfg.CandidateOverfetch < 1 {
		return nil, fmt.Errorf("FEED_CANDIDATE_OVERFETCH must be >= 1, got %d", cfg.CandidateOverfetch)
	}

	return cfg, nil
}

// parses a float env var, returning the fallback when unset or malformed
func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}

	return v
}

// parses an int env var, returning the fallback when unset or malformed
func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}
