package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Bluesky   BlueskyConfig
	Archive   ArchiveConfig
	Migration MigrationConfig
}

type BlueskyConfig struct {
	Host          string
	Identifier    string
	Password      string
	TwoFactorWait time.Duration
}

type ArchiveConfig struct {
	TweetsFile string
	MediaDir   string
}

type MigrationConfig struct {
	MaxRetries int
	PostDelay  time.Duration
	DryRun     bool
	Verbose    bool
}

func New() *Config {
	return &Config{
		Bluesky: BlueskyConfig{
			Host:          getEnvOrDefault("BSKY_HOST", "https://bsky.social"),
			Identifier:    getEnvOrDefault("BSKY_IDENTIFIER", "your-handle.bsky.social"),
			Password:      getEnvOrDefault("BSKY_PASSWORD", "your_app_password"),
			TwoFactorWait: getEnvDurationOrDefault("TWO_FACTOR_WAIT", 15*time.Second),
		},
		Archive: ArchiveConfig{
			TweetsFile: getEnvOrDefault("TWITTER_ARCHIVE_FILE", "./data/tweets.js"),
			MediaDir:   getEnvOrDefault("TWITTER_MEDIA_DIR", "./data/tweets_media"),
		},
		Migration: MigrationConfig{
			MaxRetries: getEnvIntOrDefault("MAX_RETRIES", 3),
			PostDelay:  getEnvDurationOrDefault("POST_DELAY", 2*time.Second),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
