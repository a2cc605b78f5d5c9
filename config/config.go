package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the service, read from the
// environment with an optional .env file.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// RedisAddr is the address of the Redis cache. Empty means run
	// with the in-memory cache instead.
	RedisAddr string

	// CacheTTL bounds how long a cached schedule stays valid.
	CacheTTL time.Duration

	// RateLimitCapacity and RateLimitWindow configure the per-client
	// token bucket.
	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("ADDR", ":8080"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          getDuration("CACHE_TTL", 10*time.Minute),
		RateLimitCapacity: getInt("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
