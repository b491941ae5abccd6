// Package config resolves the service's environment-based configuration:
// listening address, log verbosity, and the rate limiter's token-bucket
// quota. None of it affects core solving semantics (spec §6).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the surrounding layer's runtime knobs.
type Config struct {
	Addr                  string
	LogLevel              string
	RateReplenishInterval time.Duration
	RateBurst             int
}

// Load reads MODE ("prod" -> listen on all interfaces, else loopback-only),
// PORT, LOG_LEVEL, RATE_REPLENISH_INTERVAL_SECONDS, and RATE_BURST_SIZE from
// the environment, applying sensible defaults when unset.
func Load() Config {
	host := "127.0.0.1"
	if strings.ToLower(strings.TrimSpace(os.Getenv("MODE"))) == "prod" {
		host = "0.0.0.0"
	}
	port := getenv("PORT", "8080")
	return Config{
		Addr:                  host + ":" + port,
		LogLevel:              getenv("LOG_LEVEL", "info"),
		RateReplenishInterval: time.Duration(getenvInt("RATE_REPLENISH_INTERVAL_SECONDS", 1)) * time.Second,
		RateBurst:             getenvInt("RATE_BURST_SIZE", 20),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
