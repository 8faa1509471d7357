// Package config loads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the wallet service
type Config struct {
	GRPCAddr        string
	LogLevel        string
	LogFormat       string
	AppVersion      string
	AppStatus       string
	SeedDemoData    bool
	ShutdownTimeout time.Duration

	// Warnings collects problems found while loading; the caller logs them
	// once a logger exists.
	Warnings []string
}

const (
	defaultGRPCAddr        = ":8080"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultShutdownTimeout = 10 * time.Second
)

// Load reads the configuration. Values from a .env file in the working
// directory are applied first without overriding the real environment;
// a missing .env file is not an error.
func Load() *Config {
	cfg := &Config{}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		cfg.warn("failed to read .env file: %v", err)
	}

	cfg.GRPCAddr = getEnv("GRPC_ADDR", defaultGRPCAddr)
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultLogFormat)
	cfg.AppVersion = getEnv("APP_VERSION", "unknown")
	cfg.AppStatus = getEnv("APP_STATUS", "unknown")

	seedStr := getEnv("SEED_DEMO_DATA", "true")
	seed, err := strconv.ParseBool(seedStr)
	if err != nil {
		cfg.warn("invalid SEED_DEMO_DATA %q, using true", seedStr)
		seed = true
	}
	cfg.SeedDemoData = seed

	timeoutStr := getEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		cfg.warn("invalid SHUTDOWN_TIMEOUT %q, using %s", timeoutStr, defaultShutdownTimeout)
		timeout = defaultShutdownTimeout
	}
	cfg.ShutdownTimeout = timeout

	return cfg
}

func (c *Config) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
