// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// JWTSecret signs access and refresh tokens. Required.
	JWTSecret string

	// AccessTokenTTL and RefreshTokenTTL bound token lifetimes.
	// Defaults are 5m and 24h.
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// TourismCSVPath points at the tourism dataset, read on every lookup.
	TourismCSVPath string

	// TourismCSVEncoding is the dataset's character set (WHATWG label).
	TourismCSVEncoding string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// LoadDotenv copies variables from the given .env files into the process
// environment without overriding anything already set. Missing files are
// skipped; with no arguments it looks for ".env" in the working directory.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config.LoadDotenv %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables and returns a Config.
// Every missing or malformed variable is reported in a single error.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		TourismCSVPath:     getEnv("TOURISM_CSV_PATH", "data/Trip_list.csv"),
		TourismCSVEncoding: getEnv("TOURISM_CSV_ENCODING", "euc-kr"),
	}

	var missing, malformed []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	var err error
	if cfg.AccessTokenTTL, err = getDuration("ACCESS_TOKEN_TTL", 5*time.Minute); err != nil {
		malformed = append(malformed, err.Error())
	}
	if cfg.RefreshTokenTTL, err = getDuration("REFRESH_TOKEN_TTL", 24*time.Hour); err != nil {
		malformed = append(malformed, err.Error())
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		malformed = append(malformed, err.Error())
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		malformed = append(malformed, err.Error())
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	problems = append(problems, malformed...)
	if len(problems) > 0 {
		return Config{}, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

// SlogLevel returns LogLevel as a slog.Level. Load has already validated it.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %q is not a valid level", s)
	}
	return lvl, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: %q is not a positive duration", key, v)
	}
	return d, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: %q is not a positive integer", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
