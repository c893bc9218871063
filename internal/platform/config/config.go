package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	EnvAddr            = "PERSONNUMMER_ADDR"
	EnvLogLevel        = "PERSONNUMMER_LOG_LEVEL"
	EnvFormatLength    = "PERSONNUMMER_FORMAT_LENGTH"
	EnvShutdownTimeout = "PERSONNUMMER_SHUTDOWN_TIMEOUT"
	EnvAuditBuffer     = "PERSONNUMMER_AUDIT_BUFFER"
	EnvAdminToken      = "PERSONNUMMER_ADMIN_TOKEN"
	EnvRateLimit       = "PERSONNUMMER_RATE_LIMIT"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel slog.Level
	// DefaultFormatLength is used by the format endpoint when the request
	// does not name a length. Must be 10 or 12.
	DefaultFormatLength int
	ShutdownTimeout     time.Duration
	// AuditBuffer is the async audit queue size; 0 writes events inline.
	AuditBuffer int
	// AdminToken guards the admin routes. Empty disables them.
	AdminToken string
	// RateLimit is the per-IP request budget per minute on identity routes.
	// 0 disables rate limiting.
	RateLimit int
}

// Default returns the configuration used when no environment overrides are set.
func Default() Server {
	return Server{
		Addr:                ":8080",
		LogLevel:            slog.LevelInfo,
		DefaultFormatLength: 12,
		ShutdownTimeout:     10 * time.Second,
		AuditBuffer:         256,
		RateLimit:           600,
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, error) {
	cfg := Default()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Server{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := lookup(EnvFormatLength); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Server{}, fmt.Errorf("%s: %w", EnvFormatLength, err)
		}
		cfg.DefaultFormatLength = n
	}
	if v, ok := lookup(EnvShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("%s: %w", EnvShutdownTimeout, err)
		}
		cfg.ShutdownTimeout = d
	}
	if v, ok := lookup(EnvAuditBuffer); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Server{}, fmt.Errorf("%s: %w", EnvAuditBuffer, err)
		}
		cfg.AuditBuffer = n
	}
	if v, ok := lookup(EnvRateLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Server{}, fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RateLimit = n
	}
	if v, ok := lookup(EnvAdminToken); ok {
		cfg.AdminToken = v
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the server cannot run with.
func (s Server) Validate() error {
	if s.DefaultFormatLength != 10 && s.DefaultFormatLength != 12 {
		return fmt.Errorf("default format length must be 10 or 12, got %d", s.DefaultFormatLength)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", s.ShutdownTimeout)
	}
	if s.AuditBuffer < 0 {
		return fmt.Errorf("audit buffer must not be negative, got %d", s.AuditBuffer)
	}
	if s.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %d", s.RateLimit)
	}
	return nil
}
