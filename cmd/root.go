package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eatgo/internal/api"
)

// ErrVersionRequested is returned when -version was passed.
var ErrVersionRequested = errors.New("version requested")

// Config holds CLI configuration.
type Config struct {
	DBPath       string
	LogPath      string
	LogLevel     slog.Level
	APIBaseURL   string
	LoginBaseURL string
	Timeout      time.Duration
	RateLimit    float64
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string, args []string) (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with existing flag parsing.
	loadDotEnv(".env")
	loadDotEnv(".env.local")

	fs := flag.NewFlagSet("eatgo", flag.ContinueOnError)
	var logLevel string
	var showVersion bool
	fs.StringVar(&config.DBPath, "db", "", "Path to SQLite database file (default: ~/.eatgo/eatgo.db)")
	fs.StringVar(&config.LogPath, "log", "", "Path to log file (default: ~/.eatgo/eatgo.log)")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (or set EATGO_LOG_LEVEL)")
	fs.StringVar(&config.APIBaseURL, "api-url", "", "Customer API base URL (or set EATGO_API_URL)")
	fs.StringVar(&config.LoginBaseURL, "login-url", "", "Login API base URL (or set EATGO_LOGIN_URL)")
	fs.DurationVar(&config.Timeout, "timeout", api.DefaultTimeout, "HTTP request timeout")
	fs.Float64Var(&config.RateLimit, "rate", 5, "Maximum API requests per second (0 disables throttling)")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if showVersion {
		fmt.Fprintf(fs.Output(), "eatgo %s\n", version)
		return nil, ErrVersionRequested
	}

	// Fall back to env for anything not given as a flag
	if config.APIBaseURL == "" {
		config.APIBaseURL = envOr("EATGO_API_URL", api.DefaultBaseURL)
	}
	if config.LoginBaseURL == "" {
		config.LoginBaseURL = envOr("EATGO_LOGIN_URL", api.DefaultLoginBaseURL)
	}
	if config.DBPath == "" {
		config.DBPath = os.Getenv("EATGO_DB")
	}
	if logLevel == "" {
		logLevel = envOr("EATGO_LOG_LEVEL", "info")
	}
	if err := config.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	if config.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}
	if config.RateLimit < 0 {
		return nil, fmt.Errorf("rate must not be negative, got %v", config.RateLimit)
	}

	// Set default paths if not specified
	if config.DBPath == "" || config.LogPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, ".eatgo")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if config.DBPath == "" {
			config.DBPath = filepath.Join(configDir, "eatgo.db")
		}
		if config.LogPath == "" {
			config.LogPath = filepath.Join(configDir, "eatgo.log")
		}
	}

	return config, nil
}

// NewLogger opens the log file and returns a JSON logger writing to it.
// The terminal belongs to the UI, so nothing is logged to stderr.
func NewLogger(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}

		value = strings.Trim(value, `"'`)
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
}
