// Package config loads lvroute settings with priority env > file > defaults.
//
// File format (YAML):
//
//	dataset:
//	  path: data/us-cities.yaml
//	server:
//	  addr: ":8080"
//	  cors_origins: ["http://localhost:5173"]
//	  rate_limit: 50      # requests per second, 0 disables
//	  burst: 100
//	search:
//	  default_algorithm: a-star
//	  timeout: 5s
//	  max_expansions: 0   # 0 = unlimited
//	  batch_concurrency: 8
//	log:
//	  level: info         # debug | info | warn | error
//	  format: text        # text | json
//
// Every key has an LVROUTE_* environment override, e.g. LVROUTE_SERVER_ADDR or
// LVROUTE_SEARCH_TIMEOUT.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full lvroute configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Server  ServerConfig  `yaml:"server"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig locates the graph document.
type DatasetConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string   `yaml:"addr" validate:"required"`
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
	RateLimit   float64  `yaml:"rate_limit" validate:"gte=0"`
	Burst       int      `yaml:"burst" validate:"gte=0"`
}

// SearchConfig bounds individual queries.
type SearchConfig struct {
	DefaultAlgorithm string        `yaml:"default_algorithm" validate:"required"`
	Timeout          time.Duration `yaml:"timeout" validate:"gte=0"`
	MaxExpansions    int           `yaml:"max_expansions" validate:"gte=0"`
	BatchConcurrency int           `yaml:"batch_concurrency" validate:"gte=1,lte=1024"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{Path: "data/us-cities.yaml"},
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"http://localhost:5173"},
			RateLimit:   50,
			Burst:       100,
		},
		Search: SearchConfig{
			DefaultAlgorithm: "a-star",
			Timeout:          5 * time.Second,
			BatchConcurrency: 8,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and LVROUTE_* environment variables, then validates the result.
// Errors: ErrInvalidConfig, also wrapping fs.ErrNotExist when a named file
// is missing.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks field constraints.
// Errors: ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

// loadEnv applies LVROUTE_* overrides. Unlike the file, a malformed number or
// duration in the environment is an error rather than silently ignored.
func loadEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	var errs []error
	integer := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = i
		}
	}

	str("LVROUTE_DATASET_PATH", &cfg.Dataset.Path)

	str("LVROUTE_SERVER_ADDR", &cfg.Server.Addr)
	if v, ok := os.LookupEnv("LVROUTE_SERVER_CORS_ORIGINS"); ok {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("LVROUTE_SERVER_RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("LVROUTE_SERVER_RATE_LIMIT: %w", err))
		} else {
			cfg.Server.RateLimit = f
		}
	}
	integer("LVROUTE_SERVER_BURST", &cfg.Server.Burst)

	str("LVROUTE_SEARCH_DEFAULT_ALGORITHM", &cfg.Search.DefaultAlgorithm)
	if v, ok := os.LookupEnv("LVROUTE_SEARCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LVROUTE_SEARCH_TIMEOUT: %w", err))
		} else {
			cfg.Search.Timeout = d
		}
	}
	integer("LVROUTE_SEARCH_MAX_EXPANSIONS", &cfg.Search.MaxExpansions)
	integer("LVROUTE_SEARCH_BATCH_CONCURRENCY", &cfg.Search.BatchConcurrency)

	str("LVROUTE_LOG_LEVEL", &cfg.Log.Level)
	str("LVROUTE_LOG_FORMAT", &cfg.Log.Format)

	return errors.Join(errs...)
}

// splitList splits a comma-separated value and drops blanks.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Logger builds the slog logger described by c, writing to w.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func (c LogConfig) level() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
