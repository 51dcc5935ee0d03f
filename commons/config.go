package commons

import (
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

type Config struct {
	Environment       string
	Port              int
	FrontendURL       string
	LogLevel          string
	// MaxImageSize is in bytes. MAX_IMAGE_SIZE follows go-humanize: "10MB" is
	// decimal (10,000,000), "10MiB" is binary.
	MaxImageSize      int64
	MaxImagePixels    int64
	AllowedImageTypes []string
	SentryDSN         string
	MaxWorkers        int
	MaxWorkerQueue    int
}

func DefaultConfig() Config {
	return Config{
		Environment:       EnvDevelopment,
		Port:              5001,
		FrontendURL:       "http://localhost:3000",
		LogLevel:          "INFO",
		MaxImageSize:      10 * humanize.MiByte,
		MaxImagePixels:    25_000_000,
		AllowedImageTypes: []string{"jpg", "jpeg", "png", "gif", "webp"},
		MaxWorkers:        5,
		MaxWorkerQueue:    100,
	}
}

// LoadConfig reads an optional .env file from the working directory and then
// the process environment. Values that can't be parsed keep their default.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warning("[Config] Couldn't read .env file: ", err.Error())
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()

	env := getenv("APP_ENV")
	if env == "" {
		env = getenv("FLASK_ENV")
	}
	switch strings.ToLower(env) {
	case EnvProduction:
		cfg.Environment = EnvProduction
	case EnvTesting:
		cfg.Environment = EnvTesting
	case "", EnvDevelopment:
	default:
		log.Warning("[Config] Unknown environment ", env, ", using ", EnvDevelopment)
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = intOrDefault("PORT", v, cfg.Port)
	}
	if v := getenv("FRONTEND_URL"); v != "" {
		cfg.FrontendURL = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToUpper(v)
	}
	switch cfg.Environment {
	case EnvDevelopment:
		cfg.LogLevel = "DEBUG"
	case EnvProduction:
		cfg.LogLevel = "WARNING"
	}

	if v := getenv("MAX_IMAGE_SIZE"); v != "" {
		size, err := humanize.ParseBytes(v)
		if err != nil || size == 0 {
			log.Warning("[Config] Invalid MAX_IMAGE_SIZE ", v, ", using ", humanize.IBytes(uint64(cfg.MaxImageSize)))
		} else {
			cfg.MaxImageSize = int64(size)
		}
	}
	if v := getenv("MAX_IMAGE_PIXELS"); v != "" {
		if n := intOrDefault("MAX_IMAGE_PIXELS", v, 0); n > 0 {
			cfg.MaxImagePixels = int64(n)
		}
	}
	if v := getenv("ALLOWED_IMAGE_TYPES"); v != "" {
		var types []string
		for _, t := range strings.Split(v, ",") {
			t = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(t), "."))
			if t != "" {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			cfg.AllowedImageTypes = types
		}
	}
	cfg.SentryDSN = getenv("SENTRY_DSN")

	if v := getenv("MAX_WORKERS"); v != "" {
		cfg.MaxWorkers = intOrDefault("MAX_WORKERS", v, cfg.MaxWorkers)
	}
	if v := getenv("MAX_WORKER_QUEUE_SIZE"); v != "" {
		cfg.MaxWorkerQueue = intOrDefault("MAX_WORKER_QUEUE_SIZE", v, cfg.MaxWorkerQueue)
	}
	return cfg
}

func intOrDefault(name, value string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || i < 0 {
		log.Warning("[Config] Invalid ", name, " ", value, ", using ", def)
		return def
	}
	return i
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// IsAllowedImageType reports whether ext (with or without the leading dot)
// is one of the configured upload types.
func (c Config) IsAllowedImageType(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, t := range c.AllowedImageTypes {
		if t == ext {
			return true
		}
	}
	return false
}
