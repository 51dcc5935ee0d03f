package commons

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDefaults(t *testing.T) {
	cfg := configFromEnv(envOf(nil))
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxImageSize)
	assert.Equal(t, int64(25_000_000), cfg.MaxImagePixels)
	assert.Equal(t, []string{"jpg", "jpeg", "png", "gif", "webp"}, cfg.AllowedImageTypes)
	assert.Empty(t, cfg.SentryDSN)
	assert.Equal(t, 5, cfg.MaxWorkers)
	assert.Equal(t, 100, cfg.MaxWorkerQueue)
}

func TestConfigFromEnv(t *testing.T) {
	cfg := configFromEnv(envOf(map[string]string{
		"FLASK_ENV":             "testing",
		"PORT":                  "8080",
		"FRONTEND_URL":          "https://ecoshare.example",
		"LOG_LEVEL":             "error",
		"MAX_IMAGE_SIZE":        "2MB",
		"MAX_IMAGE_PIXELS":      "1000000",
		"ALLOWED_IMAGE_TYPES":   "PNG, .jpg ,",
		"SENTRY_DSN":            "https://key@sentry.example/1",
		"MAX_WORKERS":           "8",
		"MAX_WORKER_QUEUE_SIZE": "20",
	}))
	assert.Equal(t, EnvTesting, cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://ecoshare.example", cfg.FrontendURL)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	assert.Equal(t, int64(2000000), cfg.MaxImageSize)
	assert.Equal(t, int64(1000000), cfg.MaxImagePixels)
	assert.Equal(t, []string{"png", "jpg"}, cfg.AllowedImageTypes)
	assert.Equal(t, "https://key@sentry.example/1", cfg.SentryDSN)
	assert.Equal(t, 8, cfg.MaxWorkers)
	assert.Equal(t, 20, cfg.MaxWorkerQueue)
}

func TestAppEnvWinsAndForcesLevel(t *testing.T) {
	cfg := configFromEnv(envOf(map[string]string{
		"APP_ENV":   "production",
		"FLASK_ENV": "testing",
		"LOG_LEVEL": "DEBUG",
	}))
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "WARNING", cfg.LogLevel)
}

func TestInvalidValuesKeepDefaults(t *testing.T) {
	cfg := configFromEnv(envOf(map[string]string{
		"APP_ENV":          "staging",
		"PORT":             "eighty",
		"MAX_IMAGE_SIZE":   "huge",
		"MAX_WORKERS":      "-3",
		"MAX_IMAGE_PIXELS": "0",
	}))
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxImageSize)
	assert.Equal(t, 5, cfg.MaxWorkers)
	assert.Equal(t, int64(25_000_000), cfg.MaxImagePixels)
}

func TestMaxImageSizeUnits(t *testing.T) {
	binary := configFromEnv(envOf(map[string]string{"MAX_IMAGE_SIZE": "10MiB"}))
	assert.Equal(t, DefaultConfig().MaxImageSize, binary.MaxImageSize)

	decimal := configFromEnv(envOf(map[string]string{"MAX_IMAGE_SIZE": "10MB"}))
	assert.Equal(t, int64(10_000_000), decimal.MaxImageSize)
}

func TestIsAllowedImageType(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsAllowedImageType(".JPG"))
	assert.True(t, cfg.IsAllowedImageType("webp"))
	assert.False(t, cfg.IsAllowedImageType(".exe"))
	assert.False(t, cfg.IsAllowedImageType(""))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, log.InfoLevel, ParseLogLevel("verbose"))
}

func TestSetupErrorReportingWithoutDSN(t *testing.T) {
	assert.NoError(t, SetupErrorReporting(DefaultConfig()))
}
