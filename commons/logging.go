package commons

import (
	"errors"
	"strings"

	"github.com/getsentry/raven-go"
	log "github.com/sirupsen/logrus"
)

var logLevels = map[string]log.Level{
	"DEBUG":    log.DebugLevel,
	"INFO":     log.InfoLevel,
	"WARNING":  log.WarnLevel,
	"WARN":     log.WarnLevel,
	"ERROR":    log.ErrorLevel,
	"CRITICAL": log.FatalLevel,
}

func ParseLogLevel(level string) log.Level {
	if l, ok := logLevels[strings.ToUpper(level)]; ok {
		return l
	}
	return log.InfoLevel
}

func SetupLogging(cfg Config) {
	log.SetLevel(ParseLogLevel(cfg.LogLevel))
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// SetupErrorReporting points raven at the configured Sentry project. With an
// empty DSN it does nothing and reporting stays disabled.
func SetupErrorReporting(cfg Config) error {
	if cfg.SentryDSN == "" {
		log.Debug("[Main] Sentry DSN not set, error reporting disabled")
		return nil
	}
	if err := raven.SetDSN(cfg.SentryDSN); err != nil {
		return err
	}
	raven.SetEnvironment(cfg.Environment)
	return nil
}

// ReportError sends err to Sentry (when configured) and logs it under the
// caller's component prefix, e.g. "API".
func ReportError(component string, err error, tags map[string]string) {
	if err == nil {
		err = errors.New("unknown error")
	}
	log.WithFields(log.Fields{"tags": tags}).Error("[", component, "] ", err.Error())
	raven.CaptureError(err, tags)
}
