package utils

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// NewLogger configures the standard logrus logger used across the service.
func NewLogger(level string, format string) (*log.Logger, error) {
	logger := log.StandardLogger()

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)

	switch format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return logger, nil
}
