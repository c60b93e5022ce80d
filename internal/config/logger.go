// internal/config/logger.go
package config

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. Settings must be validated, so
// the level always parses.
func NewLogger(s Settings, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if s.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, _ := logrus.ParseLevel(s.LogLevel)
	log.SetLevel(level)
	log.SetOutput(out)
	return log
}
