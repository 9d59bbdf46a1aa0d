// Package logging builds the process logger. There is no package-level logger;
// the result of New is passed to whatever needs it.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

const ServiceName = "ncnews"

// New returns a logger writing to stderr. Prod gets JSON lines, everything else
// gets the text formatter for readability. An unknown level falls back to info.
func New(level string, prod bool) *logrus.Logger {
	return newLogger(os.Stderr, level, prod)
}

func newLogger(out io.Writer, level string, prod bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if prod {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Base attaches the fields every entry of this service carries.
func Base(logger *logrus.Logger, env string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"service": ServiceName,
		"env":     env,
	})
}

// Gorm routes gorm's statement logging through logrus: errors and slow queries only.
func Gorm(entry *logrus.Entry) gormlogger.Interface {
	return gormlogger.New(entry.WithField("component", "gorm"), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
