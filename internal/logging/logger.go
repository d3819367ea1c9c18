package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to out.
//
// level is one of silent, error, warn, info or debug; anything else logs
// errors only. format "json" selects the JSON formatter, anything else the
// text formatter.
func New(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(ParseLevel(level))

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			DisableTimestamp: false,
		})
	}
	return logger
}

// ParseLevel maps a configured level name to a logrus level.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}
