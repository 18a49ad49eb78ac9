package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger
var memory *MemoryHook

func init() {
	logger = logrus.New()
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		if level == "DEBUG" {
			logger.SetLevel(logrus.DebugLevel)
		} else if level == "WARN" {
			logger.SetLevel(logrus.WarnLevel)
		} else if level == "INFO" {
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel) // Default level; adjustable
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	memory = NewMemoryHook(1000)
	logger.AddHook(memory)
}

// GetLogger returns the shared logger instance
func GetLogger() *logrus.Logger {
	return logger
}

// Memory returns the hook capturing process-local log entries for export.
func Memory() *MemoryHook {
	return memory
}
