package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"bank-reconciliation/internal/config"
)

// Setup builds the application logger from config. Unknown levels fall
// back to info.
func Setup(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
