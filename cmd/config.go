/**************************************************************************************************
** Configuration and environment management for the photokeep CLI.
** Handles logger configuration, environment variable loading, and global configuration state.
**************************************************************************************************/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/photokeep/photokeep/pkg/store"
	"github.com/sirupsen/logrus"
)

// Global configuration variables
var dataDir string
var stockDir string
var userName string

/**************************************************************************************************
** Configures the logger based on environment variables. Sets up the log level and format
** according to LOG_LEVEL and LOG_FORMAT environment variables.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Set log format from environment variable
	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	return logger
}

/**************************************************************************************************
** Loads environment variables and command-line flags, with flags taking precedence over
** env variables. Resolves the storage and stock directories.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	_ = godotenv.Load()
	logger := configureLogger()
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "data"
	}
	if stockDir == "" {
		stockDir = os.Getenv("STOCK_DIR")
	}
	if stockDir == "" {
		stockDir = "stock_photos"
	}
	return logger
}

/**************************************************************************************************
** openLibrary loads the environment, opens the storage directory and returns the library
** together with its configured logger.
**************************************************************************************************/
func openLibrary() (*store.Library, *logrus.Logger, error) {
	logger := loadEnv()
	library, err := store.Open(dataDir, stockDir, logger)
	if err != nil {
		return nil, logger, fmt.Errorf("opening library at %q: %w", dataDir, err)
	}
	return library, logger, nil
}
