package config

import (
	"errors"
	"io/fs"
	"os"

	"bank-analyzer/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from .env in the working directory, if present.
// Variables already set in the environment win over the file.
func LoadEnv(logger logging.Logger) error {
	return LoadEnvFile(".env", logger)
}

// LoadEnvFile is LoadEnv for an explicit path. A missing file is not an error.
func LoadEnvFile(path string, logger logging.Logger) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if logger != nil {
			logger.Debug("No .env file found, using environment variables")
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, path))
	}
	return nil
}
