package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns defaultValue when key is unset and an error when it is
// set to something that is not an integer.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false, got %q", key, value)
	}
	return boolValue, nil
}

func validate(config *Config) error {
	if err := validateLoggingConfig(config.Logging); err != nil {
		return err
	}
	if err := validateSuggestConfig(config.Suggest); err != nil {
		return err
	}
	if err := validateStorageConfig(config.Storage); err != nil {
		return err
	}
	if err := validateDisplayConfig(config.Display); err != nil {
		return err
	}
	return nil
}

func validateLoggingConfig(config LoggingConfig) error {
	if _, err := zerolog.ParseLevel(config.Level); err != nil {
		return errors.New("log level must be one of trace, debug, info, warn, error, fatal, panic, disabled")
	}
	return nil
}

func validateSuggestConfig(config SuggestConfig) error {
	if config.Count <= 0 {
		return errors.New("suggest count must be positive")
	}
	if config.Count > 10000 {
		return errors.New("suggest count cannot exceed 10000")
	}
	if config.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	return nil
}

func validateStorageConfig(config StorageConfig) error {
	if config.DataDir == "" {
		return errors.New("data directory cannot be empty")
	}
	return nil
}

func validateDisplayConfig(config DisplayConfig) error {
	if config.Theme == "" {
		return errors.New("theme cannot be empty")
	}
	return nil
}
