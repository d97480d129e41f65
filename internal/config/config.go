package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/aayushbajaj/wordle-assist/internal/daily"
	"github.com/joho/godotenv"
)

type Config struct {
	Logging LoggingConfig
	Game    GameConfig
	Suggest SuggestConfig
	Storage StorageConfig
	Display DisplayConfig
}

type LoggingConfig struct {
	Level string
}

type GameConfig struct {
	Easy  bool
	Epoch time.Time
}

type SuggestConfig struct {
	Count   int
	Workers int
}

type StorageConfig struct {
	DataDir  string
	CorpusDB bool
}

type DisplayConfig struct {
	Theme string
}

// Load reads configuration from the environment. A .env file in the working
// directory (or the file named by WORDLE_ENV_FILE) is applied first; variables
// already set in the environment win.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	game, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	suggest, err := loadSuggestConfig()
	if err != nil {
		return nil, err
	}

	storage, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Logging: loadLoggingConfig(),
		Game:    game,
		Suggest: suggest,
		Storage: storage,
		Display: loadDisplayConfig(),
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadDotEnv() error {
	path := getEnvString("WORDLE_ENV_FILE", ".env")
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: getEnvString("WORDLE_LOG_LEVEL", "warn"),
	}
}

func loadGameConfig() (GameConfig, error) {
	epoch := daily.Epoch
	if value := getEnvString("WORDLE_EPOCH", ""); value != "" {
		parsed, err := daily.ParseEpoch(value)
		if err != nil {
			return GameConfig{}, err
		}
		epoch = parsed
	}

	easy, err := getEnvBool("WORDLE_EASY", false)
	if err != nil {
		return GameConfig{}, err
	}

	return GameConfig{
		Easy:  easy,
		Epoch: epoch,
	}, nil
}

func loadSuggestConfig() (SuggestConfig, error) {
	count, err := getEnvInt("WORDLE_SUGGEST_COUNT", 20)
	if err != nil {
		return SuggestConfig{}, err
	}

	workers, err := getEnvInt("WORDLE_WORKERS", runtime.GOMAXPROCS(0))
	if err != nil {
		return SuggestConfig{}, err
	}

	return SuggestConfig{
		Count:   count,
		Workers: workers,
	}, nil
}

func loadStorageConfig() (StorageConfig, error) {
	dataDir := getEnvString("WORDLE_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return StorageConfig{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share", "wordle")
	}

	corpusDB, err := getEnvBool("WORDLE_CORPUS_DB", false)
	if err != nil {
		return StorageConfig{}, err
	}

	return StorageConfig{
		DataDir:  dataDir,
		CorpusDB: corpusDB,
	}, nil
}

func loadDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Theme: getEnvString("WORDLE_THEME", "default"),
	}
}
