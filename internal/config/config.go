package config

import (
	"os"
	"wordsync/pkg/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "configs/config.yaml"

type Config struct {
	Timing struct {
		Strategy string `yaml:"strategy" env:"WORDSYNC_STRATEGY" env-default:"syllables"`
	} `yaml:"timing"`

	Playback struct {
		IntervalMs int `yaml:"interval_ms" env:"WORDSYNC_INTERVAL_MS" env-default:"100"`
	} `yaml:"playback"`

	Output struct {
		Format string `yaml:"format" env:"WORDSYNC_FORMAT" env-default:"table"`
	} `yaml:"output"`
}

// LoadConfig reads configs/config.yaml when present, falling back to
// environment variables only. A .env file is loaded first if one exists.
func LoadConfig() (*Config, error) {
	// Load .env file
	_ = godotenv.Load()

	var cfg Config
	if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := cleanenv.ReadConfig(defaultConfigPath, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}

	logger.Debug("Config loaded successfully")
	return &cfg, nil
}
