package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
)

// MaxSearchDepth bounds SEARCH_DEPTH; the search is exhaustive per ply
const MaxSearchDepth = 12

type Config struct {
	Difficulty  string `mapstructure:"BOT_DIFFICULTY"`
	SearchDepth int    `mapstructure:"SEARCH_DEPTH"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogOutput   string `mapstructure:"LOG_OUTPUT"`
}

// LoadConfig reads envFile if it exists, then the process environment.
// Environment variables win over the file, as with godotenv.Load.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			log.Printf("No %s file found, using environment", envFile)
		}
	}

	v := viper.New()
	v.SetDefault("BOT_DIFFICULTY", string(bot.DifficultyHard))
	v.SetDefault("SEARCH_DEPTH", 0)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SearchDepth < 0 || cfg.SearchDepth > MaxSearchDepth {
		return nil, fmt.Errorf("SEARCH_DEPTH must be between 0 and %d (0 derives it from BOT_DIFFICULTY), got %d",
			MaxSearchDepth, cfg.SearchDepth)
	}

	return &cfg, nil
}

// Depth is SEARCH_DEPTH when set, otherwise the difficulty's depth
func (c *Config) Depth() int {
	if c.SearchDepth > 0 {
		return c.SearchDepth
	}
	return bot.ParseDifficulty(c.Difficulty).Depth()
}

// LogWarnings reports settings that were accepted but fell back to a default
func (c *Config) LogWarnings(log *zap.SugaredLogger) {
	if !bot.KnownDifficulty(c.Difficulty) {
		log.Warnw("unknown BOT_DIFFICULTY, using hard",
			"difficulty", c.Difficulty,
			"depth", c.Depth(),
		)
	}
}
