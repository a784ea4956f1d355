package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is process-wide configuration, loaded once at startup and passed
// explicitly to components.
type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	// JWTSecret signs access tokens. Required.
	JWTSecret string

	// ProblemsPerQuery caps how many records a single per-user listing
	// reads from the store.
	ProblemsPerQuery int
}

const (
	defaultPort             = "8080"
	defaultDBPath           = "tracker.db"
	defaultProblemsPerQuery = 1000
)

var errMissingJWTSecret = errors.New("jwt.secret must be set in config")

// Load reads configs/config.yml and returns a validated Config.
func Load() (*Config, error) {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("port", defaultPort)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("db.path", defaultDBPath)
	viper.SetDefault("limits.problems_per_query", defaultProblemsPerQuery)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Port:             viper.GetString("port"),
		LogLevel:         viper.GetString("log.level"),
		DBPath:           viper.GetString("db.path"),
		JWTSecret:        viper.GetString("jwt.secret"),
		ProblemsPerQuery: viper.GetInt("limits.problems_per_query"),
	}

	if cfg.JWTSecret == "" {
		return nil, errMissingJWTSecret
	}
	if cfg.ProblemsPerQuery <= 0 {
		cfg.ProblemsPerQuery = defaultProblemsPerQuery
	}
	return cfg, nil
}
