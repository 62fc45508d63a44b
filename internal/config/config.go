// Package config loads process configuration from the environment, in the
// style of noah-isme-sma-adp-api/pkg/config: a .env file loaded via
// godotenv, read through viper with explicit defaults, and returned as a
// plain struct.
package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full set of environment-driven settings spec.md §6 names.
type Config struct {
	PeriodsPerDay     int
	DaysPerWeek       int
	APIMaxNSolutions  int
	Port              int
	LogLevel          string
}

// Load reads configuration from the environment (and an optional .env
// file), applying the defaults spec.md §6 specifies.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PERIODS_PER_DAY", 26)
	v.SetDefault("DAYS_PER_WEEK", 5)
	v.SetDefault("API_MAX_N_SOLUTIONS", 999)
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		PeriodsPerDay:    v.GetInt("PERIODS_PER_DAY"),
		DaysPerWeek:      v.GetInt("DAYS_PER_WEEK"),
		APIMaxNSolutions: v.GetInt("API_MAX_N_SOLUTIONS"),
		Port:             v.GetInt("PORT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}, nil
}
