// Package config loads application configuration from an optional
// tripplan.env file and environment variables, with sane defaults for
// everything — the planner must start with zero configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// APIConfig holds the base URLs of the public destination APIs.
// They exist so tests (and the occasional mirror deployment) can repoint a
// client; production values are the defaults.
type APIConfig struct {
	GeocodingBaseURL string
	WeatherBaseURL   string
	CountriesBaseURL string
	PrayerBaseURL    string
	CurrencyBaseURL  string

	// Timeout bounds every outbound request. Lookups are best-effort, so a
	// slow API degrades to "unavailable" rather than hanging the command.
	Timeout time.Duration
}

// Config holds all configuration values for the planner.
type Config struct {
	// DataPath is the SQLite file holding the persisted trip document.
	// Defaults to tripplan.db under the user config directory.
	DataPath string

	// LogLevel controls the minimum log level. Defaults to "warn" — the
	// CLI's stdout belongs to command output, not logs.
	// Valid values: debug, info, warn, error.
	LogLevel string

	API APIConfig
}

// Load reads configuration and returns a Config. A missing config file is
// fine; environment variables (TRIPPLAN_DATA_PATH, TRIPPLAN_LOG_LEVEL, ...)
// override file values.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("tripplan")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tripplan"))
	}
	v.SetEnvPrefix("TRIPPLAN")
	v.AutomaticEnv()

	v.SetDefault("DATA_PATH", defaultDataPath())
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com")
	v.SetDefault("WEATHER_URL", "https://api.open-meteo.com")
	v.SetDefault("COUNTRIES_URL", "https://restcountries.com")
	v.SetDefault("PRAYER_URL", "https://api.aladhan.com")
	v.SetDefault("CURRENCY_URL", "https://api.exchangerate.host")

	// The config file is optional; only env vars and defaults are required.
	_ = v.ReadInConfig()

	cfg := Config{
		DataPath: v.GetString("DATA_PATH"),
		LogLevel: v.GetString("LOG_LEVEL"),
		API: APIConfig{
			GeocodingBaseURL: v.GetString("GEOCODING_URL"),
			WeatherBaseURL:   v.GetString("WEATHER_URL"),
			CountriesBaseURL: v.GetString("COUNTRIES_URL"),
			PrayerBaseURL:    v.GetString("PRAYER_URL"),
			CurrencyBaseURL:  v.GetString("CURRENCY_URL"),
			Timeout:          v.GetDuration("API_TIMEOUT"),
		},
	}

	if cfg.DataPath == "" {
		return Config{}, fmt.Errorf("config.Load: DATA_PATH resolved empty")
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
	}

	return cfg, nil
}

// defaultDataPath places the trip database under the user config directory,
// falling back to the working directory when none is resolvable.
func defaultDataPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tripplan.db"
	}
	return filepath.Join(dir, "tripplan", "tripplan.db")
}
