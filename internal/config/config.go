package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Places PlacesConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type PlacesConfig struct {
	APIKey         string
	BaseURL        string
	Language       string
	Types          string
	DetailFields   string
	RequestTimeout int // seconds
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален: в контейнере конфигурация приходит из окружения
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Places: PlacesConfig{
			APIKey:         viper.GetString("PLACES_API_KEY"),
			BaseURL:        viper.GetString("PLACES_BASE_URL"),
			Language:       viper.GetString("PLACES_LANGUAGE"),
			Types:          viper.GetString("PLACES_TYPES"),
			DetailFields:   viper.GetString("PLACES_DETAIL_FIELDS"),
			RequestTimeout: viper.GetInt("PLACES_REQUEST_TIMEOUT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = "https://maps.googleapis.com/maps/api/place"
	}
	if cfg.Places.Language == "" {
		cfg.Places.Language = "en"
	}
	if cfg.Places.Types == "" {
		cfg.Places.Types = "geocode"
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Places.APIKey == "" {
		return nil, fmt.Errorf("PLACES_API_KEY is required")
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
