// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like VOTEVIEW_BASE_URL
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, ignored when absent
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env from the locations we run from (repo root, package
// dirs during tests).
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "voteview-client"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Voteview.BaseURL == "" {
		cfg.Voteview.BaseURL = "https://voteview.com"
	}
	if cfg.Voteview.SearchPath == "" {
		cfg.Voteview.SearchPath = "/api/search"
	}
	if cfg.Voteview.MembersPath == "" {
		cfg.Voteview.MembersPath = "/api/getmembers"
	}
	if cfg.Voteview.DownloadPath == "" {
		cfg.Voteview.DownloadPath = "/api/download"
	}
	if cfg.Voteview.RequestTimeout <= 0 {
		cfg.Voteview.RequestTimeout = 30000
	}
	if cfg.Cache.Address == "" {
		cfg.Cache.Address = "localhost:6379"
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 300
	}
	if cfg.Download.ChunkSize <= 0 {
		cfg.Download.ChunkSize = 50
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func validateConfig(cfg *Config) error {
	if !strings.HasPrefix(cfg.Voteview.BaseURL, "http://") &&
		!strings.HasPrefix(cfg.Voteview.BaseURL, "https://") {
		return fmt.Errorf("voteview.base_url must be an http(s) URL, got %q", cfg.Voteview.BaseURL)
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache.enabled is true")
	}
	return nil
}
