// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Voteview VoteviewConfig `mapstructure:"voteview"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// VoteviewConfig holds the remote API endpoints and the request timeout.
type VoteviewConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	SearchPath     string `mapstructure:"search_path"`
	MembersPath    string `mapstructure:"members_path"`
	DownloadPath   string `mapstructure:"download_path"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// SearchURL returns the full roll-call search endpoint.
func (v VoteviewConfig) SearchURL() string {
	return v.BaseURL + v.SearchPath
}

// MembersURL returns the full member search endpoint.
func (v VoteviewConfig) MembersURL() string {
	return v.BaseURL + v.MembersPath
}

// DownloadURL returns the full bulk-download endpoint.
func (v VoteviewConfig) DownloadURL() string {
	return v.BaseURL + v.DownloadPath
}

// Timeout returns the request timeout as a duration.
func (v VoteviewConfig) Timeout() time.Duration {
	return time.Duration(v.RequestTimeout) * time.Millisecond
}

// CacheConfig holds the optional redis response cache settings.
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"` // seconds
}

// TTLDuration returns the cache TTL as a duration.
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type DownloadConfig struct {
	ChunkSize int `mapstructure:"chunk_size"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
