// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration (embedded to flatten env vars)
	Server ServerConfig

	// Database configuration (embedded to flatten env vars)
	Database DatabaseConfig

	// Logging configuration (embedded to flatten env vars)
	Log LogConfig

	// Redis configuration for the feed cache
	Redis RedisConfig

	// Object storage configuration
	Storage StorageConfig

	// YouTube Data API configuration
	Youtube YoutubeConfig

	// note.com OGP endpoint configuration
	Note NoteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// SiteBaseURL is the public site origin used in outward-facing links
	// such as the RSS feed (default: http://localhost:8080)
	SiteBaseURL string `envconfig:"SITE_BASE_URL" default:"http://localhost:8080"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password (required in production)
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the database name (default: kioku)
	Name string `envconfig:"DB_NAME" default:"kioku"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 25)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`

	// MaxIdleConns is the maximum number of idle connections (default: 5)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// Migrate runs embedded migrations on startup when true (default: true)
	Migrate bool `envconfig:"DB_MIGRATE" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// RedisConfig holds feed-cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	// Addr is the redis host:port; empty disables the feed cache
	Addr string `envconfig:"REDIS_ADDR" default:""`

	// Password is the redis password, if any
	Password string `envconfig:"REDIS_PASSWORD" default:""`

	// DB is the redis database index (default: 0)
	DB int `envconfig:"REDIS_DB" default:"0"`

	// FeedTTL is how long a computed feed stays cached (default: 60s)
	FeedTTL time.Duration `envconfig:"REDIS_FEED_TTL" default:"60s"`
}

// StorageConfig holds MinIO/S3-compatible object storage settings.
type StorageConfig struct {
	// Endpoint is the storage host:port (default: localhost:9000)
	Endpoint string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`

	// AccessKey is the storage access key
	AccessKey string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`

	// SecretKey is the storage secret key
	SecretKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`

	// Bucket is the bucket uploaded files land in (default: kioku)
	Bucket string `envconfig:"STORAGE_BUCKET" default:"kioku"`

	// UseSSL toggles TLS for the storage connection (default: false)
	UseSSL bool `envconfig:"STORAGE_USE_SSL" default:"false"`

	// PublicBaseURL is the URL prefix uploaded objects resolve under,
	// e.g. a CDN origin. Returned URLs are PublicBaseURL + "/" + key.
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL" default:"http://localhost:9000/kioku"`
}

// YoutubeConfig holds YouTube Data API settings.
type YoutubeConfig struct {
	// APIKey authenticates against the YouTube Data API (required for
	// the youtube workflow)
	APIKey string `envconfig:"YOUTUBE_API_KEY" default:""`

	// BaseURL is the API endpoint, overridable in tests
	BaseURL string `envconfig:"YOUTUBE_BASE_URL" default:"https://www.googleapis.com/youtube/v3"`
}

// NoteConfig holds note.com OGP scraping settings.
type NoteConfig struct {
	// OGPBaseURL is the OGP proxy endpoint, overridable in tests
	OGPBaseURL string `envconfig:"NOTE_OGP_BASE_URL" default:"https://ogp.nw-union.net/api"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Redis); err != nil {
		return nil, fmt.Errorf("failed to load redis config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Storage); err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Youtube); err != nil {
		return nil, fmt.Errorf("failed to load youtube config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Note); err != nil {
		return nil, fmt.Errorf("failed to load note config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main.go during startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
