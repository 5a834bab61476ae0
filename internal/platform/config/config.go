// Package config loads quotebook settings from YAML files and APP_*
// environment variables and validates them.
package config

import "time"

// Config is shared by the service and the quotes CLI. The CLI only reads
// Log, Client, Services and Importer.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
	Cache     CacheConfig     `koanf:"cache"`
	Events    EventsConfig    `koanf:"events"`
	CORS      CORSConfig      `koanf:"cors"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Services  ServicesConfig  `koanf:"services"  validate:"required"`
	Importer  ImporterConfig  `koanf:"importer"  validate:"required"`
}

type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig tunes the quotes API listener.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	APIRoot         string        `koanf:"api_root"         validate:"required,startswith=/"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig adds a lumberjack-rotated JSON file next to stdout.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig points the OTLP exporters at a collector.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// DatabaseConfig selects and tunes the relational store.
type DatabaseConfig struct {
	// Driver is sqlite for a local file or mysql for a server.
	Driver string `koanf:"driver" validate:"required,oneof=sqlite mysql"`

	// DSN is a file path for sqlite and a go-sql-driver DSN for mysql.
	DSN string `koanf:"dsn" validate:"required"`

	// Replicas are read-only DSNs routed through dbresolver (mysql only).
	Replicas []string `koanf:"replicas"`

	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`

	// LogLevel is the gorm logger level.
	LogLevel string `koanf:"log_level" validate:"required,oneof=silent error warn info"`
}

// CacheConfig enables the redis cache in front of the tag list.
type CacheConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Addr     string `koanf:"addr"     validate:"required_if=Enabled true"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"       validate:"min=0"`
	TagTTL   int    `koanf:"tag_ttl"  validate:"min=0"`
}

// EventsConfig enables publishing domain events to RabbitMQ.
type EventsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	URL      string `koanf:"url"      validate:"required_if=Enabled true,omitempty,url"`
	Exchange string `koanf:"exchange" validate:"required_if=Enabled true"`
}

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	AllowAll       bool     `koanf:"allow_all"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// ClientConfig tunes the HTTP transport of the quotes client.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// RetryConfig is exponential backoff with jitter. MaxAttempts 1 means no
// retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig opens after MaxFailures consecutive failures and
// probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

type ServicesConfig struct {
	Quotes ServiceEndpointConfig `koanf:"quotes" validate:"required"`
}

// ServiceEndpointConfig locates a remote API. Name is used in errors and
// health checks.
type ServiceEndpointConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`
}

// ImporterConfig tunes bulk quote imports.
type ImporterConfig struct {
	Concurrency int `koanf:"concurrency" validate:"required,min=1,max=64"`
}
