package config

import "time"

// Config is the root configuration for an ingestor instance.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Database DBConfig       `yaml:"database"`
	Symbols  []string       `yaml:"symbols"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Poller   PollerConfig   `yaml:"poller"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// APIConfig holds Binance REST API settings.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// DBConfig holds the PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// PipelineConfig holds per-endpoint request parameters and cycle limits.
type PipelineConfig struct {
	TradeLimit    int           `yaml:"trade_limit"`
	DepthLimit    int           `yaml:"depth_limit"`
	KlineInterval string        `yaml:"kline_interval"`
	KlineLimit    int           `yaml:"kline_limit"`
	Concurrency   int           `yaml:"concurrency"`
	PairTimeout   time.Duration `yaml:"pair_timeout"`
}

// PollerConfig holds the scheduling loop settings. An interval of zero
// means run one cycle on start and exit.
type PollerConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// MetricsConfig holds the health/metrics HTTP server settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
