package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL       = "https://api.binance.com"
	DefaultAPITimeout    = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultDBPort        = 5432
	DefaultDBSSLMode     = "prefer"
	DefaultMaxConns      = 10
	DefaultMinConns      = 2
	DefaultTradeLimit    = 20
	DefaultDepthLimit    = 100
	DefaultKlineInterval = "1m"
	DefaultKlineLimit    = 100
	DefaultConcurrency   = 4
	DefaultPairTimeout   = 10 * time.Second
	DefaultMetricsPort   = 9090
	DefaultMetricsPath   = "/metrics"
)

// DefaultSymbols is the polled pair universe when none is configured.
var DefaultSymbols = []string{"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT", "XRPUSDT"}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Symbol universe
	if len(c.Symbols) == 0 {
		c.Symbols = append([]string(nil), DefaultSymbols...)
	}

	// Pipeline defaults
	if c.Pipeline.TradeLimit == 0 {
		c.Pipeline.TradeLimit = DefaultTradeLimit
	}
	if c.Pipeline.DepthLimit == 0 {
		c.Pipeline.DepthLimit = DefaultDepthLimit
	}
	if c.Pipeline.KlineInterval == "" {
		c.Pipeline.KlineInterval = DefaultKlineInterval
	}
	if c.Pipeline.KlineLimit == 0 {
		c.Pipeline.KlineLimit = DefaultKlineLimit
	}
	if c.Pipeline.Concurrency == 0 {
		c.Pipeline.Concurrency = DefaultConcurrency
	}
	if c.Pipeline.PairTimeout == 0 {
		c.Pipeline.PairTimeout = DefaultPairTimeout
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
