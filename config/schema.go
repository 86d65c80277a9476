// Package config loads, validates and watches the socialgraph YAML file.
//
// Defaults are applied after decoding, so a missing or partial file yields a
// usable configuration. Validation uses go-playground/validator struct tags.
package config

import "time"

// Config is the root of the YAML document.
type Config struct {
	Data       Data       `yaml:"data"`
	Coloring   Coloring   `yaml:"coloring"`
	Centrality Centrality `yaml:"centrality"`
	Server     Server     `yaml:"server"`
	Log        Log        `yaml:"log"`
}

// Data points at the graph dataset.
type Data struct {
	// Path is a CSV or JSON file; empty starts from an empty graph.
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"oneof=auto csv json"`

	// Watch reloads the dataset when the file changes (serve only).
	Watch bool `yaml:"watch"`
}

// Coloring configures Welsh–Powell.
type Coloring struct {
	Palette []string `yaml:"palette" validate:"dive,required"`
}

// Centrality configures the ranking endpoints.
type Centrality struct {
	TopK    int `yaml:"top_k" validate:"gte=0"`
	Workers int `yaml:"workers" validate:"gte=0"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `yaml:"addr" validate:"required"`
	RateLimit       float64       `yaml:"rate_limit" validate:"gte=0"`
	Burst           int           `yaml:"burst" validate:"gte=0"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

const (
	DefaultAddr            = ":8080"
	DefaultRateLimit       = 50
	DefaultBurst           = 100
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultTopK            = 5
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Data.Format == "" {
		cfg.Data.Format = "auto"
	}
	if cfg.Centrality.TopK == 0 {
		cfg.Centrality.TopK = DefaultTopK
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = DefaultRateLimit
	}
	if cfg.Server.Burst == 0 {
		cfg.Server.Burst = DefaultBurst
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
