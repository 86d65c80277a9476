package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Parse decodes YAML, applies defaults and validates. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads path; an empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Loader holds the current configuration and reloads it on demand or on
// file changes.
type Loader struct {
	path     string
	log      *zap.Logger
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader creates a Loader and performs the initial load. A nil logger
// disables logging.
func NewLoader(path string, log *zap.Logger) (*Loader, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{path: path, log: log}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Path returns the watched file ("" when running on defaults).
func (l *Loader) Path() string { return l.path }

// Config returns the current configuration. Callers must not mutate it.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file. On failure the previous configuration stays.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch hot-reloads the configuration whenever the file is written or
// replaced. Invalid edits are logged and ignored. Call stop to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	if l.path == "" {
		return func() {}, nil
	}

	return WatchFile(l.path, l.log, func() {
		if _, err := l.Reload(); err != nil {
			l.log.Warn("config reload rejected", zap.String("path", l.path), zap.Error(err))
			return
		}
		l.log.Info("config reloaded", zap.String("path", l.path))
	})
}
