package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the demo server and client.
type Config struct {
	HTTPAddr string `yaml:"httpAddr"`
	GRPCAddr string `yaml:"grpcAddr"`
	// DBPath is handed to the sqlite driver as its data source name.
	DBPath string `yaml:"dbPath"`
	// ValidatorFailEvery makes the fake validator fail one request in N.
	ValidatorFailEvery int           `yaml:"validatorFailEvery"`
	RequestTimeout     time.Duration `yaml:"requestTimeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdownTimeout"`
}

func Default() Config {
	return Config{
		HTTPAddr:           "localhost:8080",
		GRPCAddr:           "localhost:9090",
		DBPath:             "file:flowdemo?mode=memory&cache=shared",
		ValidatorFailEvery: 4,
		RequestTimeout:     5 * time.Second,
		ShutdownTimeout:    5 * time.Second,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the outcome.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if c.HTTPAddr == "" {
		err = multierr.Append(err, errors.New("httpAddr is required"))
	}
	if c.GRPCAddr == "" {
		err = multierr.Append(err, errors.New("grpcAddr is required"))
	}
	if c.DBPath == "" {
		err = multierr.Append(err, errors.New("dbPath is required"))
	}
	if c.ValidatorFailEvery < 1 {
		err = multierr.Append(err, fmt.Errorf("validatorFailEvery must be at least 1, got %d", c.ValidatorFailEvery))
	}
	if c.RequestTimeout <= 0 {
		err = multierr.Append(err, errors.New("requestTimeout must be positive"))
	}
	return err
}
