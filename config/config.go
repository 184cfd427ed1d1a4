// SPDX-License-Identifier: MIT
//
// Package config loads geograph settings from defaults, an optional YAML
// file and GEOGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable:
// GEOGRAPH_SEARCH_MAX_DISTANCE → search.max_distance.
const EnvPrefix = "GEOGRAPH"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: validation failed")

// Config holds all library configuration.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Search  SearchConfig  `mapstructure:"search"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type GraphConfig struct {
	StrictNodes     bool `mapstructure:"strict_nodes"`
	DefaultDirected bool `mapstructure:"default_directed"`
}

// SearchConfig limits every search. Zero means no limit.
type SearchConfig struct {
	MaxDistance      float64 `mapstructure:"max_distance"`
	InfEdgeThreshold float64 `mapstructure:"inf_edge_threshold"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

const (
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultMetricsNamespace = "geograph"
)

// Default returns the configuration used when no file or environment
// variable overrides anything.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: defaultMetricsNamespace,
		},
	}
}

// setDefaults registers every key so AutomaticEnv can override it on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("graph.strict_nodes", d.Graph.StrictNodes)
	v.SetDefault("graph.default_directed", d.Graph.DefaultDirected)
	v.SetDefault("search.max_distance", d.Search.MaxDistance)
	v.SetDefault("search.inf_edge_threshold", d.Search.InfEdgeThreshold)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
}

// Load reads configuration from file and environment variables.
//
// The file is geograph.yaml, looked up in dirs, or in "." and "./configs"
// when dirs is empty. A missing file is not an error; a malformed one is.
func Load(dirs ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Config file (optional)
	v.SetConfigName("geograph")
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		dirs = []string{".", "./configs"}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: GEOGRAPH_LOG_LEVEL → log.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every field is sane and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Search.MaxDistance < 0 || math.IsNaN(c.Search.MaxDistance) {
		errs = append(errs, fmt.Sprintf("search.max_distance must be >= 0, got %g", c.Search.MaxDistance))
	}
	if c.Search.InfEdgeThreshold < 0 || math.IsNaN(c.Search.InfEdgeThreshold) {
		errs = append(errs, fmt.Sprintf("search.inf_edge_threshold must be >= 0, got %g", c.Search.InfEdgeThreshold))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, "metrics.namespace is required when metrics are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}
