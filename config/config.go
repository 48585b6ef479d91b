// Package config loads reliefplan settings from defaults, an optional
// config file and RELIEF_* environment variables, in that order of
// increasing precedence.
//
//	RELIEF_LOG_LEVEL=debug
//	RELIEF_LIMITS_MAX_KNAPSACK_CELLS=50000000
//	RELIEF_PLANNER_WORKERS=8
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/reliefplan/core"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "RELIEF"

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log configures the zap logger built by package logger.
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// Flow carries FlowOptions numerics.
type Flow struct {
	Epsilon   float64 `mapstructure:"epsilon"`
	Precision int     `mapstructure:"precision"`
}

// Planner configures scenario execution.
type Planner struct {
	// Workers is the number of scenarios solved in parallel by RunBatch.
	Workers int `mapstructure:"workers"`

	// DefaultCapacity is the knapsack capacity used when a scenario omits
	// one (default 50); 0 means "use the scenario supply".
	DefaultCapacity int `mapstructure:"default_capacity"`
}

// Config is the full settings tree.
type Config struct {
	Log     Log         `mapstructure:"log"`
	Limits  core.Limits `mapstructure:"limits"`
	Flow    Flow        `mapstructure:"flow"`
	Planner Planner     `mapstructure:"planner"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{
			Level:      "info",
			Format:     "json",
			TimeFormat: time.RFC3339Nano,
		},
		Limits: core.DefaultLimits(),
		Flow: Flow{
			Epsilon:   1e-9,
			Precision: 6,
		},
		Planner: Planner{
			Workers:         4,
			DefaultCapacity: 50,
		},
	}
}

// Load reads path (if non-empty) and environment overrides on top of
// Default, then validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can find it during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.time_format", d.Log.TimeFormat)
	v.SetDefault("limits.max_knapsack_cells", d.Limits.MaxKnapsackCells)
	v.SetDefault("limits.max_flow_nodes", d.Limits.MaxFlowNodes)
	v.SetDefault("limits.max_mst_edges", d.Limits.MaxMSTEdges)
	v.SetDefault("flow.epsilon", d.Flow.Epsilon)
	v.SetDefault("flow.precision", d.Flow.Precision)
	v.SetDefault("planner.workers", d.Planner.Workers)
	v.SetDefault("planner.default_capacity", d.Planner.DefaultCapacity)
}

// Validate rejects settings no solver could honour.
func (c Config) Validate() error {
	switch {
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("%w: log.format %q (want json or console)", ErrInvalidConfig, c.Log.Format)
	case c.Limits.MaxKnapsackCells < 0, c.Limits.MaxFlowNodes < 0, c.Limits.MaxMSTEdges < 0:
		return fmt.Errorf("%w: limits must be non-negative: %+v", ErrInvalidConfig, c.Limits)
	case c.Flow.Epsilon <= 0:
		return fmt.Errorf("%w: flow.epsilon %g must be positive", ErrInvalidConfig, c.Flow.Epsilon)
	case c.Flow.Precision < 1 || c.Flow.Precision > 15:
		return fmt.Errorf("%w: flow.precision %d not in [1,15]", ErrInvalidConfig, c.Flow.Precision)
	case c.Planner.Workers < 1:
		return fmt.Errorf("%w: planner.workers %d must be at least 1", ErrInvalidConfig, c.Planner.Workers)
	case c.Planner.DefaultCapacity < 0:
		return fmt.Errorf("%w: planner.default_capacity %d is negative", ErrInvalidConfig, c.Planner.DefaultCapacity)
	}

	return nil
}
