package schedsim

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/meta"
)

// Config is a serialisable representation of the simulator configuration.
// Zero fields of a loaded file keep the defaults.
type Config struct {
	Log       LogConfig       `json:"log" yaml:"log"`
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

type SchedulerConfig struct {
	// Quantum is used by round robin when a run does not set one.
	Quantum int `json:"quantum" yaml:"quantum"`
	// CompareQuanta lists the round robin quanta of a comparison run.
	CompareQuanta []int `json:"compareQuanta" yaml:"compareQuanta"`
}

type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	OutputFile  string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Scheduler: SchedulerConfig{
			Quantum:       policy.DefaultQuantum,
			CompareQuanta: []int{4, 2},
		},
		Tracing: TracingConfig{ServiceName: "schedsim"},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not supported", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q is not supported", c.Log.Format)
	}
	if c.Scheduler.Quantum <= 0 {
		return fmt.Errorf("scheduler.quantum must be > 0")
	}
	for _, quantum := range c.Scheduler.CompareQuanta {
		if quantum <= 0 {
			return fmt.Errorf("scheduler.compareQuanta must be > 0, got %d", quantum)
		}
	}
	return nil
}

// LoadConfig reads a YAML configuration over the defaults. ${env.NAME}
// expressions are expanded before decoding.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if URL == "" {
		return ret, nil
	}
	if err := meta.New(afs.New(), "").Load(ctx, URL, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
