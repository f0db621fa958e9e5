package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mcoot/blockdrop/internal/factory"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/engine"
)

// Config holds CLI configuration
type Config struct {
	Output       string
	Seed         string
	DropInterval time.Duration
	Width        int
	Height       int
	ScoreBase    int
	Verbose      bool

	envErr error // Unusable environment value, reported by Validate
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	defaults := engine.DefaultConfig()
	dropInterval, envErr := getEnvDurationOrDefault("BLOCKDROP_DROP_INTERVAL", defaults.DropInterval)
	return &Config{
		Output:       getEnvOrDefault("BLOCKDROP_OUTPUT", "text"),
		Seed:         os.Getenv("BLOCKDROP_SEED"),
		DropInterval: dropInterval,
		Width:        defaults.Width,
		Height:       defaults.Height,
		ScoreBase:    defaults.ScoreBase,
		Verbose:      false,
		envErr:       envErr,
	}
}

// ClearDropIntervalEnv drops any BLOCKDROP_DROP_INTERVAL parse error; used
// when --drop-interval overrides the environment
func (c *Config) ClearDropIntervalEnv() {
	c.envErr = nil
}

// Validate checks flag values that cobra cannot
func (c *Config) Validate() error {
	if c.envErr != nil {
		return c.envErr
	}
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("%w: output must be text or json, got %q", model.ErrInvalidConfig, c.Output)
	}
	if _, err := c.seed(); err != nil {
		return err
	}
	return c.EngineConfig().Validate()
}

// EngineConfig returns the engine settings selected by flags
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Width:        c.Width,
		Height:       c.Height,
		DropInterval: c.DropInterval,
		ScoreBase:    c.ScoreBase,
	}
}

// FactoryConfig builds the application config
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	seed, err := c.seed()
	if err != nil {
		return factory.Config{}, err
	}
	return factory.Config{
		Engine: c.EngineConfig(),
		Seed:   seed,
		Logger: logger,
	}, nil
}

func (c *Config) seed() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed must be a non-negative integer, got %q", model.ErrInvalidConfig, c.Seed)
	}
	return &seed, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal, fmt.Errorf("%w: %s=%q is not a duration", model.ErrInvalidConfig, key, val)
	}
	return d, nil
}
