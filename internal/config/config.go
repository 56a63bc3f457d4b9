package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazetree/builder"
	"github.com/katalvlaran/mazetree/internal/logger"
)

// ErrInvalidConfig is wrapped by Validate for every rejected field.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the settings of one mazetree run.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Play    PlayConfig    `yaml:"play"`
	Logging logger.Config `yaml:"logging"`
}

// MazeConfig controls generation.
type MazeConfig struct {
	// Size is the number of rooms (at least 1).
	Size int `yaml:"size"`

	// Seed feeds the generator. 0 picks a seed from the clock.
	Seed int64 `yaml:"seed"`

	// Strategy is "iterative" or "recursive".
	Strategy string `yaml:"strategy"`
}

// PlayConfig controls the headless player.
type PlayConfig struct {
	// Detour is the probability, in [0,1], of taking a random link instead
	// of the hinted one.
	Detour float64 `yaml:"detour"`

	// MaxSteps bounds the number of moves; 0 means 100 × size.
	MaxSteps int `yaml:"max_steps"`
}

// DefaultConfig returns a Config for a 25-room maze played optimally.
func DefaultConfig() *Config {
	return &Config{
		Maze: MazeConfig{
			Size:     25,
			Seed:     0,
			Strategy: builder.StrategyIterative.String(),
		},
		Play: PlayConfig{
			Detour:   0,
			MaxSteps: 0,
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, nil
}

// Validate reports the first field outside its accepted range.
func (c *Config) Validate() error {
	if c.Maze.Size < 1 {
		return fmt.Errorf("%w: maze.size=%d must be at least 1", ErrInvalidConfig, c.Maze.Size)
	}
	if _, err := builder.ParseStrategy(c.Maze.Strategy); err != nil {
		return fmt.Errorf("%w: maze.strategy: %v", ErrInvalidConfig, err)
	}
	if c.Play.Detour < 0 || c.Play.Detour > 1 {
		return fmt.Errorf("%w: play.detour=%g must be within [0,1]", ErrInvalidConfig, c.Play.Detour)
	}
	if c.Play.MaxSteps < 0 {
		return fmt.Errorf("%w: play.max_steps=%d must not be negative", ErrInvalidConfig, c.Play.MaxSteps)
	}

	return nil
}

// StepLimit returns MaxSteps, or 100 × size when it is unset.
func (c *Config) StepLimit() int {
	if c.Play.MaxSteps > 0 {
		return c.Play.MaxSteps
	}

	return 100 * c.Maze.Size
}
