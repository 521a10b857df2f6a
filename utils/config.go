package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/model"
)

// ErrInvalidConfig is the cause of every error returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	CellSize         int     `json:"cell_size"`
	Rate             int     `json:"rate"`
	StartPaused      bool    `json:"start_paused"`
	UseMemoryPool    bool    `json:"use_memory_pool"`
	Pattern          string  `json:"pattern"`
	RandomDensity    float64 `json:"random_density"`
	Seed             int64   `json:"seed"`
	Generations      int     `json:"generations"`
	StopOnStagnation bool    `json:"stop_on_stagnation"`
	Title            string  `json:"title"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            100,
		Height:           100,
		CellSize:         5,
		Rate:             1,
		StartPaused:      true, // the board starts empty and still
		UseMemoryPool:    true,
		Pattern:          "",
		RandomDensity:    0.15,
		Seed:             0,
		Generations:      100,
		StopOnStagnation: true,
		Title:            "Game of Life",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}

	return config, nil
}

// Validate checks every field a run depends on
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size must be positive, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_size must be positive, got %d", c.CellSize)
	case c.Rate < 1:
		return errors.Wrapf(ErrInvalidConfig, "rate must be at least 1, got %d", c.Rate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "generations must not be negative, got %d", c.Generations)
	case !model.KnownPattern(c.Pattern):
		return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", c.Pattern)
	}
	return nil
}

// WindowSize returns the board size in pixels
func (c Config) WindowSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}
