// Package config provides YAML-based game configuration loading and
// difficulty presets for the domino game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-domino/internal/core"
)

// DominoConfig contains all configuration for the domino game.
type DominoConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Match   MatchConfig   `yaml:"match"`
	Palette []string      `yaml:"palette"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timer   TimerConfig   `yaml:"timer"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MatchConfig defines cluster matching.
type MatchConfig struct {
	MinGroup int `yaml:"min_group"`
}

// ScoringConfig defines points and speed progression.
type ScoringConfig struct {
	PointsPerBlock int  `yaml:"points_per_block"` // Multiplied by chain depth
	LevelStep      int  `yaml:"level_step"`       // Score per level
	BaseIntervalMs int  `yaml:"base_interval_ms"` // Drop interval at level 1
	IntervalStepMs int  `yaml:"interval_step_ms"` // Reduction per level
	MinIntervalMs  int  `yaml:"min_interval_ms"`  // Floor
	DropPoints     int  `yaml:"drop_points"`      // Points per hard-drop row
	Fixed          bool `yaml:"fixed"`            // Disable speed-up
}

// TimerConfig defines the elapsed-time counter.
type TimerConfig struct {
	ElapsedMs int `yaml:"elapsed_ms"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid domino config")

// Colors resolves the palette names.
func (c DominoConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate performs basic sanity checks. Rule-level checks (duplicate
// colors, interval ordering) are left to the engine.
func (c DominoConfig) Validate() error {
	if c.Board.Rows < 2 || c.Board.Cols < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	}
	if c.Match.MinGroup < 2 {
		return fmt.Errorf("%w: min_group %d", ErrInvalidConfig, c.Match.MinGroup)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if c.Scoring.LevelStep <= 0 {
		return fmt.Errorf("%w: level_step must be positive", ErrInvalidConfig)
	}
	if c.Scoring.MinIntervalMs <= 0 || c.Scoring.BaseIntervalMs < c.Scoring.MinIntervalMs {
		return fmt.Errorf("%w: intervals base=%d min=%d", ErrInvalidConfig,
			c.Scoring.BaseIntervalMs, c.Scoring.MinIntervalMs)
	}
	if c.Timer.ElapsedMs <= 0 {
		return fmt.Errorf("%w: elapsed_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyDominoPreset modifies the config based on a difficulty preset.
func ApplyDominoPreset(cfg *DominoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// Fewer colors make clusters far more likely
		if len(cfg.Palette) > 4 {
			cfg.Palette = cfg.Palette[:4]
		}
	case DifficultyHard:
		cfg.Scoring.BaseIntervalMs = 700
		if cfg.Scoring.MinIntervalMs > cfg.Scoring.BaseIntervalMs {
			cfg.Scoring.MinIntervalMs = cfg.Scoring.BaseIntervalMs
		}
	case DifficultyFixed:
		cfg.Scoring.Fixed = true
	}
}
