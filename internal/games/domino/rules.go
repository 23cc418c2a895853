package domino

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-domino/internal/core"
)

// Validation errors returned by Rules.Validate and New.
var (
	ErrInvalidBoard   = errors.New("domino: invalid board size")
	ErrInvalidPalette = errors.New("domino: invalid palette")
	ErrInvalidScoring = errors.New("domino: invalid scoring")
	ErrNoScheduler    = errors.New("domino: scheduler is required")
)

// Rules fixes everything about a game that does not change while playing.
type Rules struct {
	Rows        int
	Cols        int
	MinGroup    int
	Palette     []core.Color
	Scoring     Scoring
	ElapsedTick time.Duration // Period of the elapsed-seconds counter
}

// DefaultPalette is the five-color classic palette.
func DefaultPalette() []core.Color {
	return []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorBlue, core.ColorMagenta}
}

// DefaultRules returns the classic 18x10 rules.
func DefaultRules() Rules {
	return Rules{
		Rows:        18,
		Cols:        10,
		MinGroup:    DefaultMinGroup,
		Palette:     DefaultPalette(),
		Scoring:     DefaultScoring(),
		ElapsedTick: time.Second,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	if r.Rows < 2 || r.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoard, r.Rows, r.Cols)
	}
	if r.MinGroup < 2 {
		return fmt.Errorf("%w: min group %d", ErrInvalidBoard, r.MinGroup)
	}
	if len(r.Palette) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPalette)
	}
	seen := make(map[core.Color]bool, len(r.Palette))
	for _, c := range r.Palette {
		if c == core.ColorDefault {
			return fmt.Errorf("%w: default color is reserved for empty cells", ErrInvalidPalette)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate color %s", ErrInvalidPalette, c)
		}
		seen[c] = true
	}
	sc := r.Scoring
	if sc.PointsPerBlock < 0 || sc.DropPoints < 0 || sc.LevelStep <= 0 {
		return fmt.Errorf("%w: points and level step must be positive", ErrInvalidScoring)
	}
	if sc.MinInterval <= 0 || sc.BaseInterval < sc.MinInterval || sc.IntervalStep < 0 {
		return fmt.Errorf("%w: intervals base=%s step=%s min=%s", ErrInvalidScoring,
			sc.BaseInterval, sc.IntervalStep, sc.MinInterval)
	}
	if r.ElapsedTick <= 0 {
		return fmt.Errorf("%w: elapsed tick must be positive", ErrInvalidScoring)
	}
	return nil
}
