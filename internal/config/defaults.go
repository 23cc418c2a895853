package config

import (
	_ "embed"
)

//go:embed defaults/domino.yaml
var defaultDominoYAML []byte

// DefaultDominoConfig returns the classic configuration.
func DefaultDominoConfig() DominoConfig {
	return DominoConfig{
		Board: BoardConfig{
			Rows: 18,
			Cols: 10,
		},
		Match: MatchConfig{
			MinGroup: 3,
		},
		Palette: []string{"red", "yellow", "green", "blue", "magenta"},
		Scoring: ScoringConfig{
			PointsPerBlock: 15,
			LevelStep:      800,
			BaseIntervalMs: 900,
			IntervalStepMs: 70,
			MinIntervalMs:  200,
			DropPoints:     1,
		},
		Timer: TimerConfig{
			ElapsedMs: 1000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "domino":
		return defaultDominoYAML
	default:
		return nil
	}
}
