package domino

import "time"

// Scoring holds the score, level and speed rules.
type Scoring struct {
	PointsPerBlock int           // Points per cleared cell, multiplied by chain depth
	LevelStep      int           // Score needed per level
	BaseInterval   time.Duration // Drop interval at level 1
	IntervalStep   time.Duration // Interval reduction per level
	MinInterval    time.Duration // Interval floor
	DropPoints     int           // Points per row of a hard drop
	Fixed          bool          // Keep BaseInterval regardless of level
}

// DefaultScoring returns the classic rules.
func DefaultScoring() Scoring {
	return Scoring{
		PointsPerBlock: 15,
		LevelStep:      800,
		BaseInterval:   900 * time.Millisecond,
		IntervalStep:   70 * time.Millisecond,
		MinInterval:    200 * time.Millisecond,
		DropPoints:     1,
	}
}

// Level returns the level for a score; levels start at 1.
func (s Scoring) Level(score int) int {
	if s.LevelStep <= 0 || score < 0 {
		return 1
	}
	return score/s.LevelStep + 1
}

// DropInterval returns the gravity interval for a level.
func (s Scoring) DropInterval(level int) time.Duration {
	if s.Fixed || level < 1 {
		return max(s.MinInterval, s.BaseInterval)
	}
	return max(s.MinInterval, s.BaseInterval-time.Duration(level-1)*s.IntervalStep)
}

// ChainPoints returns the award for one resolve loop: the total cleared
// cells times the final chain depth, not a per-pass sum.
func (s Scoring) ChainPoints(removed, chain int) int {
	return removed * s.PointsPerBlock * chain
}
