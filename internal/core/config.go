package core

// RuntimeConfig is what the terminal host hands a mode on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns; the board view centers in this
	ScreenH  int   // Terminal rows, including the help line
	TickRate int   // Host ticks per second; each Step advances the drop clock by 1s/TickRate
	Seed     int64 // Seeds the piece colors; 0 lets the host pick one
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a mode reports to the host after every Step.
type GameState struct {
	Score    int
	Level    int
	GameOver bool // Stack reached the top
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
