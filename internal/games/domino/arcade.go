package domino

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-domino/internal/config"
	"github.com/vovakirdan/tui-domino/internal/core"
	"github.com/vovakirdan/tui-domino/internal/registry"
	"github.com/vovakirdan/tui-domino/internal/sched"
)

// Mode selects the board layout.
type Mode string

const (
	ModeClassic Mode = "domino"
	ModeWide    Mode = "domino_wide"
)

// wideCols is the board width of the wide mode.
const wideCols = 14

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives engine logs of every Arcade created afterwards.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading domino config.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// RulesFromConfig converts a loaded config into engine rules.
func RulesFromConfig(cfg config.DominoConfig) (Rules, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return Rules{}, err
	}
	sc := cfg.Scoring
	rules := Rules{
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		MinGroup: cfg.Match.MinGroup,
		Palette:  palette,
		Scoring: Scoring{
			PointsPerBlock: sc.PointsPerBlock,
			LevelStep:      sc.LevelStep,
			BaseInterval:   time.Duration(sc.BaseIntervalMs) * time.Millisecond,
			IntervalStep:   time.Duration(sc.IntervalStepMs) * time.Millisecond,
			MinInterval:    time.Duration(sc.MinIntervalMs) * time.Millisecond,
			DropPoints:     sc.DropPoints,
			Fixed:          sc.Fixed,
		},
		ElapsedTick: time.Duration(cfg.Timer.ElapsedMs) * time.Millisecond,
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Arcade runs a Game on a virtual clock so the fixed-tick host can drive
// it. Every Step advances the clock by one host tick.
type Arcade struct {
	mode     Mode
	game     *Game
	clock    *sched.Virtual
	tick     time.Duration
	listener Listener
}

// NewArcade creates an arcade adapter for a mode. Reset must be called
// before Step.
func NewArcade(mode Mode) *Arcade {
	return &Arcade{mode: mode}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return NewArcade(ModeClassic)
	})
	registry.Register(string(ModeWide), func() registry.Game {
		return NewArcade(ModeWide)
	})
}

// ID returns the game identifier.
func (a *Arcade) ID() string {
	return string(a.mode)
}

// Title returns the display name.
func (a *Arcade) Title() string {
	if a.mode == ModeWide {
		return "Domino (Wide)"
	}
	return "Domino"
}

// SetListener registers a listener for games created by later Resets.
func (a *Arcade) SetListener(l Listener) {
	a.listener = l
}

// Reset loads the config, builds a fresh game and starts it.
func (a *Arcade) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadDomino(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultDominoConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyDominoPreset(&cfg, difficultyPreset)
	}

	if a.mode == ModeWide {
		widen(&cfg)
	}

	rules, err := RulesFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("domino: %s: %w", a.mode, err)
	}

	rate := runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}

	a.clock = sched.NewVirtual()
	a.tick = time.Second / time.Duration(rate)
	a.game, err = New(Options{
		Rules:     rules,
		Scheduler: a.clock,
		Seed:      runtime.Seed,
		Listener:  a.listener,
		Logger:    logger.With("mode", string(a.mode)),
	})
	if err != nil {
		return fmt.Errorf("domino: %s: %w", a.mode, err)
	}

	a.game.Start()
	return nil
}

// widen switches a config to the wide layout with an extra orange color.
func widen(cfg *config.DominoConfig) {
	if cfg.Board.Cols < wideCols {
		cfg.Board.Cols = wideCols
	}
	orange := core.ColorOrange.String()
	if !slices.Contains(cfg.Palette, orange) {
		cfg.Palette = append(slices.Clone(cfg.Palette), orange)
	}
}

// Step applies the frame's actions in order, then advances the clock by
// one host tick.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	if a.game == nil {
		return core.StepResult{}
	}

	for _, act := range in.Actions {
		a.game.Handle(commandFor(act))
	}
	a.clock.Advance(a.tick)

	return core.StepResult{State: a.State()}
}

// commandFor maps host actions to engine commands.
func commandFor(act core.Action) Command {
	switch act {
	case core.ActionLeft:
		return CmdMoveLeft
	case core.ActionRight:
		return CmdMoveRight
	case core.ActionDown:
		return CmdSoftDrop
	case core.ActionRotate:
		return CmdRotate
	case core.ActionHardDrop:
		return CmdHardDrop
	case core.ActionPause:
		return CmdPause
	case core.ActionRestart:
		return CmdStart
	default:
		return CmdNone
	}
}

// State returns the host-facing state.
func (a *Arcade) State() core.GameState {
	if a.game == nil {
		return core.GameState{}
	}
	st := a.game.State()
	return core.GameState{
		Score:    a.game.Score(),
		Level:    a.game.Level(),
		GameOver: st == StateGameOver,
		Paused:   st == StatePaused,
	}
}

// Snapshot returns the engine snapshot for rendering.
func (a *Arcade) Snapshot() Snapshot {
	if a.game == nil {
		return Snapshot{}
	}
	return a.game.Snapshot()
}

// Game exposes the underlying engine.
func (a *Arcade) Game() *Game {
	return a.game
}
