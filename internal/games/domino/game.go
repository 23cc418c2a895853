package domino

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-domino/internal/sched"
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Status messages shown to the player.
const (
	msgStarted  = "Game started!"
	msgPaused   = "Paused."
	msgResumed  = "Resumed. Go for combos!"
	msgGameOver = "Game over! Try again."
)

// Options configures a Game.
type Options struct {
	Rules     Rules
	Scheduler sched.Scheduler
	Rand      *rand.Rand  // Optional; seeded from Seed when nil
	Seed      int64       // Used when Rand is nil
	Listener  Listener    // Optional
	Logger    *log.Logger // Optional; discards when nil
}

// Game is the top-level controller: it owns the session and runs
// spawn, fall, lock, resolve and respawn in response to commands and
// scheduler callbacks.
//
// Game is not safe for concurrent use. Hosts must serialize every call,
// including the scheduler's callbacks.
type Game struct {
	rules    Rules
	sched    sched.Scheduler
	listener Listener
	logger   *log.Logger
	spawner  *Spawner

	state      State
	session    *Session
	ctrl       *Controller
	dropTimer  sched.Handle
	clockTimer sched.Handle
}

// New creates an idle game.
func New(opts Options) (*Game, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	listener := opts.Listener
	if listener == nil {
		listener = NopListener{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		rules:    opts.Rules,
		sched:    opts.Scheduler,
		listener: listener,
		logger:   logger,
		spawner:  NewSpawner(opts.Rules.Cols, opts.Rules.Palette, rng),
		ctrl:     NewController(NewBoard(opts.Rules.Rows, opts.Rules.Cols)),
	}, nil
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Score returns the current score (0 before the first start).
func (g *Game) Score() int {
	if g.session == nil {
		return 0
	}
	return g.session.Score
}

// Level returns the current level (1 before the first start).
func (g *Game) Level() int {
	if g.session == nil {
		return 1
	}
	return g.session.Level
}

// Start begins a new session. It is a no-op while a game is in progress;
// after game over it performs a full reset.
func (g *Game) Start() {
	if g.state == StateRunning || g.state == StatePaused {
		return
	}

	g.stopTimers()
	s := newSession(g.rules.Rows, g.rules.Cols, g.rules.Scoring)
	g.session = s
	g.ctrl = NewController(s.Board)
	g.spawner.Reset()
	g.state = StateRunning

	g.logger.Info("session started", "session", s.ID, "rows", g.rules.Rows, "cols", g.rules.Cols,
		"colors", len(g.rules.Palette))

	g.listener.ScoreChanged(s.Score)
	g.listener.LevelChanged(s.Level)
	g.listener.ComboChanged(s.Combo)
	g.setMessage(msgStarted)

	if !g.spawn() {
		return
	}
	g.startTimers()
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		g.stopTimers()
		g.logger.Debug("paused", "session", g.session.ID)
		g.setMessage(msgPaused)
	case StatePaused:
		g.state = StateRunning
		g.startTimers()
		g.logger.Debug("resumed", "session", g.session.ID, "interval", g.session.DropInterval)
		g.setMessage(msgResumed)
	}
}

// MoveLeft shifts the piece one column left.
func (g *Game) MoveLeft() bool {
	return g.running() && g.step(-1, 0)
}

// MoveRight shifts the piece one column right.
func (g *Game) MoveRight() bool {
	return g.running() && g.step(1, 0)
}

// SoftDrop moves the piece one row down, locking it if it cannot fall.
func (g *Game) SoftDrop() bool {
	return g.running() && g.step(0, 1)
}

// Rotate swaps the piece's colors.
func (g *Game) Rotate() bool {
	return g.running() && g.ctrl.Rotate()
}

// HardDrop drops the piece to the bottom, awarding points per row, and
// locks it. Returns the number of rows dropped.
func (g *Game) HardDrop() int {
	if !g.running() || g.ctrl.Active() == nil {
		return 0
	}

	rows, landed := g.ctrl.HardDrop()
	g.addScore(rows * g.rules.Scoring.DropPoints)
	if landed {
		g.lock()
	}
	return rows
}

// Handle dispatches a command. Unknown commands are ignored.
func (g *Game) Handle(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		g.MoveLeft()
	case CmdMoveRight:
		g.MoveRight()
	case CmdSoftDrop:
		g.SoftDrop()
	case CmdRotate:
		g.Rotate()
	case CmdHardDrop:
		g.HardDrop()
	case CmdPause:
		g.TogglePause()
	case CmdStart:
		g.Start()
	}
}

func (g *Game) running() bool {
	return g.state == StateRunning
}

// step translates the active piece and runs the lock sequence when it lands.
func (g *Game) step(dx, dy int) bool {
	switch g.ctrl.Translate(dx, dy) {
	case MoveOK:
		return true
	case MoveLanded:
		g.lock()
	}
	return false
}

// spawn activates the preview piece. Returns false if the game ended.
func (g *Game) spawn() bool {
	p := g.spawner.Next()
	g.session.Next = g.spawner.Peek()

	if !g.session.Board.CanOccupy(p.Blocks[:]) {
		g.endGame("spawn blocked")
		return false
	}
	g.ctrl.SetActive(&p)
	return true
}

// lock moves the landed piece into the board, resolves chains and spawns
// the next piece.
func (g *Game) lock() {
	p := g.ctrl.Release()
	if p == nil {
		return
	}

	s := g.session
	if s.Board.Lock(p.Blocks[:]) {
		g.endGame("reached top")
		return
	}

	res := Resolve(s.Board, g.rules.MinGroup)
	if res.Chain > 0 {
		gained := g.rules.Scoring.ChainPoints(res.Removed, res.Chain)
		g.logger.Debug("chain resolved", "session", s.ID, "chain", res.Chain,
			"removed", res.Removed, "passes", res.Passes, "gained", gained)
		g.setCombo(res.Chain)
		g.addScore(gained)
		g.setMessage(fmt.Sprintf("%d-chain! +%d points", res.Chain, gained))
	} else {
		g.setCombo(0)
	}

	if g.running() {
		g.spawn()
	}
}

func (g *Game) setCombo(combo int) {
	if g.session.Combo == combo {
		return
	}
	g.session.Combo = combo
	g.listener.ComboChanged(combo)
}

// addScore awards points and re-evaluates the level.
func (g *Game) addScore(points int) {
	if points <= 0 {
		return
	}
	g.session.Score += points
	g.listener.ScoreChanged(g.session.Score)
	g.updateLevel()
}

// updateLevel recomputes level and drop interval from the score and
// restarts the drop timer if the level changed while running.
func (g *Game) updateLevel() {
	s := g.session
	level := g.rules.Scoring.Level(s.Score)
	if level == s.Level {
		return
	}

	s.Level = level
	s.DropInterval = g.rules.Scoring.DropInterval(level)
	g.logger.Info("level changed", "session", s.ID, "level", level, "interval", s.DropInterval)
	g.listener.LevelChanged(level)

	if g.running() {
		g.sched.Cancel(g.dropTimer)
		g.dropTimer = g.scheduleDrop(s)
	}
}

func (g *Game) endGame(reason string) {
	g.state = StateGameOver
	g.stopTimers()
	g.ctrl.Release()

	s := g.session
	g.logger.Info("game over", "session", s.ID, "reason", reason, "score", s.Score,
		"level", s.Level, "elapsed", FormatElapsed(s.Elapsed))
	g.setMessage(msgGameOver)
	g.listener.GameOver()
}

func (g *Game) setMessage(msg string) {
	g.session.Message = msg
	g.listener.StatusMessage(msg)
}

// startTimers schedules gravity and the elapsed counter with the current
// interval.
func (g *Game) startTimers() {
	s := g.session
	g.dropTimer = g.scheduleDrop(s)
	g.clockTimer = g.sched.ScheduleRepeating(g.rules.ElapsedTick, func() {
		if g.session != s || !g.running() {
			return
		}
		s.Elapsed++
	})
}

// scheduleDrop registers a gravity tick bound to one session, so a stale
// callback can never touch a newer session.
func (g *Game) scheduleDrop(s *Session) sched.Handle {
	return g.sched.ScheduleRepeating(s.DropInterval, func() {
		if g.session != s || !g.running() {
			return
		}
		g.step(0, 1)
	})
}

func (g *Game) stopTimers() {
	g.sched.Cancel(g.dropTimer)
	g.sched.Cancel(g.clockTimer)
	g.dropTimer = 0
	g.clockTimer = 0
}

// DropInterval returns the current gravity interval.
func (g *Game) DropInterval() time.Duration {
	if g.session == nil {
		return g.rules.Scoring.DropInterval(1)
	}
	return g.session.DropInterval
}
