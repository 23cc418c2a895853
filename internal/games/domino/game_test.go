package domino

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-domino/internal/core"
	"github.com/vovakirdan/tui-domino/internal/sched"
)

// recorder collects listener notifications.
type recorder struct {
	scores   []int
	levels   []int
	combos   []int
	messages []string
	overs    int
}

func (r *recorder) listener() Listener {
	return ListenerFuncs{
		OnScore:    func(s int) { r.scores = append(r.scores, s) },
		OnLevel:    func(l int) { r.levels = append(r.levels, l) },
		OnCombo:    func(c int) { r.combos = append(r.combos, c) },
		OnStatus:   func(m string) { r.messages = append(r.messages, m) },
		OnGameOver: func() { r.overs++ },
	}
}

func newTestGame(t *testing.T, rows, cols int) (*Game, *sched.Virtual, *recorder) {
	t.Helper()
	rules := DefaultRules()
	rules.Rows, rules.Cols = rows, cols

	clock := sched.NewVirtual()
	rec := &recorder{}
	g, err := New(Options{
		Rules:     rules,
		Scheduler: clock,
		Seed:      1,
		Listener:  rec.listener(),
	})
	require.NoError(t, err)
	return g, clock, rec
}

// placePiece replaces the active piece.
func placePiece(g *Game, lower, upper Block) *Piece {
	p := &Piece{Blocks: [2]Block{lower, upper}}
	g.ctrl.SetActive(p)
	return p
}

func TestNewValidates(t *testing.T) {
	clock := sched.NewVirtual()

	_, err := New(Options{Rules: DefaultRules()})
	assert.True(t, errors.Is(err, ErrNoScheduler))

	rules := DefaultRules()
	rules.Rows = 1
	_, err = New(Options{Rules: rules, Scheduler: clock})
	assert.True(t, errors.Is(err, ErrInvalidBoard))

	rules = DefaultRules()
	rules.Palette = []core.Color{core.ColorRed, core.ColorRed}
	_, err = New(Options{Rules: rules, Scheduler: clock})
	assert.True(t, errors.Is(err, ErrInvalidPalette))

	rules = DefaultRules()
	rules.Scoring.MinInterval = 0
	_, err = New(Options{Rules: rules, Scheduler: clock})
	assert.True(t, errors.Is(err, ErrInvalidScoring))
}

func TestStart(t *testing.T) {
	g, clock, rec := newTestGame(t, 6, 4)
	assert.Equal(t, StateIdle, g.State())
	assert.Equal(t, 0, g.Score())

	g.Start()

	assert.Equal(t, StateRunning, g.State())
	require.NotNil(t, g.ctrl.Active())
	assert.Equal(t, -1, g.ctrl.Active().Blocks[0].Row)
	assert.Equal(t, -2, g.ctrl.Active().Blocks[1].Row)
	assert.Equal(t, 2, g.ctrl.Active().Blocks[0].Col)
	assert.Equal(t, 2, clock.Pending(), "gravity and elapsed timers")
	assert.Equal(t, []string{msgStarted}, rec.messages)
	assert.Equal(t, []int{0}, rec.scores)
	assert.Equal(t, []int{1}, rec.levels)

	id := g.session.ID
	g.Start()
	assert.Equal(t, id, g.session.ID, "Start is ignored while running")
	assert.Equal(t, 2, clock.Pending())
}

func TestGravityTicks(t *testing.T) {
	g, clock, _ := newTestGame(t, 6, 4)
	g.Start()

	clock.Advance(900 * time.Millisecond)
	assert.Equal(t, 0, g.ctrl.Active().Blocks[0].Row)

	clock.Advance(900 * time.Millisecond)
	assert.Equal(t, 1, g.ctrl.Active().Blocks[0].Row)
}

func TestElapsedCounter(t *testing.T) {
	g, clock, _ := newTestGame(t, 18, 4)
	g.Start()

	clock.Advance(3 * time.Second)

	assert.Equal(t, 3, g.session.Elapsed)
	assert.Equal(t, "00:03", FormatElapsed(g.Snapshot().Elapsed))
}

func TestMovesIgnoredUnlessRunning(t *testing.T) {
	g, _, _ := newTestGame(t, 6, 4)

	assert.False(t, g.MoveLeft())
	assert.False(t, g.MoveRight())
	assert.False(t, g.SoftDrop())
	assert.False(t, g.Rotate())
	assert.Equal(t, 0, g.HardDrop())
	assert.Equal(t, StateIdle, g.State())
}

func TestMoveAgainstWall(t *testing.T) {
	g, _, _ := newTestGame(t, 6, 4)
	g.Start()

	assert.True(t, g.MoveLeft())
	assert.True(t, g.MoveLeft())
	assert.False(t, g.MoveLeft())
	assert.Equal(t, 0, g.ctrl.Active().Blocks[0].Col)

	for range 3 {
		assert.True(t, g.MoveRight())
	}
	assert.False(t, g.MoveRight())
	assert.Equal(t, 3, g.ctrl.Active().Blocks[1].Col)
}

func TestRotateSwapsColors(t *testing.T) {
	g, _, _ := newTestGame(t, 6, 4)
	g.Start()
	p := placePiece(g,
		Block{Row: 2, Col: 1, Color: core.ColorRed},
		Block{Row: 1, Col: 1, Color: core.ColorBlue},
	)

	assert.True(t, g.Rotate())

	assert.Equal(t, Block{Row: 2, Col: 1, Color: core.ColorBlue}, p.Blocks[0])
	assert.Equal(t, Block{Row: 1, Col: 1, Color: core.ColorRed}, p.Blocks[1])
}

func TestCascadeScoring(t *testing.T) {
	g, _, rec := newTestGame(t, 6, 4)
	g.Start()

	b := g.session.Board
	b.Set(5, 0, core.ColorGreen)
	b.Set(5, 1, core.ColorRed)
	b.Set(5, 2, core.ColorRed)
	b.Set(5, 3, core.ColorGreen)
	b.Set(4, 1, core.ColorGreen)
	placePiece(g,
		Block{Row: 4, Col: 2, Color: core.ColorRed},
		Block{Row: 3, Col: 2, Color: core.ColorGreen},
	)

	assert.False(t, g.SoftDrop(), "piece lands")

	assert.Equal(t, 210, g.Score())
	assert.Equal(t, 2, g.session.Combo)
	assert.Equal(t, 1, g.session.Level)
	assert.Equal(t, 0, b.Filled())
	assert.Equal(t, "2-chain! +210 points", g.session.Message)
	assert.Equal(t, []int{0, 2}, rec.combos)
	assert.Equal(t, StateRunning, g.State())
	assert.NotNil(t, g.ctrl.Active(), "next piece spawned")
}

func TestComboResetsOnQuietLock(t *testing.T) {
	g, _, rec := newTestGame(t, 6, 4)
	g.Start()
	g.setCombo(2)

	placePiece(g,
		Block{Row: 5, Col: 0, Color: core.ColorRed},
		Block{Row: 4, Col: 0, Color: core.ColorBlue},
	)
	g.SoftDrop()

	assert.Equal(t, 0, g.session.Combo)
	assert.Equal(t, []int{0, 2, 0}, rec.combos)

	placePiece(g,
		Block{Row: 5, Col: 3, Color: core.ColorRed},
		Block{Row: 4, Col: 3, Color: core.ColorBlue},
	)
	g.SoftDrop()
	assert.Equal(t, []int{0, 2, 0}, rec.combos, "unchanged combo is not reported")
}

func TestLevelUpReschedulesDrop(t *testing.T) {
	g, clock, rec := newTestGame(t, 6, 4)
	g.Start()
	g.session.Score = 790

	g.addScore(20)

	assert.Equal(t, 810, g.Score())
	assert.Equal(t, 2, g.session.Level)
	assert.Equal(t, 830*time.Millisecond, g.DropInterval())
	assert.Equal(t, []int{1, 2}, rec.levels)

	interval, ok := clock.Interval(g.dropTimer)
	require.True(t, ok)
	assert.Equal(t, 830*time.Millisecond, interval)
	assert.Equal(t, 2, clock.Pending(), "old drop timer cancelled")

	g.addScore(10)
	assert.Equal(t, []int{1, 2}, rec.levels, "level changes once")
}

func TestHardDrop(t *testing.T) {
	g, _, rec := newTestGame(t, 6, 4)
	g.Start()
	placePiece(g,
		Block{Row: -1, Col: 2, Color: core.ColorRed},
		Block{Row: -2, Col: 2, Color: core.ColorBlue},
	)

	rows := g.HardDrop()

	assert.Equal(t, 6, rows)
	assert.Equal(t, 6, g.Score())
	assert.Equal(t, core.ColorRed, g.session.Board.At(5, 2).Color)
	assert.Equal(t, core.ColorBlue, g.session.Board.At(4, 2).Color)
	assert.Equal(t, []int{0, 6}, rec.scores)
	require.NotNil(t, g.ctrl.Active())
	assert.Equal(t, -1, g.ctrl.Active().Blocks[0].Row, "next piece spawned")
}

func TestHardDropCrossesLevel(t *testing.T) {
	g, clock, _ := newTestGame(t, 6, 4)
	g.Start()
	g.session.Score = 798

	g.HardDrop()

	assert.Equal(t, 2, g.Level())
	interval, ok := clock.Interval(g.dropTimer)
	require.True(t, ok)
	assert.Equal(t, 830*time.Millisecond, interval)
}

func TestPauseResume(t *testing.T) {
	g, clock, rec := newTestGame(t, 6, 4)
	g.Start()
	clock.Advance(1800 * time.Millisecond)
	g.session.Combo = 1

	board := g.session.Board.Clone()
	active := *g.ctrl.Active()
	score, level, elapsed := g.Score(), g.session.Level, g.session.Elapsed

	g.TogglePause()
	assert.Equal(t, StatePaused, g.State())
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, msgPaused, g.session.Message)

	clock.Advance(10 * time.Second)
	assert.False(t, g.MoveLeft())
	assert.False(t, g.Rotate())
	assert.Equal(t, 0, g.HardDrop())
	g.Start()

	assert.Equal(t, StatePaused, g.State())
	assert.Equal(t, board, g.session.Board)
	assert.Equal(t, active, *g.ctrl.Active())
	assert.Equal(t, score, g.Score())
	assert.Equal(t, level, g.session.Level)
	assert.Equal(t, 1, g.session.Combo)
	assert.Equal(t, elapsed, g.session.Elapsed)

	g.TogglePause()
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, msgResumed, rec.messages[len(rec.messages)-1])
	assert.Equal(t, 2, clock.Pending())
	interval, ok := clock.Interval(g.dropTimer)
	require.True(t, ok)
	assert.Equal(t, g.session.DropInterval, interval)

	clock.Advance(g.session.DropInterval)
	assert.Equal(t, active.Blocks[0].Row+1, g.ctrl.Active().Blocks[0].Row)
}

func TestBlockedSpawnColumnEndsGame(t *testing.T) {
	g, clock, rec := newTestGame(t, 6, 4)
	g.Start()

	b := g.session.Board
	for r := 0; r < b.Rows(); r++ {
		c := core.ColorRed
		if r%2 == 1 {
			c = core.ColorBlue
		}
		b.Set(r, 2, c)
	}
	before := b.Clone()

	clock.Advance(g.session.DropInterval)

	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, before, g.session.Board, "board untouched")
	assert.Nil(t, g.ctrl.Active())
	assert.Equal(t, 1, rec.overs)
	assert.Equal(t, msgGameOver, g.session.Message)
	assert.Equal(t, 0, clock.Pending())
	assert.True(t, g.Snapshot().State == StateGameOver)
}

func TestReachedTopEndsGame(t *testing.T) {
	g, _, rec := newTestGame(t, 6, 4)
	g.Start()
	b := g.session.Board
	b.Set(0, 0, core.ColorRed)

	placePiece(g,
		Block{Row: -1, Col: 0, Color: core.ColorBlue},
		Block{Row: -2, Col: 0, Color: core.ColorBlue},
	)
	g.SoftDrop()

	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, 1, rec.overs)
	assert.False(t, g.MoveLeft())
}

func TestRestartAfterGameOver(t *testing.T) {
	g, clock, _ := newTestGame(t, 6, 4)
	g.Start()
	g.addScore(100)
	g.endGame("test")
	old := g.session

	g.Start()

	assert.Equal(t, StateRunning, g.State())
	assert.NotEqual(t, old.ID, g.session.ID)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.session.Level)
	assert.Equal(t, 2, clock.Pending())
}

// manualScheduler keeps callbacks after Cancel so tests can fire stale ones.
type manualScheduler struct {
	next      sched.Handle
	fns       map[sched.Handle]func()
	cancelled map[sched.Handle]bool
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{
		fns:       make(map[sched.Handle]func()),
		cancelled: make(map[sched.Handle]bool),
	}
}

func (m *manualScheduler) ScheduleRepeating(_ time.Duration, fn func()) sched.Handle {
	m.next++
	m.fns[m.next] = fn
	return m.next
}

func (m *manualScheduler) Cancel(h sched.Handle) {
	m.cancelled[h] = true
}

func TestStaleTimersAfterRestart(t *testing.T) {
	ms := newManualScheduler()
	rules := DefaultRules()
	rules.Rows, rules.Cols = 6, 4
	g, err := New(Options{Rules: rules, Scheduler: ms, Seed: 3})
	require.NoError(t, err)

	g.Start()
	oldDrop := ms.fns[g.dropTimer]
	oldClock := ms.fns[g.clockTimer]
	oldHandles := []sched.Handle{g.dropTimer, g.clockTimer}

	g.endGame("test")
	g.Start()
	for _, h := range oldHandles {
		assert.True(t, ms.cancelled[h])
	}

	active := *g.ctrl.Active()
	oldDrop()
	oldClock()

	assert.Equal(t, active, *g.ctrl.Active(), "stale gravity must not move the new piece")
	assert.Equal(t, 0, g.session.Elapsed)

	ms.fns[g.dropTimer]()
	assert.Equal(t, active.Blocks[0].Row+1, g.ctrl.Active().Blocks[0].Row)
}

func TestHandle(t *testing.T) {
	g, _, _ := newTestGame(t, 6, 4)

	g.Handle(Command(99))
	assert.Equal(t, StateIdle, g.State())

	g.Handle(CmdStart)
	require.Equal(t, StateRunning, g.State())

	g.Handle(CmdMoveLeft)
	assert.Equal(t, 1, g.ctrl.Active().Blocks[0].Col)
	g.Handle(CmdMoveRight)
	g.Handle(CmdMoveRight)
	assert.Equal(t, 3, g.ctrl.Active().Blocks[0].Col)

	g.Handle(CmdSoftDrop)
	assert.Equal(t, 0, g.ctrl.Active().Blocks[0].Row)

	g.Handle(CmdPause)
	assert.Equal(t, StatePaused, g.State())
	g.Handle(CmdPause)
	assert.Equal(t, StateRunning, g.State())

	g.Handle(CmdHardDrop)
	assert.Equal(t, 5, g.Score())
}

func TestParseCommand(t *testing.T) {
	for _, cmd := range []Command{CmdMoveLeft, CmdMoveRight, CmdSoftDrop, CmdRotate, CmdHardDrop, CmdPause, CmdStart} {
		assert.Equal(t, cmd, ParseCommand(cmd.String()))
	}
	assert.Equal(t, CmdNone, ParseCommand("teleport"))
}

func TestSnapshot(t *testing.T) {
	g, _, _ := newTestGame(t, 6, 4)

	idle := g.Snapshot()
	assert.Equal(t, StateIdle, idle.State)
	assert.Equal(t, 1, idle.Level)
	assert.Len(t, idle.Cells, 6)
	assert.Len(t, idle.Next, 2)
	assert.Empty(t, idle.SessionID)

	g.Start()
	g.session.Board.Set(5, 0, core.ColorGreen)
	placePiece(g,
		Block{Row: 0, Col: 3, Color: core.ColorRed},
		Block{Row: -1, Col: 3, Color: core.ColorBlue},
	)

	snap := g.Snapshot()
	assert.Equal(t, g.session.ID, snap.SessionID)
	assert.Equal(t, Cell{Filled: true, Color: core.ColorRed, Active: true}, snap.Cells[0][3])
	assert.Equal(t, Cell{Filled: true, Color: core.ColorGreen}, snap.Cells[5][0])
	assert.Len(t, snap.Active, 2, "blocks above the board stay in Active")
	assert.False(t, g.session.Board.At(0, 3).Filled, "overlay must not touch the board")
	assert.Equal(t, 900*time.Millisecond, snap.DropInterval)
	assert.Equal(t, msgStarted, snap.Message)
}
