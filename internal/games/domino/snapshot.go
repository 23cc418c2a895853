package domino

import "time"

// Snapshot is a read-only copy of the game for rendering.
type Snapshot struct {
	SessionID    string
	State        State
	Rows         int
	Cols         int
	Cells        [][]Cell // Locked cells with the active piece overlaid
	Active       []Block  // Falling piece, including blocks above the board
	Next         []Block  // Preview piece
	Score        int
	Level        int
	Combo        int
	DropInterval time.Duration
	Elapsed      int
	Message      string
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State: g.state,
		Rows:  g.rules.Rows,
		Cols:  g.rules.Cols,
	}

	s := g.session
	if s == nil {
		snap.Cells = NewBoard(g.rules.Rows, g.rules.Cols).Grid()
		snap.Level = 1
		snap.DropInterval = g.rules.Scoring.DropInterval(1)
		next := g.spawner.Peek()
		snap.Next = append([]Block(nil), next.Blocks[:]...)
		return snap
	}

	snap.SessionID = s.ID
	snap.Cells = s.Board.Grid()
	snap.Next = append([]Block(nil), s.Next.Blocks[:]...)
	snap.Score = s.Score
	snap.Level = s.Level
	snap.Combo = s.Combo
	snap.DropInterval = s.DropInterval
	snap.Elapsed = s.Elapsed
	snap.Message = s.Message

	if p := g.ctrl.Active(); p != nil {
		snap.Active = append([]Block(nil), p.Blocks[:]...)
		for _, blk := range p.Blocks {
			if blk.Row < 0 || blk.Row >= snap.Rows || blk.Col < 0 || blk.Col >= snap.Cols {
				continue
			}
			snap.Cells[blk.Row][blk.Col] = Cell{Filled: true, Color: blk.Color, Active: true}
		}
	}

	return snap
}
