package domino

import "github.com/vovakirdan/tui-domino/internal/core"

// Plan is a placement chosen by the Bot.
type Plan struct {
	Col   int
	Swap  bool // Rotate before dropping
	Value int
}

// Bot is a greedy player: for every column and orientation it drops the
// active piece on a copy of the board and keeps the best outcome.
// It plays instantly after a spawn, while the piece is still above the
// board, so every column is reachable.
type Bot struct {
	rules Rules
}

// NewBot creates a bot for the given rules.
func NewBot(rules Rules) *Bot {
	return &Bot{rules: rules}
}

// Plan picks a placement for the snapshot's active piece.
// ok is false when there is no active piece.
func (b *Bot) Plan(snap Snapshot) (plan Plan, ok bool) {
	if len(snap.Active) != 2 {
		return Plan{}, false
	}
	board := lockedBoard(snap)

	first := true
	for col := 0; col < snap.Cols; col++ {
		for _, swap := range []bool{false, true} {
			lower, upper := snap.Active[0].Color, snap.Active[1].Color
			if swap {
				lower, upper = upper, lower
			}
			v := b.evaluate(board, col, lower, upper)
			if first || v > plan.Value {
				plan = Plan{Col: col, Swap: swap, Value: v}
				first = false
			}
		}
	}
	return plan, true
}

// evaluate scores dropping a vertical pair into col.
func (b *Bot) evaluate(board *Board, col int, lower, upper core.Color) int {
	row := landingRow(board, col)
	if row < 1 {
		// Upper block would stay above the board.
		return -1_000_000 + row
	}

	trial := board.Clone()
	trial.Lock([]Block{
		{Row: row, Col: col, Color: lower},
		{Row: row - 1, Col: col, Color: upper},
	})
	res := Resolve(trial, b.rules.MinGroup)
	points := b.rules.Scoring.ChainPoints(res.Removed, res.Chain)

	// Prefer clears, then same-color contact, then staying low.
	return points*100 + sameColorContacts(trial)*5 + row
}

// Apply executes a plan on a running game and returns the rows hard-dropped.
func (b *Bot) Apply(g *Game, plan Plan) int {
	p := g.ctrl.Active()
	if p == nil {
		return 0
	}
	if plan.Swap {
		g.Rotate()
	}
	for p.Blocks[0].Col != plan.Col {
		var moved bool
		if plan.Col < p.Blocks[0].Col {
			moved = g.MoveLeft()
		} else {
			moved = g.MoveRight()
		}
		if !moved {
			break
		}
	}
	return g.HardDrop()
}

// lockedBoard rebuilds the board from a snapshot without the active piece.
func lockedBoard(snap Snapshot) *Board {
	b := NewBoard(snap.Rows, snap.Cols)
	for r, row := range snap.Cells {
		for c, cell := range row {
			if cell.Filled && !cell.Active {
				b.Set(r, c, cell.Color)
			}
		}
	}
	return b
}

// landingRow returns the row the lower block stops at in col; -1 if the
// column is full.
func landingRow(b *Board, col int) int {
	row := -1
	for r := 0; r < b.Rows(); r++ {
		if b.At(r, col).Filled {
			break
		}
		row = r
	}
	return row
}

// sameColorContacts counts horizontally or vertically adjacent pairs of
// equal color.
func sameColorContacts(b *Board) int {
	n := 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := b.At(r, c)
			if !cell.Filled {
				continue
			}
			if right := b.At(r, c+1); right.Filled && right.Color == cell.Color {
				n++
			}
			if below := b.At(r+1, c); below.Filled && below.Color == cell.Color {
				n++
			}
		}
	}
	return n
}
