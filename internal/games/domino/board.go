// Package domino implements a falling two-block puzzle: pieces drop into a
// fixed grid, 4-connected same-colored clusters are cleared, gravity compacts
// the columns and chained clears multiply the score.
//
// The engine is pure: it consumes commands and scheduler callbacks and
// exposes snapshots. It never draws, reads input devices or touches the clock.
package domino

import "github.com/vovakirdan/tui-domino/internal/core"

// Cell is one board position.
type Cell struct {
	Filled bool
	Color  core.Color
	Active bool // Only set in snapshots for blocks of the falling piece
}

// Coord is a (row, col) board position.
type Coord struct {
	Row, Col int
}

// Block is one half of a piece. Row may be negative: the block is above the
// visible board.
type Block struct {
	Row   int
	Col   int
	Color core.Color
}

// Board is a fixed-size grid of locked cells. Row 0 is the top.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) is a visible cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// At returns the cell at (row, col). Out-of-bounds positions read as empty.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[b.index(row, col)]
}

// Set fills (row, col) with a color. Out-of-bounds positions are ignored.
func (b *Board) Set(row, col int, c core.Color) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[b.index(row, col)] = Cell{Filled: true, Color: c}
}

// Clear empties (row, col).
func (b *Board) Clear(row, col int) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[b.index(row, col)] = Cell{}
}

// Reset empties the whole board.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	clone := &Board{rows: b.rows, cols: b.cols, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Grid returns a row-major copy of the cells.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return grid
}

// CanOccupy reports whether every block lies within the columns, above the
// floor, and on an empty cell. Blocks above the board (Row < 0) are never
// checked against occupancy.
func (b *Board) CanOccupy(blocks []Block) bool {
	for _, blk := range blocks {
		if blk.Col < 0 || blk.Col >= b.cols {
			return false
		}
		if blk.Row >= b.rows {
			return false
		}
		if blk.Row >= 0 && b.cells[b.index(blk.Row, blk.Col)].Filled {
			return false
		}
	}
	return true
}

// Lock writes the visible blocks into the board. reachedTop is true if any
// block is still above the board; callers treat that as fatal.
func (b *Board) Lock(blocks []Block) (reachedTop bool) {
	for _, blk := range blocks {
		if blk.Row < 0 {
			reachedTop = true
			continue
		}
		b.Set(blk.Row, blk.Col, blk.Color)
	}
	return reachedTop
}
