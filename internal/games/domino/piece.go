package domino

import (
	"math/rand"

	"github.com/vovakirdan/tui-domino/internal/core"
)

// Piece is the falling two-block domino. Blocks share a column and are
// vertically adjacent; Blocks[0] is the lower one.
type Piece struct {
	Blocks [2]Block
}

// Shifted returns the piece's blocks moved by (dx, dy).
func (p Piece) Shifted(dx, dy int) [2]Block {
	moved := p.Blocks
	for i := range moved {
		moved[i].Col += dx
		moved[i].Row += dy
	}
	return moved
}

// SwapColors exchanges the colors of the two blocks in place.
func (p *Piece) SwapColors() {
	p.Blocks[0].Color, p.Blocks[1].Color = p.Blocks[1].Color, p.Blocks[0].Color
}

// Spawner produces pieces and always holds one look-ahead piece for preview.
type Spawner struct {
	cols    int
	palette []core.Color
	rng     *rand.Rand
	next    Piece
}

// NewSpawner creates a spawner for a board of the given width.
func NewSpawner(cols int, palette []core.Color, rng *rand.Rand) *Spawner {
	s := &Spawner{
		cols:    cols,
		palette: palette,
		rng:     rng,
	}
	s.next = s.Generate()
	return s
}

// Generate builds a fresh piece in the middle column, rows -1 and -2.
// Colors are drawn independently, so both halves may match.
func (s *Spawner) Generate() Piece {
	col := s.cols / 2
	return Piece{
		Blocks: [2]Block{
			{Row: -1, Col: col, Color: s.randomColor()},
			{Row: -2, Col: col, Color: s.randomColor()},
		},
	}
}

// Next hands out the preview piece and generates a new preview.
func (s *Spawner) Next() Piece {
	p := s.next
	s.next = s.Generate()
	return p
}

// Peek returns the preview piece without consuming it.
func (s *Spawner) Peek() Piece {
	return s.next
}

// Reset replaces the preview piece, discarding the old one.
func (s *Spawner) Reset() {
	s.next = s.Generate()
}

func (s *Spawner) randomColor() core.Color {
	return s.palette[s.rng.Intn(len(s.palette))]
}
