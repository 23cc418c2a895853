package domino

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-domino/internal/core"
)

func TestSpawnerGenerate(t *testing.T) {
	palette := DefaultPalette()
	s := NewSpawner(10, palette, rand.New(rand.NewSource(7)))

	for range 50 {
		p := s.Generate()
		assert.Equal(t, Block{Row: -1, Col: 5, Color: p.Blocks[0].Color}, p.Blocks[0])
		assert.Equal(t, Block{Row: -2, Col: 5, Color: p.Blocks[1].Color}, p.Blocks[1])
		assert.Contains(t, palette, p.Blocks[0].Color)
		assert.Contains(t, palette, p.Blocks[1].Color)
	}
}

func TestSpawnerPreview(t *testing.T) {
	s := NewSpawner(4, DefaultPalette(), rand.New(rand.NewSource(7)))

	for range 10 {
		preview := s.Peek()
		assert.Equal(t, preview, s.Next(), "Next must hand out the previewed piece")
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := NewSpawner(6, DefaultPalette(), rand.New(rand.NewSource(99)))
	b := NewSpawner(6, DefaultPalette(), rand.New(rand.NewSource(99)))

	for range 20 {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestControllerTranslate(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(2, 0, core.ColorRed)
	c := NewController(b)
	assert.Equal(t, MoveBlocked, c.Translate(0, 1), "no active piece")

	p := &Piece{Blocks: [2]Block{
		{Row: 0, Col: 1, Color: core.ColorBlue},
		{Row: -1, Col: 1, Color: core.ColorGreen},
	}}
	c.SetActive(p)

	assert.Equal(t, MoveOK, c.Translate(1, 0))
	assert.Equal(t, MoveBlocked, c.Translate(1, 0), "right wall")
	assert.Equal(t, 2, p.Blocks[0].Col)

	assert.Equal(t, MoveOK, c.Translate(-2, 0))
	assert.Equal(t, MoveOK, c.Translate(0, 1))
	assert.Equal(t, MoveLanded, c.Translate(0, 1), "resting on a filled cell")
	assert.Equal(t, Block{Row: 1, Col: 0, Color: core.ColorBlue}, p.Blocks[0])
}

func TestControllerRotateSwapsColorsOnly(t *testing.T) {
	c := NewController(NewBoard(3, 3))
	assert.False(t, c.Rotate())

	p := &Piece{Blocks: [2]Block{
		{Row: 1, Col: 2, Color: core.ColorRed},
		{Row: 0, Col: 2, Color: core.ColorYellow},
	}}
	c.SetActive(p)

	assert.True(t, c.Rotate())
	assert.Equal(t, Block{Row: 1, Col: 2, Color: core.ColorYellow}, p.Blocks[0])
	assert.Equal(t, Block{Row: 0, Col: 2, Color: core.ColorRed}, p.Blocks[1])
}

func TestControllerHardDrop(t *testing.T) {
	c := NewController(NewBoard(5, 2))
	c.SetActive(&Piece{Blocks: [2]Block{
		{Row: -1, Col: 0, Color: core.ColorRed},
		{Row: -2, Col: 0, Color: core.ColorRed},
	}})

	rows, landed := c.HardDrop()

	assert.Equal(t, 5, rows)
	assert.True(t, landed)
	assert.Equal(t, 4, c.Active().Blocks[0].Row)
}
