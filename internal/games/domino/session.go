package domino

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the mutable state of one game, from Start to game over.
// A new Session replaces the old one on every Start.
type Session struct {
	ID           string
	Board        *Board
	Next         Piece
	Score        int
	Level        int
	Combo        int
	DropInterval time.Duration
	Elapsed      int // Seconds of unpaused play
	Message      string
}

func newSession(rows, cols int, scoring Scoring) *Session {
	return &Session{
		ID:           uuid.NewString(),
		Board:        NewBoard(rows, cols),
		Level:        1,
		DropInterval: scoring.DropInterval(1),
	}
}

// FormatElapsed renders seconds as MM:SS.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
