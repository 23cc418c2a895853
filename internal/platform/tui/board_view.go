package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-domino/internal/core"
	"github.com/vovakirdan/tui-domino/internal/games/domino"
)

// Board view layout constants
const (
	cellWidth   = 2  // Screen columns per board cell
	panelWidth  = 24 // Width of the side panel
	panelHeight = 11 // Rows used by the side panel
	panelGap    = 2  // Space between board and panel
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// BoardViewSize returns the screen size needed to draw a board.
func BoardViewSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2 + panelGap + panelWidth, max(rows+3, panelHeight+1)
}

// DrawBoard renders a snapshot centered on the screen: the well on the
// left, next piece and stats on the right.
func DrawBoard(scr *core.Screen, snap domino.Snapshot) {
	scr.Clear()

	needW, needH := BoardViewSize(snap.Rows, snap.Cols)
	if scr.Width() < needW || scr.Height() < needH {
		drawTooSmall(scr, needW, needH)
		return
	}

	ox := core.Clamp((scr.Width()-needW)/2, 0, scr.Width())
	oy := core.Clamp((scr.Height()-needH)/2, 0, scr.Height())
	well := core.NewRect(ox, oy+1, snap.Cols*cellWidth+2, snap.Rows+2)

	scr.DrawColoredText(ox+(well.W-11)/2, oy, "D O M I N O", core.ColorCyan)
	scr.DrawBox(well)

	for r, row := range snap.Cells {
		for c, cell := range row {
			x := well.X + 1 + c*cellWidth
			y := well.Y + 1 + r
			drawCell(scr, x, y, cell)
		}
	}

	drawBanner(scr, well, snap.State)
	drawPanel(scr, well.Right()+panelGap, well.Y, snap)
}

func drawCell(scr *core.Screen, x, y int, cell domino.Cell) {
	if !cell.Filled {
		scr.SetColored(x, y, emptyRune, core.ColorGray)
		scr.Set(x+1, y, ' ')
		return
	}
	for i := range cellWidth {
		scr.SetColored(x+i, y, blockRune, cell.Color)
	}
}

// drawBanner overlays the paused and game-over notices in the middle of the well.
func drawBanner(scr *core.Screen, well core.Rect, state domino.State) {
	var lines []string
	switch state {
	case domino.StateIdle:
		lines = []string{"PRESS R", "TO START"}
	case domino.StatePaused:
		lines = []string{"PAUSED", "P TO RESUME"}
	case domino.StateGameOver:
		lines = []string{"GAME OVER", "R TO RETRY"}
	default:
		return
	}

	mid := well.Y + well.H/2 - len(lines)/2
	for i, line := range lines {
		x := well.X + (well.W-len(line))/2
		scr.DrawColoredText(x, mid+i, line, core.ColorWhite)
	}
}

func drawPanel(scr *core.Screen, x, y int, snap domino.Snapshot) {
	scr.DrawColoredText(x, y, "NEXT", core.ColorGray)
	// Next[0] is the lower block; draw it under Next[1].
	for i, blk := range snap.Next {
		drawCell(scr, x, y+2-i, domino.Cell{Filled: true, Color: blk.Color})
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"COMBO", fmt.Sprintf("x%d", snap.Combo)},
		{"TIME", domino.FormatElapsed(snap.Elapsed)},
		{"SPEED", fmt.Sprintf("%dms", snap.DropInterval.Milliseconds())},
	}
	for i, st := range stats {
		scr.DrawColoredText(x, y+4+i, fmt.Sprintf("%-6s %s", st.label, st.value), core.ColorWhite)
	}

	if snap.Message != "" {
		scr.DrawColoredText(x, y+4+len(stats)+1, truncate(snap.Message, panelWidth), core.ColorYellow)
	}
}

func drawTooSmall(scr *core.Screen, w, h int) {
	msg := "Terminal too small"
	need := fmt.Sprintf("need %dx%d", w, h)
	y := scr.Height() / 2
	scr.DrawText((scr.Width()-len(msg))/2, y-1, msg)
	scr.DrawText((scr.Width()-len(need))/2, y, need)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
