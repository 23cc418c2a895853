package domino

// MoveResult is the outcome of translating the active piece.
type MoveResult int

const (
	MoveOK      MoveResult = iota // Shift committed
	MoveBlocked                   // Rejected, nothing changed
	MoveLanded                    // Downward move rejected: the piece must lock
)

// String returns a readable name for the result.
func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Controller moves the active piece against a board.
type Controller struct {
	board  *Board
	active *Piece
}

// NewController creates a controller with no active piece.
func NewController(b *Board) *Controller {
	return &Controller{board: b}
}

// Active returns the falling piece, or nil.
func (c *Controller) Active() *Piece {
	return c.active
}

// SetActive hands a piece to the controller.
func (c *Controller) SetActive(p *Piece) {
	c.active = p
}

// Release drops the controller's reference to the active piece and returns it.
func (c *Controller) Release() *Piece {
	p := c.active
	c.active = nil
	return p
}

// Translate shifts the active piece by (dx, dy) if the board allows it.
// A rejected pure downward step reports MoveLanded; the caller locks.
func (c *Controller) Translate(dx, dy int) MoveResult {
	if c.active == nil {
		return MoveBlocked
	}

	moved := c.active.Shifted(dx, dy)
	if c.board.CanOccupy(moved[:]) {
		c.active.Blocks = moved
		return MoveOK
	}
	if dx == 0 && dy == 1 {
		return MoveLanded
	}
	return MoveBlocked
}

// Rotate swaps the two block colors. Positions never change.
func (c *Controller) Rotate() bool {
	if c.active == nil {
		return false
	}
	c.active.SwapColors()
	return true
}

// HardDrop moves the piece down until it lands.
// Returns the number of rows travelled and whether the piece landed.
func (c *Controller) HardDrop() (rows int, landed bool) {
	for {
		switch c.Translate(0, 1) {
		case MoveOK:
			rows++
		case MoveLanded:
			return rows, true
		default:
			return rows, false
		}
	}
}
