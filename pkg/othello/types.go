// Package othello implements the 8x8 Reversi/Othello rules engine: board
// mechanics, flip propagation, and the turn-tracking Gamestate MCTS drives.
package othello

// Side identifies a player.
type Side int

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// CellState is either empty or taken by a side. The zero value is Empty.
type CellState struct {
	taken bool
	side  Side
}

// EmptyCell is the zero-value, unoccupied cell.
var EmptyCell = CellState{}

// Taken returns a cell occupied by side.
func Taken(side Side) CellState {
	return CellState{taken: true, side: side}
}

// IsEmpty reports whether the cell is unoccupied.
func (c CellState) IsEmpty() bool {
	return !c.taken
}

// Side returns the occupying side and true, or (_, false) if empty.
func (c CellState) Side() (Side, bool) {
	return c.side, c.taken
}

func (c CellState) String() string {
	if c.IsEmpty() {
		return "."
	}
	if c.side == Black {
		return "B"
	}
	return "W"
}

// Move is either a board coordinate or the Pass sentinel. The zero value is
// the coordinate (0, 0), not Pass — use Pass or Coord to construct one.
type Move struct {
	pass bool
	X, Y int
}

// Pass is the obligatory non-move played when the side to move has no
// coordinate move available.
var Pass = Move{pass: true}

// Coord constructs a coordinate move.
func Coord(x, y int) Move {
	return Move{X: x, Y: y}
}

// IsPass reports whether this move is the Pass sentinel.
func (m Move) IsPass() bool {
	return m.pass
}

func (m Move) String() string {
	if m.pass {
		return "Pass"
	}
	return itoa(m.X) + "," + itoa(m.Y)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [2]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
