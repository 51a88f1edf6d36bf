package othello

// Size is the board edge length.
const Size = 8

// Board is an 8x8 Reversi grid. The zero value is all-empty; use
// NewStartingBoard for a regulation opening position.
type Board struct {
	cells [Size][Size]CellState
}

// NewStartingBoard returns the regulation opening position: White at
// (3,3) and (4,4), Black at (4,3) and (3,4).
func NewStartingBoard() Board {
	var b Board
	b.cells[3][3] = Taken(White)
	b.cells[4][4] = Taken(White)
	b.cells[3][4] = Taken(Black)
	b.cells[4][3] = Taken(Black)
	return b
}

// At returns the cell at (x, y), or (_, false) if the coordinate is off the
// board.
func (b Board) At(x, y int) (CellState, bool) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return CellState{}, false
	}
	return b.cells[y][x], true
}

var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// canFlipToward walks from (x,y) in direction (dx,dy) and reports whether a
// placement there by side would flip a non-empty run of the opponent's
// discs: the walk must cross at least one opposing disc before reaching a
// disc of side's own color, and must not run off the board or hit empty.
func (b Board) canFlipToward(x, y, dx, dy int, side Side) bool {
	nx, ny := x+dx, y+dy
	sawOpponent := false
	for {
		cell, ok := b.At(nx, ny)
		if !ok || cell.IsEmpty() {
			return false
		}
		s, _ := cell.Side()
		if s == side {
			return sawOpponent
		}
		sawOpponent = true
		nx += dx
		ny += dy
	}
}

// CanMove reports whether side may legally place a disc at (x, y): the cell
// must be empty and the placement must flip at least one run in some
// direction.
func (b Board) CanMove(x, y int, side Side) bool {
	cell, ok := b.At(x, y)
	if !ok || !cell.IsEmpty() {
		return false
	}
	for _, d := range directions {
		if b.canFlipToward(x, y, d[0], d[1], side) {
			return true
		}
	}
	return false
}

// LegalMoves returns every coordinate at which side may legally place a
// disc, in row-major order. It never includes Pass.
func (b Board) LegalMoves(side Side) []Move {
	moves := make([]Move, 0, Size*Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.CanMove(x, y, side) {
				moves = append(moves, Coord(x, y))
			}
		}
	}
	return moves
}

// flipToward walks from (x,y) in direction (dx,dy), and if the run is
// flippable, flips every disc in the run in place and returns the number of
// discs flipped.
func (b *Board) flipToward(x, y, dx, dy int, side Side) int {
	nx, ny := x+dx, y+dy
	count := 0
	for {
		cell, ok := b.At(nx, ny)
		if !ok || cell.IsEmpty() {
			return 0
		}
		s, _ := cell.Side()
		if s == side {
			if count == 0 {
				return 0
			}
			fx, fy := x+dx, y+dy
			for i := 0; i < count; i++ {
				b.cells[fy][fx] = Taken(side)
				fx += dx
				fy += dy
			}
			return count
		}
		count++
		nx += dx
		ny += dy
	}
}

// ApplyMove places a side disc at (x, y), flipping every captured run, and
// returns the flipped coordinates. The caller must have already checked
// CanMove(x, y, side); ApplyMove does not re-validate.
func (b *Board) ApplyMove(x, y int, side Side) []Move {
	b.cells[y][x] = Taken(side)
	var flipped []Move
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		n := b.flipToward(x, y, d[0], d[1], side)
		for i := 0; i < n; i++ {
			flipped = append(flipped, Coord(nx, ny))
			nx += d[0]
			ny += d[1]
		}
	}
	return flipped
}

// Score is the Black-minus-White stone count, in [-64, 64]. Positive favors
// Black.
func (b Board) Score() int {
	score := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			cell := b.cells[y][x]
			if cell.IsEmpty() {
				continue
			}
			s, _ := cell.Side()
			if s == Black {
				score++
			} else {
				score--
			}
		}
	}
	return score
}

func (b Board) String() string {
	out := make([]byte, 0, (Size+2)*(Size+1))
	out = append(out, " 01234567\n"...)
	for y := 0; y < Size; y++ {
		out = append(out, byte('0'+y))
		for x := 0; x < Size; x++ {
			out = append(out, b.cells[y][x].String()[0])
		}
		out = append(out, '\n')
	}
	return string(out)
}
