package othello

// Gamestate pairs a Board with a half-move counter. The side to move is
// Black when t is even, White when odd. Legal moves are computed lazily and
// cached until the next Apply; the cache slice is shared across value
// copies, which is safe because it is only ever replaced, never mutated in
// place.
type Gamestate struct {
	board      Board
	t          int
	movesCache []Move
	movesValid bool
}

// NewGamestate returns the regulation opening position at t=0.
func NewGamestate() Gamestate {
	return Gamestate{board: NewStartingBoard()}
}

// NewGamestateFrom builds a Gamestate from an existing board and half-move
// counter, for tests and codecs that reconstruct positions directly.
func NewGamestateFrom(board Board, t int) Gamestate {
	return Gamestate{board: board, t: t}
}

// Board returns the current board.
func (g Gamestate) Board() Board {
	return g.board
}

// T returns the half-move counter.
func (g Gamestate) T() int {
	return g.t
}

// SideToMove returns Black when t is even, White when odd.
func (g Gamestate) SideToMove() Side {
	if g.t%2 == 0 {
		return Black
	}
	return White
}

// Score is the board's Black-minus-White stone count.
func (g Gamestate) Score() int {
	return g.board.Score()
}

// Equal reports whether two Gamestates have the same board and half-move
// counter.
func (g Gamestate) Equal(other Gamestate) bool {
	return g.board == other.board && g.t == other.t
}

// LegalMoves returns the side-to-move's available moves: board coordinates
// if any exist, otherwise []Move{Pass} if the opponent could move, otherwise
// nil (the position is terminal). The result is memoized until the next
// Apply.
func (g *Gamestate) LegalMoves() []Move {
	if g.movesValid {
		return g.movesCache
	}
	side := g.SideToMove()
	coords := g.board.LegalMoves(side)
	var moves []Move
	switch {
	case len(coords) > 0:
		moves = coords
	case len(g.board.LegalMoves(side.Opponent())) > 0:
		moves = []Move{Pass}
	default:
		moves = nil
	}
	g.movesCache = moves
	g.movesValid = true
	return moves
}

// IsTerminal reports whether neither side has a legal move.
func (g *Gamestate) IsTerminal() bool {
	return len(g.LegalMoves()) == 0
}

// Apply plays m if it is legal for the side to move, advancing the
// half-move counter and flipping captured discs. It reports whether m was
// legal; an illegal m leaves the Gamestate unchanged.
func (g *Gamestate) Apply(m Move) bool {
	_, ok := g.ApplyDetailed(m)
	return ok
}

// ApplyDetailed behaves like Apply but also returns the coordinates flipped
// by the move (nil for Pass or an illegal move).
func (g *Gamestate) ApplyDetailed(m Move) ([]Move, bool) {
	moves := g.LegalMoves()
	legal := false
	for _, mv := range moves {
		if mv == m {
			legal = true
			break
		}
	}
	if !legal {
		return nil, false
	}
	side := g.SideToMove()
	g.t++
	var flipped []Move
	if !m.IsPass() {
		flipped = g.board.ApplyMove(m.X, m.Y, side)
	}
	g.movesCache = nil
	g.movesValid = false
	return flipped, true
}

// ApplySequence plays each move in order, stopping (and returning false) at
// the first illegal one.
func (g *Gamestate) ApplySequence(moves []Move) bool {
	for _, m := range moves {
		if !g.Apply(m) {
			return false
		}
	}
	return true
}
