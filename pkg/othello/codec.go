package othello

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CompactBoard is a 128-bit base-3 encoding of a Board: cell i (row-major,
// i = y*Size+x) contributes digit 0 (empty), 1 (Black) or 2 (White) at
// place value 3^i. 3^64 fits comfortably in 128 bits.
type CompactBoard [16]byte

// EncodeBoard packs b into its compact representation.
func EncodeBoard(b Board) CompactBoard {
	val := big.NewInt(0)
	three := big.NewInt(3)
	for i := Size*Size - 1; i >= 0; i-- {
		x, y := i%Size, i/Size
		val.Mul(val, three)
		cell, _ := b.At(x, y)
		var digit int64
		if !cell.IsEmpty() {
			if s, _ := cell.Side(); s == Black {
				digit = 1
			} else {
				digit = 2
			}
		}
		val.Add(val, big.NewInt(digit))
	}
	var out CompactBoard
	val.FillBytes(out[:])
	return out
}

// DecodeBoard unpacks a CompactBoard back into a Board. Every byte pattern
// produced by EncodeBoard round-trips; a value with digits above 2 has no
// defined meaning here and is rejected.
func DecodeBoard(c CompactBoard) (Board, error) {
	val := new(big.Int).SetBytes(c[:])
	three := big.NewInt(3)
	mod := new(big.Int)
	var b Board
	for i := 0; i < Size*Size; i++ {
		val.DivMod(val, three, mod)
		x, y := i%Size, i/Size
		switch mod.Int64() {
		case 0:
			b.cells[y][x] = EmptyCell
		case 1:
			b.cells[y][x] = Taken(Black)
		case 2:
			b.cells[y][x] = Taken(White)
		default:
			return Board{}, errors.Errorf("othello: compact board digit %d out of range at cell %d", mod.Int64(), i)
		}
	}
	if val.Sign() != 0 {
		return Board{}, errors.New("othello: compact board encodes more than 64 cells")
	}
	return b, nil
}

// RenderMoves renders a move history as a ';'-separated textual form:
// coordinates as "x,y", Pass as an empty token.
func RenderMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		if m.IsPass() {
			parts[i] = ""
		} else {
			parts[i] = strconv.Itoa(m.X) + "," + strconv.Itoa(m.Y)
		}
	}
	return strings.Join(parts, ";")
}

// ParseMoves parses a move history produced by RenderMoves. It rejects any
// token that is neither empty nor a pair of base-10 integers in [0, Size).
func ParseMoves(s string) ([]Move, error) {
	if s == "" {
		return nil, nil
	}
	tokens := strings.Split(s, ";")
	moves := make([]Move, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			moves[i] = Pass
			continue
		}
		parts := strings.SplitN(tok, ",", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("othello: move-history token %q is not a coordinate pair", tok)
		}
		x, err := parseDigitCoord(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "othello: move-history token %q", tok)
		}
		y, err := parseDigitCoord(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "othello: move-history token %q", tok)
		}
		moves[i] = Coord(x, y)
	}
	return moves, nil
}

func parseDigitCoord(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty coordinate")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.Errorf("non-digit coordinate %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "malformed coordinate")
	}
	if n < 0 || n >= Size {
		return 0, errors.Errorf("coordinate %d out of range", n)
	}
	return n, nil
}
