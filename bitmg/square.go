package bitmg

import "fmt"

// Square is a board index 0..63, rank-major from the top-left corner:
//
//	a8=0  b8=1  ... h8=7
//	a7=8  ...
//	a1=56 ...       h1=63
type Square int8

// NoSquare marks an absent square (e.g. no en-passant target).
const NoSquare Square = -1

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// SquareAt maps a file ('a'..'h') and rank (1..8) onto its index.
func SquareAt(file byte, rank int) (Square, error) {
	if file < 'a' || file > 'h' || rank < 1 || rank > 8 {
		return NoSquare, fmt.Errorf("%w: file %q rank %d", ErrInvalidSquare, file, rank)
	}
	return squareOf(int(file-'a'), rank), nil
}

// ParseSquare reads a square in coordinate form, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return SquareAt(s[0], int(s[1]-'0'))
}

// squareOf combines a zero-based file and a 1-based rank; both must be in range.
func squareOf(fileIdx, rank int) Square {
	return Square((8-rank)*8 + fileIdx)
}

// Valid reports whether sq is one of the 64 board squares.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// File returns the file letter 'a'..'h'.
func (sq Square) File() byte { return 'a' + byte(sq%8) }

// FileIndex returns the zero-based file (a=0).
func (sq Square) FileIndex() int { return int(sq % 8) }

// Rank returns the rank 1..8.
func (sq Square) Rank() int { return 8 - int(sq/8) }

// Offset moves dx files towards h and dy ranks towards rank 8. The file and
// rank are bounded independently so stepping off the h-file never wraps onto
// the next rank.
func (sq Square) Offset(dx, dy int) (Square, bool) {
	f := sq.FileIndex() + dx
	r := sq.Rank() + dy
	if f < 0 || f > 7 || r < 1 || r > 8 {
		return NoSquare, false
	}
	return squareOf(f, r), true
}

// Step moves dy ranks forward and dx files rightward as seen by side s.
func (sq Square) Step(s Side, dx, dy int) (Square, bool) {
	d := s.Forward()
	return sq.Offset(dx*d, dy*d)
}

// RankDistance is the absolute rank difference between two squares.
func RankDistance(a, b Square) int {
	d := a.Rank() - b.Rank()
	if d < 0 {
		return -d
	}
	return d
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{sq.File(), byte('0' + sq.Rank())})
}
