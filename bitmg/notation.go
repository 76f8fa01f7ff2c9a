package bitmg

import (
	"fmt"
	"strings"
)

// ParseMove converts a coordinate-notation string (e2e4, e7e8q, e1g1) into
// the matching legal move of the position. Castling is written as the king's
// two-square step.
func (p *Position) ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return Move{}, fmt.Errorf("%w: %q has bad length", ErrInvalidMove, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := NoKind
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Move{}, fmt.Errorf("%w: promotion piece %q", ErrInvalidMove, movestr[4])
		}
	}

	if !p.HasPiece(from) {
		return Move{}, fmt.Errorf("%w: %s", ErrNoPieceAtSquare, from)
	}
	for _, m := range p.GenerateLegal() {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s is not legal here", ErrInvalidMove, movestr)
}

// ApplyUCI parses a coordinate-notation move and plays it.
func (p *Position) ApplyUCI(movestr string) (Move, error) {
	m, err := p.ParseMove(movestr)
	if err != nil {
		return Move{}, err
	}
	return m, p.Apply(m)
}
