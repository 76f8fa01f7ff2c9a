package bitmg

import "strings"

// Move is a candidate move produced by the generator and consumed by Apply.
type Move struct {
	From      Square
	To        Square
	Capture   bool
	EnPassant bool
	Castling  Castling  // NoCastling for ordinary moves
	Promotion PieceKind // NoKind unless a pawn reaches the far rank
}

// String produces the debug form, e.g. "e2 -> e4", "e5 X d6 e.p.", "e7 -> e8 = Queen", "e1 -> g1 O-O".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	if m.Capture {
		sb.WriteString(" X ")
	} else {
		sb.WriteString(" -> ")
	}
	sb.WriteString(m.To.String())
	if m.EnPassant {
		sb.WriteString(" e.p.")
	}
	if m.Promotion != NoKind {
		sb.WriteString(" = ")
		sb.WriteString(m.Promotion.String())
	}
	if m.Castling != NoCastling {
		sb.WriteByte(' ')
		sb.WriteString(m.Castling.String())
	}
	return sb.String()
}

// UCI returns the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter())
	}
	return s
}
