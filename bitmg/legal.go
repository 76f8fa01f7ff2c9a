package bitmg

// GenerateLegal returns the pseudo-legal moves that do not leave the mover's
// king attacked, in generation order.
func (p *Position) GenerateLegal() []Move {
	return p.legalInto(p.Generate(), make([]Move, 0, 64))
}

// legalInto filters pseudo into dst[:0]. pseudo and dst must not share storage.
func (p *Position) legalInto(pseudo, dst []Move) []Move {
	out := dst[:0]
	for _, m := range pseudo {
		if p.IsLegal(m) {
			out = append(out, m)
		}
	}
	return out
}

// IsLegal plays m on a copy and reports whether it applies cleanly and
// leaves the mover out of check.
func (p *Position) IsLegal(m Move) bool {
	c := *p
	if err := c.Apply(m); err != nil {
		return false
	}
	return !c.InCheck(p.side)
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.Generate() {
		if p.IsLegal(m) {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (p *Position) InCheckmate() bool {
	return p.InCheck(p.side) && !p.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (p *Position) InStalemate() bool {
	return !p.InCheck(p.side) && !p.HasLegalMoves()
}

// IsDrawBy50 reports a 50-move rule draw (the clock counts half-moves).
func (p *Position) IsDrawBy50() bool {
	return p.halfmoveClock >= 100
}
