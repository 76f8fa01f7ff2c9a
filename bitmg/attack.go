package bitmg

// attackVector pairs a set of directions with the piece kinds that attack
// along them. A ranged vector is walked until the first occupied square.
type attackVector struct {
	dirs   [][2]int
	kinds  []PieceKind
	ranged bool
}

var attackVectors = [...]attackVector{
	{dirs: diagonalDirs[:], kinds: []PieceKind{Bishop, Queen}, ranged: true},
	{dirs: orthogonalDirs[:], kinds: []PieceKind{Rook, Queen}, ranged: true},
	{dirs: kingDirs[:], kinds: []PieceKind{King}},
	{dirs: knightOffsets[:], kinds: []PieceKind{Knight}},
}

// IsAttacked reports whether any piece of mover's opponent could capture on
// sq next, found by casting each attack pattern outwards from sq.
func (p *Position) IsAttacked(sq Square, mover Side) bool {
	them := mover.Opponent()
	occ := p.Occupied()

	for i := range attackVectors {
		v := &attackVectors[i]
		var attackers Bitboard
		for _, k := range v.kinds {
			attackers |= p.OccupancyOf(them, k)
		}
		if attackers == 0 {
			continue
		}
		for _, d := range v.dirs {
			cur := sq
			for {
				next, ok := cur.Offset(d[0], d[1])
				if !ok {
					break
				}
				if occ.Has(next) {
					if attackers.Has(next) {
						return true
					}
					break
				}
				if !v.ranged {
					break
				}
				cur = next
			}
		}
	}

	// An enemy pawn attacks sq from one rank ahead of it, seen from mover.
	pawns := p.OccupancyOf(them, Pawn)
	for _, dx := range pawnCaptureDirs {
		if from, ok := sq.Step(mover, dx, 1); ok && pawns.Has(from) {
			return true
		}
	}
	return false
}

// anyAttacked reports whether any of the squares is attacked by mover's opponent.
func (p *Position) anyAttacked(squares []Square, mover Side) bool {
	for _, sq := range squares {
		if p.IsAttacked(sq, mover) {
			return true
		}
	}
	return false
}

// InCheck reports whether side's king is attacked. A side without a king is never in check.
func (p *Position) InCheck(side Side) bool {
	k := p.King(side)
	if k == NoSquare {
		return false
	}
	return p.IsAttacked(k, side)
}
