package bitmg

// Direction tables as (dx, dy) in White's orientation.
var (
	knightOffsets = [8][2]int{
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	}

	// Bishop directions: NE, SE, SW, NW
	diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

	// Rook directions: N, E, S, W
	orthogonalDirs = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

	// King directions clockwise from N
	kingDirs = [8][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}

	// Pawn capture directions: forward-left, forward-right
	pawnCaptureDirs = [2]int{-1, 1}

	promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}
)

// generator accumulates the moves of one Generate call.
type generator struct {
	p     *Position
	us    Side
	moves []Move
}

// Generate returns every pseudo-legal move for the side to move.
// Pseudo-legal obeys piece rules and blockers, and castling checks rights,
// empty path and attacked squares, but no move is tested for leaving the
// mover's own king in check.
func (p *Position) Generate() []Move { return p.GenerateInto(make([]Move, 0, 64)) }

// GenerateInto appends all pseudo-legal moves into dst[:0] and returns it.
// Moves come out square-ascending, then in direction-table order.
func (p *Position) GenerateInto(dst []Move) []Move {
	g := generator{p: p, us: p.side, moves: dst[:0]}
	for sq := range p.occupancy[p.side].All() {
		kind, _ := p.KindAt(sq)
		switch kind {
		case Pawn:
			g.pawn(sq)
		case Knight:
			g.leaps(sq, knightOffsets[:])
		case Bishop:
			g.rays(sq, diagonalDirs[:], true)
		case Rook:
			g.rays(sq, orthogonalDirs[:], true)
		case Queen:
			g.rays(sq, orthogonalDirs[:], true)
			g.rays(sq, diagonalDirs[:], true)
		case King:
			g.rays(sq, kingDirs[:], false)
			g.castles(sq)
		}
	}
	return g.moves
}

func (g *generator) add(m Move) { g.moves = append(g.moves, m) }

// target classifies a destination: empty, enemy (capture) or friendly (blocked).
func (g *generator) target(to Square) (free, capture bool) {
	side, occupied := g.p.SideAt(to)
	if !occupied {
		return true, false
	}
	return false, side != g.us
}

// leaps emits single jumps to each on-board offset not held by a friendly piece.
func (g *generator) leaps(from Square, offsets [][2]int) {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		free, capture := g.target(to)
		if free || capture {
			g.add(Move{From: from, To: to, Capture: capture})
		}
	}
}

// rays casts along each direction until the edge or the first occupied
// square, which is included only when it holds an opponent. A non-ranged
// ray stops after one step.
func (g *generator) rays(from Square, dirs [][2]int, ranged bool) {
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.Offset(d[0], d[1])
			if !ok {
				break
			}
			free, capture := g.target(to)
			if free || capture {
				g.add(Move{From: from, To: to, Capture: capture})
			}
			if !free || !ranged {
				break
			}
			cur = to
		}
	}
}

// pawn emits pushes, double pushes, captures and en-passant captures.
func (g *generator) pawn(from Square) {
	p := g.p
	if one, ok := from.Step(g.us, 0, 1); ok && !p.HasPiece(one) {
		g.pawnMove(from, one, false)
		if from.Rank() == g.us.PawnRank() {
			if two, ok := from.Step(g.us, 0, 2); ok && !p.HasPiece(two) {
				g.add(Move{From: from, To: two})
			}
		}
	}

	for _, dx := range pawnCaptureDirs {
		to, ok := from.Step(g.us, dx, 1)
		if !ok {
			continue
		}
		if side, occupied := p.SideAt(to); occupied {
			if side != g.us {
				g.pawnMove(from, to, true)
			}
		} else if p.IsEnPassantTarget(to) {
			g.add(Move{From: from, To: to, Capture: true, EnPassant: true})
		}
	}
}

// pawnMove emits one move, or one per promotion kind on the far rank.
func (g *generator) pawnMove(from, to Square, capture bool) {
	if to.Rank() != g.us.PromotionRank() {
		g.add(Move{From: from, To: to, Capture: capture})
		return
	}
	for _, k := range promotionKinds {
		g.add(Move{From: from, To: to, Capture: capture, Promotion: k})
	}
}

// castles emits each castling variant whose right is held, whose king and
// rook stand on their home squares, whose path is empty and whose king
// squares are not attacked.
func (g *generator) castles(from Square) {
	p := g.p
	for _, c := range sideCastlings[g.us] {
		cl := &castlingGeometry[c]
		if !p.castling.Has(cl.right) || from != cl.king {
			continue
		}
		if !p.OccupancyOf(g.us, Rook).Has(cl.rook) {
			continue
		}
		if p.Occupied()&SquareSet(cl.between...) != 0 {
			continue
		}
		if p.anyAttacked(cl.safe, g.us) {
			continue
		}
		g.add(Move{From: from, To: cl.kingTo, Castling: c})
	}
}
