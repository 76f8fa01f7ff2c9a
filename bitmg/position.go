package bitmg

import "fmt"

// Setup is the decoded state a Position is built from: 64 cells in square
// order (a8 first, h1 last), the side to move, castling rights, the optional
// en-passant target and the move counters.
type Setup struct {
	Cells          [64]Piece
	SideToMove     Side
	Castling       CastlingRights
	EnPassant      Square // NoSquare when absent
	HalfMoveClock  int
	FullMoveNumber int
}

// Position is the board state: per-side and per-kind occupancy sets plus the
// game state needed to generate and apply moves.
type Position struct {
	// Occupancy for each side (index 0 = white, 1 = black)
	occupancy [2]Bitboard

	// One set per piece kind, indexed by PieceKind.index()
	kinds [kindCount]Bitboard

	// Side to move
	side Side

	castling CastlingRights

	// Square skipped by the last double pawn push, otherwise NoSquare
	enPassant Square

	// Half-moves since the last capture or pawn move
	halfmoveClock int

	// Starts at 1, incremented after Black's move
	fullmoveNumber int
}

// NewPosition builds a position from decoded state. It rejects states that
// would break the set invariants or that no game can reach.
func NewPosition(s Setup) (*Position, error) {
	if !s.SideToMove.valid() {
		return nil, fmt.Errorf("%w: side to move %d", ErrMalformedPosition, s.SideToMove)
	}
	if s.Castling&^AllCastlingRights != 0 {
		return nil, fmt.Errorf("%w: castling flags %#x", ErrMalformedPosition, uint8(s.Castling))
	}
	if s.HalfMoveClock < 0 || s.FullMoveNumber < 0 {
		return nil, fmt.Errorf("%w: negative move counter", ErrMalformedPosition)
	}

	p := &Position{
		side:           s.SideToMove,
		castling:       s.Castling,
		enPassant:      NoSquare,
		halfmoveClock:  s.HalfMoveClock,
		fullmoveNumber: s.FullMoveNumber,
	}
	if p.fullmoveNumber == 0 {
		p.fullmoveNumber = 1
	}

	for i, c := range s.Cells {
		if c.Empty() {
			continue
		}
		sq := Square(i)
		if !c.Kind.valid() || !c.Side.valid() {
			return nil, fmt.Errorf("%w: bad piece on %s", ErrMalformedPosition, sq)
		}
		if c.Kind == Pawn && (sq.Rank() == 1 || sq.Rank() == 8) {
			return nil, fmt.Errorf("%w: pawn on back rank %s", ErrMalformedPosition, sq)
		}
		p.put(sq, c)
	}

	for _, side := range [2]Side{White, Black} {
		if p.OccupancyOf(side, King).Count() > 1 {
			return nil, fmt.Errorf("%w: %s has more than one king", ErrMalformedPosition, side)
		}
	}

	if s.EnPassant != NoSquare {
		if !s.EnPassant.Valid() {
			return nil, fmt.Errorf("%w: en-passant square %d", ErrMalformedPosition, s.EnPassant)
		}
		// the target sits behind a pawn of the side that just moved
		want := 6
		if s.SideToMove == Black {
			want = 3
		}
		if s.EnPassant.Rank() != want || p.HasPiece(s.EnPassant) {
			return nil, fmt.Errorf("%w: en-passant square %s", ErrMalformedPosition, s.EnPassant)
		}
		p.enPassant = s.EnPassant
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Setup returns the decoded form of the position, the inverse of NewPosition.
func (p *Position) Setup() Setup {
	s := Setup{
		SideToMove:     p.side,
		Castling:       p.castling,
		EnPassant:      p.enPassant,
		HalfMoveClock:  p.halfmoveClock,
		FullMoveNumber: p.fullmoveNumber,
	}
	for sq := Square(0); sq < 64; sq++ {
		s.Cells[sq] = p.PieceAt(sq)
	}
	return s
}

// Clone returns an independent copy for analysis.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// ==========================
// Queries
// ==========================

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Side { return p.side }

// CastlingRights returns the current castling permissions.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassant returns the current en-passant target square or NoSquare.
func (p *Position) EnPassant() Square { return p.enPassant }

// HalfMoveClock accessor for consumers that want read-only access.
func (p *Position) HalfMoveClock() int { return p.halfmoveClock }

// FullMoveNumber returns the full move counter.
func (p *Position) FullMoveNumber() int { return p.fullmoveNumber }

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard { return p.occupancy[White] | p.occupancy[Black] }

// Occupancy returns the squares held by side.
func (p *Position) Occupancy(side Side) Bitboard { return p.occupancy[side] }

// Pieces returns the squares holding kind, for both sides.
func (p *Position) Pieces(kind PieceKind) Bitboard { return p.kinds[kind.index()] }

// OccupancyOf returns the squares holding side's pieces of the given kind.
func (p *Position) OccupancyOf(side Side, kind PieceKind) Bitboard {
	return p.occupancy[side] & p.kinds[kind.index()]
}

// HasPiece reports whether sq is occupied.
func (p *Position) HasPiece(sq Square) bool { return p.Occupied().Has(sq) }

// SideAt returns the owner of the piece on sq.
func (p *Position) SideAt(sq Square) (Side, bool) {
	switch {
	case p.occupancy[White].Has(sq):
		return White, true
	case p.occupancy[Black].Has(sq):
		return Black, true
	}
	return White, false
}

// KindAt returns the kind of the piece on sq.
func (p *Position) KindAt(sq Square) (PieceKind, bool) {
	for i, set := range p.kinds {
		if set.Has(sq) {
			return Kinds[i], true
		}
	}
	return NoKind, false
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	side, ok := p.SideAt(sq)
	if !ok {
		return NoPiece
	}
	kind, _ := p.KindAt(sq)
	return Piece{Side: side, Kind: kind}
}

// IsEnPassantTarget reports whether sq is the current en-passant target.
func (p *Position) IsEnPassantTarget(sq Square) bool {
	return p.enPassant != NoSquare && p.enPassant == sq
}

// King returns side's king square, or NoSquare when it has none.
func (p *Position) King(side Side) Square {
	k := p.OccupancyOf(side, King)
	if k == 0 {
		return NoSquare
	}
	return popLSB(&k)
}

// ==========================
// Set maintenance
// ==========================

// put places a piece on an empty square, updating side and kind sets together.
func (p *Position) put(sq Square, pc Piece) {
	p.occupancy[pc.Side].Set(sq)
	p.kinds[pc.Kind.index()].Set(sq)
}

// remove lifts whatever stands on sq and returns it.
func (p *Position) remove(sq Square) Piece {
	pc := p.PieceAt(sq)
	if pc.Empty() {
		return NoPiece
	}
	p.occupancy[pc.Side].Clear(sq)
	p.kinds[pc.Kind.index()].Clear(sq)
	return pc
}

// Validate checks that the side sets are disjoint, that the kind sets are
// pairwise disjoint and that both families cover the same squares.
func (p *Position) Validate() error {
	if overlap := p.occupancy[White] & p.occupancy[Black]; overlap != 0 {
		return fmt.Errorf("%w: squares %v held by both sides", ErrMalformedPosition, overlap.Squares())
	}
	var union Bitboard
	for i, set := range p.kinds {
		if overlap := union & set; overlap != 0 {
			return fmt.Errorf("%w: %s shares squares %v", ErrMalformedPosition, Kinds[i], overlap.Squares())
		}
		union |= set
	}
	if union != p.Occupied() {
		return fmt.Errorf("%w: kind sets cover %v, side sets cover %v",
			ErrMalformedPosition, union.Squares(), p.Occupied().Squares())
	}
	return nil
}

// String draws the board, rank 8 first, upper case for White.
func (p *Position) String() string {
	buf := make([]byte, 0, 8*9)
	for sq := Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		ch := byte('.')
		if !pc.Empty() {
			ch = pc.Kind.Letter()
			if pc.Side == White {
				ch -= 'a' - 'A'
			}
		}
		buf = append(buf, ch)
		if sq%8 == 7 && sq < 63 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
