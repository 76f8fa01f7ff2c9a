package bitmg

import "fmt"

// rookHomeRights maps each rook corner onto the right it guards.
var rookHomeRights = map[Square]CastlingRights{
	H1: CastleWhiteK,
	A1: CastleWhiteQ,
	H8: CastleBlackK,
	A8: CastleBlackQ,
}

// Apply plays m on the position in place. The move is checked against the
// position before anything is touched, so on error the position is unchanged.
//
// The piece on m.From moves to m.To, capturing whatever stands there (or the
// pawn behind m.To on an en-passant capture), promoting when m.Promotion is
// set, and relocating the rook when m.Castling is set. Side and kind sets
// are updated together; the en-passant target, castling rights, clocks and
// side to move are advanced.
func (p *Position) Apply(m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return fmt.Errorf("%w: move %s", ErrInvalidSquare, m.UCI())
	}
	moving := p.PieceAt(m.From)
	if moving.Empty() {
		return fmt.Errorf("%w: %s", ErrNoPieceAtSquare, m.From)
	}
	us := moving.Side
	if us != p.side {
		return fmt.Errorf("%w: %s on %s", ErrNotSideToMove, moving, m.From)
	}
	them := us.Opponent()

	captured := p.PieceAt(m.To)
	if !captured.Empty() && captured.Side == us {
		return fmt.Errorf("%w: %s captures own piece on %s", ErrInvalidMove, m.From, m.To)
	}

	var castle *castlingLayout
	if m.Castling != NoCastling {
		if int(m.Castling) >= len(castlingGeometry) {
			return fmt.Errorf("%w: castling variant %d", ErrInvalidMove, m.Castling)
		}
		castle = &castlingGeometry[m.Castling]
		if moving.Kind != King || castle.side != us || m.From != castle.king || m.To != castle.kingTo ||
			p.PieceAt(castle.rook) != (Piece{Side: us, Kind: Rook}) ||
			p.Occupied()&SquareSet(castle.between...) != 0 {
			return fmt.Errorf("%w: %s does not fit %s", ErrInvalidMove, m.Castling, m)
		}
	}

	if moving.Kind == Pawn && m.To.Rank() == us.PromotionRank() && m.Promotion == NoKind {
		return fmt.Errorf("%w: pawn reaches %s without promoting", ErrInvalidMove, m.To)
	}
	if m.Promotion != NoKind {
		if moving.Kind != Pawn || m.To.Rank() != us.PromotionRank() ||
			m.Promotion == Pawn || m.Promotion == King || !m.Promotion.valid() {
			return fmt.Errorf("%w: promotion %s", ErrInvalidMove, m)
		}
	}

	enPassant := moving.Kind == Pawn && p.IsEnPassantTarget(m.To) && m.From.File() != m.To.File()

	// En passant target lives for exactly one ply
	p.enPassant = NoSquare
	if moving.Kind == Pawn && RankDistance(m.From, m.To) == 2 {
		p.enPassant, _ = m.From.Step(us, 0, 1)
	}

	// Capture on the destination, or the pawn that skipped past it
	if !captured.Empty() {
		p.remove(m.To)
	} else if enPassant {
		victim, _ := m.To.Step(us, 0, -1)
		captured = p.remove(victim)
	}

	placed := moving
	if m.Promotion != NoKind {
		placed.Kind = m.Promotion
	}
	p.put(m.To, placed)

	if castle != nil {
		rook := p.remove(castle.rook)
		p.put(castle.rookTo, rook)
	}

	p.remove(m.From)

	// Castling rights: king moves revoke both, rooks leaving or captured on a corner revoke one
	if moving.Kind == King {
		p.castling &^= sideRights(us)
	}
	if moving.Kind == Rook {
		if r, ok := rookHomeRights[m.From]; ok && castlingSideOf(r) == us {
			p.castling &^= r
		}
	}
	if captured.Kind == Rook {
		if r, ok := rookHomeRights[m.To]; ok && castlingSideOf(r) == them {
			p.castling &^= r
		}
	}

	if moving.Kind == Pawn || !captured.Empty() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}
	p.side = them
	return nil
}

// castlingSideOf returns the side a single castling flag belongs to.
func castlingSideOf(r CastlingRights) Side {
	if r&(CastleWhiteK|CastleWhiteQ) != 0 {
		return White
	}
	return Black
}
