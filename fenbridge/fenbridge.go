// Package fenbridge translates between FEN text and bitmg positions. The
// piece placement field is decoded and encoded with corentings/chess; the
// remaining fields are handled here.
package fenbridge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corentings/chess/v2"

	"chess-core/bitmg"
)

// StartPos is the FEN of the initial position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is returned for text that is not a well-formed FEN record.
var ErrInvalidFEN = errors.New("invalid FEN")

var toBitmg = map[chess.Piece]bitmg.Piece{
	chess.WhitePawn:   {Side: bitmg.White, Kind: bitmg.Pawn},
	chess.WhiteBishop: {Side: bitmg.White, Kind: bitmg.Bishop},
	chess.WhiteKnight: {Side: bitmg.White, Kind: bitmg.Knight},
	chess.WhiteRook:   {Side: bitmg.White, Kind: bitmg.Rook},
	chess.WhiteQueen:  {Side: bitmg.White, Kind: bitmg.Queen},
	chess.WhiteKing:   {Side: bitmg.White, Kind: bitmg.King},
	chess.BlackPawn:   {Side: bitmg.Black, Kind: bitmg.Pawn},
	chess.BlackBishop: {Side: bitmg.Black, Kind: bitmg.Bishop},
	chess.BlackKnight: {Side: bitmg.Black, Kind: bitmg.Knight},
	chess.BlackRook:   {Side: bitmg.Black, Kind: bitmg.Rook},
	chess.BlackQueen:  {Side: bitmg.Black, Kind: bitmg.Queen},
	chess.BlackKing:   {Side: bitmg.Black, Kind: bitmg.King},
}

var fromBitmg = func() map[bitmg.Piece]chess.Piece {
	m := make(map[bitmg.Piece]chess.Piece, len(toBitmg))
	for cp, bp := range toBitmg {
		m[bp] = cp
	}
	return m
}()

// chessSquare maps a bitmg square onto the library's a1-based index.
func chessSquare(sq bitmg.Square) chess.Square {
	return chess.NewSquare(chess.File(sq.FileIndex()), chess.Rank(sq.Rank()-1))
}

// Decode parses a FEN record into a position.
func Decode(fen string) (*bitmg.Position, error) {
	s, err := DecodeSetup(fen)
	if err != nil {
		return nil, err
	}
	p, err := bitmg.NewPosition(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	return p, nil
}

// MustDecode is like Decode but panics on error. Intended for fixed FENs in
// tests and tools.
func MustDecode(fen string) *bitmg.Position {
	p, err := Decode(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// DecodeSetup parses a FEN record into decoded state without building a
// position. The move counters may be omitted; they default to 0 and 1.
func DecodeSetup(fen string) (bitmg.Setup, error) {
	var s bitmg.Setup
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return s, fmt.Errorf("%w: want 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	var board chess.Board
	if err := board.UnmarshalText([]byte(fields[0])); err != nil {
		return s, fmt.Errorf("%w: placement %q: %w", ErrInvalidFEN, fields[0], err)
	}
	for i := range s.Cells {
		sq := bitmg.Square(i)
		if pc, ok := toBitmg[board.Piece(chessSquare(sq))]; ok {
			s.Cells[i] = pc
		}
	}

	switch fields[1] {
	case "w":
		s.SideToMove = bitmg.White
	case "b":
		s.SideToMove = bitmg.Black
	default:
		return s, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return s, err
	}
	s.Castling = rights

	s.EnPassant = bitmg.NoSquare
	if fields[3] != "-" {
		sq, err := bitmg.ParseSquare(fields[3])
		if err != nil {
			return s, fmt.Errorf("%w: en passant: %w", ErrInvalidFEN, err)
		}
		s.EnPassant = sq
	}

	s.FullMoveNumber = 1
	if len(fields) == 6 {
		if s.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil || s.HalfMoveClock < 0 {
			return s, fmt.Errorf("%w: half-move clock %q", ErrInvalidFEN, fields[4])
		}
		if s.FullMoveNumber, err = strconv.Atoi(fields[5]); err != nil || s.FullMoveNumber < 1 {
			return s, fmt.Errorf("%w: full-move number %q", ErrInvalidFEN, fields[5])
		}
	}
	return s, nil
}

func parseCastling(field string) (bitmg.CastlingRights, error) {
	if field == "-" {
		return bitmg.NoCastlingRights, nil
	}
	var rights bitmg.CastlingRights
	for i := 0; i < len(field); i++ {
		var r bitmg.CastlingRights
		switch field[i] {
		case 'K':
			r = bitmg.CastleWhiteK
		case 'Q':
			r = bitmg.CastleWhiteQ
		case 'k':
			r = bitmg.CastleBlackK
		case 'q':
			r = bitmg.CastleBlackQ
		default:
			return 0, fmt.Errorf("%w: castling %q", ErrInvalidFEN, field)
		}
		if rights.Has(r) {
			return 0, fmt.Errorf("%w: castling %q repeats %c", ErrInvalidFEN, field, field[i])
		}
		rights |= r
	}
	return rights, nil
}

// Encode renders a position as a six-field FEN record.
func Encode(p *bitmg.Position) string {
	s := p.Setup()
	placed := make(map[chess.Square]chess.Piece)
	for i, pc := range s.Cells {
		if pc.Empty() {
			continue
		}
		placed[chessSquare(bitmg.Square(i))] = fromBitmg[pc]
	}

	side := "w"
	if s.SideToMove == bitmg.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		chess.NewBoard(placed).String(), side, s.Castling, s.EnPassant, s.HalfMoveClock, s.FullMoveNumber)
}
