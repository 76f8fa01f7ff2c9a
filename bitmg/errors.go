package bitmg

import "errors"

// Sentinel errors. Callers match them with errors.Is; the returned errors
// wrap them with the offending square or move.
var (
	// ErrInvalidSquare indicates a file or rank outside the board.
	ErrInvalidSquare = errors.New("invalid square address")

	// ErrNoPieceAtSquare indicates a move whose origin square is empty.
	ErrNoPieceAtSquare = errors.New("no piece at square")

	// ErrNotSideToMove indicates a move of a piece belonging to the side not on move.
	ErrNotSideToMove = errors.New("piece does not belong to the side to move")

	// ErrInvalidMove indicates a move that does not fit the position
	// (bad castling geometry, own-piece capture, bad promotion, unknown notation).
	ErrInvalidMove = errors.New("invalid move")

	// ErrMalformedPosition indicates decoded state that breaks the position invariants.
	ErrMalformedPosition = errors.New("malformed board state")
)
