package bitmg

// Side is the player owning a piece or holding the move.
type Side uint8

const (
	White Side = 0
	Black Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side { return s ^ 1 }

// Forward is the rank delta of one step towards the opponent's back rank.
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// PawnRank is the rank this side's pawns start on.
func (s Side) PawnRank() int {
	if s == White {
		return 2
	}
	return 7
}

// PromotionRank is the far rank a pawn of this side promotes on.
func (s Side) PromotionRank() int {
	if s == White {
		return 8
	}
	return 1
}

func (s Side) valid() bool { return s == White || s == Black }

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "side?"
}

// PieceKind is a colourless piece type. NoKind is the zero value and marks
// an empty cell or the absence of a promotion.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

// kindCount is the number of real piece kinds.
const kindCount = 6

// Kinds lists the real piece kinds in set order.
var Kinds = [kindCount]PieceKind{Pawn, Bishop, Knight, Rook, Queen, King}

func (k PieceKind) valid() bool { return k >= Pawn && k <= King }

// index maps a real kind onto its slot in the per-kind sets.
func (k PieceKind) index() int { return int(k) - 1 }

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "None"
}

// Letter returns the lower-case coordinate-notation letter of the kind.
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'p'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return '-'
}

// Piece is a side/kind pair. The zero value is an empty cell.
type Piece struct {
	Side Side
	Kind PieceKind
}

// NoPiece is the empty cell.
var NoPiece = Piece{}

// Empty reports whether the cell holds no piece.
func (p Piece) Empty() bool { return p.Kind == NoKind }

func (p Piece) String() string {
	if p.Empty() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// CastlingRights holds the four castling permissions as bit flags.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastleWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastleWhiteQ
	// Black king-side castling
	CastleBlackK
	// Black queen-side castling
	CastleBlackQ
)

// NoCastlingRights has every permission revoked.
const NoCastlingRights CastlingRights = 0

// AllCastlingRights is the starting set of permissions.
const AllCastlingRights = CastleWhiteK | CastleWhiteQ | CastleBlackK | CastleBlackQ

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool { return c&r == r }

// sideRights returns both flags belonging to a side.
func sideRights(s Side) CastlingRights {
	if s == White {
		return CastleWhiteK | CastleWhiteQ
	}
	return CastleBlackK | CastleBlackQ
}

// String renders the rights in the usual KQkq form ("-" when empty).
func (c CastlingRights) String() string {
	var buf []byte
	if c.Has(CastleWhiteK) {
		buf = append(buf, 'K')
	}
	if c.Has(CastleWhiteQ) {
		buf = append(buf, 'Q')
	}
	if c.Has(CastleBlackK) {
		buf = append(buf, 'k')
	}
	if c.Has(CastleBlackQ) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Castling names one of the four king+rook castling moves.
type Castling uint8

const (
	NoCastling Castling = iota
	WhiteKingSide
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

func (c Castling) String() string {
	switch c {
	case WhiteKingSide, BlackKingSide:
		return "O-O"
	case WhiteQueenSide, BlackQueenSide:
		return "O-O-O"
	}
	return ""
}

// castlingLayout is the fixed geometry of a castling variant.
type castlingLayout struct {
	side   Side
	right  CastlingRights
	king   Square
	kingTo Square
	rook   Square
	rookTo Square
	// between must be empty; safe must not be attacked (king origin, transit, destination)
	between []Square
	safe    []Square
}

var castlingGeometry = [...]castlingLayout{
	WhiteKingSide:  {White, CastleWhiteK, E1, G1, H1, F1, []Square{F1, G1}, []Square{E1, F1, G1}},
	WhiteQueenSide: {White, CastleWhiteQ, E1, C1, A1, D1, []Square{D1, C1, B1}, []Square{E1, D1, C1}},
	BlackKingSide:  {Black, CastleBlackK, E8, G8, H8, F8, []Square{F8, G8}, []Square{E8, F8, G8}},
	BlackQueenSide: {Black, CastleBlackQ, E8, C8, A8, D8, []Square{D8, C8, B8}, []Square{E8, D8, C8}},
}

// sideCastlings lists the variants available to each side in generation order.
var sideCastlings = [2][2]Castling{
	White: {WhiteKingSide, WhiteQueenSide},
	Black: {BlackKingSide, BlackQueenSide},
}
