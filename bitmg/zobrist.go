package bitmg

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [2][kindCount][64]uint64 // by side, kind index and square
var zobristCastle [16]uint64              // one key per castling rights state
var zobristEnPassant [8]uint64            // by en-passant file
var zobristSide uint64                    // XORed in when Black is to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for s := range zobristPiece {
		for k := range zobristPiece[s] {
			for sq := range zobristPiece[s][k] {
				zobristPiece[s][k][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash computes the Zobrist key of the position. Positions that differ only
// in their move counters hash equal.
func (p *Position) Hash() uint64 {
	var key uint64
	for _, side := range [2]Side{White, Black} {
		for i, set := range p.kinds {
			for m := set & p.occupancy[side]; m != 0; {
				key ^= zobristPiece[side][i][popLSB(&m)]
			}
		}
	}
	if p.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling&AllCastlingRights]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.FileIndex()]
	}
	return key
}
