package bitmg_test

import (
	"testing"

	"chess-core/bitmg"
	"chess-core/fenbridge"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	castlesFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	epFEN       = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	promoteFEN  = "8/4P3/8/8/8/8/8/k6K w - - 0 1"
	pinnedFEN   = "4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1"
)

// position decodes a FEN or fails the test.
func position(t testing.TB, fen string) *bitmg.Position {
	t.Helper()
	p, err := fenbridge.Decode(fen)
	if err != nil {
		t.Fatalf("Decode(%q): %v", fen, err)
	}
	return p
}

// movesFrom keeps the moves leaving sq.
func movesFrom(moves []bitmg.Move, sq bitmg.Square) []bitmg.Move {
	var out []bitmg.Move
	for _, m := range moves {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}

func hasMove(moves []bitmg.Move, want bitmg.Move) bool {
	for _, m := range moves {
		if m == want {
			return true
		}
	}
	return false
}
