package bitmg_test

import (
	"testing"

	"chess-core/bitmg"
	"chess-core/fenbridge"
)

func TestGenerateLegalFiltersPins(t *testing.T) {
	p := position(t, pinnedFEN)
	legal := p.GenerateLegal()
	if len(legal) != 4 {
		t.Fatalf("legal moves: got %d want 4: %v", len(legal), legal)
	}
	for _, m := range legal {
		if m.From != bitmg.E1 {
			t.Fatalf("only king moves are legal, got %s", m)
		}
	}
	if p.IsLegal(bitmg.Move{From: bitmg.E2, To: bitmg.D3}) {
		t.Fatalf("pinned bishop move reported legal")
	}
	if !p.IsLegal(bitmg.Move{From: bitmg.E1, To: bitmg.D1}) {
		t.Fatalf("king step to d1 should be legal")
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	cases := []struct {
		name      string
		fen       string
		checkmate bool
		stalemate bool
	}{
		{"start", fenbridge.StartPos, false, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"back rank", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", false, false},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := position(t, c.fen)
			if got := p.InCheckmate(); got != c.checkmate {
				t.Fatalf("InCheckmate: got %v want %v", got, c.checkmate)
			}
			if got := p.InStalemate(); got != c.stalemate {
				t.Fatalf("InStalemate: got %v want %v", got, c.stalemate)
			}
			if got := p.HasLegalMoves(); got == (c.checkmate || c.stalemate) {
				t.Fatalf("HasLegalMoves: got %v", got)
			}
		})
	}
}

func TestIsDrawBy50(t *testing.T) {
	if position(t, "8/8/8/8/8/8/8/K6k w - - 99 80").IsDrawBy50() {
		t.Fatalf("99 half-moves is not yet a draw")
	}
	p := position(t, "8/8/8/8/8/8/8/K6k w - - 99 80")
	mustApply(t, p, bitmg.Move{From: bitmg.A1, To: bitmg.A2})
	if !p.IsDrawBy50() {
		t.Fatalf("100 half-moves should be a draw, clock %d", p.HalfMoveClock())
	}
}

func TestHashTransposition(t *testing.T) {
	start := position(t, fenbridge.StartPos)
	p := start.Clone()
	for _, m := range []bitmg.Move{
		{From: bitmg.G1, To: bitmg.F3},
		{From: bitmg.G8, To: bitmg.F6},
		{From: bitmg.F3, To: bitmg.G1},
		{From: bitmg.F6, To: bitmg.G8},
	} {
		mustApply(t, p, m)
	}
	if p.Hash() != start.Hash() {
		t.Fatalf("knight shuffle should transpose to the start hash")
	}

	q := start.Clone()
	mustApply(t, q, bitmg.Move{From: bitmg.E2, To: bitmg.E4})
	if q.Hash() == start.Hash() {
		t.Fatalf("hash unchanged after e2e4")
	}

	// same placement, differing only in side to move or rights
	w := position(t, castlesFEN)
	b := position(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	n := position(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	if w.Hash() == b.Hash() || w.Hash() == n.Hash() {
		t.Fatalf("side to move and castling rights must feed the hash")
	}
}
