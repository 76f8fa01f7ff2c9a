package bitmg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"chess-core/bitmg"
	"chess-core/fenbridge"
)

var perftPositions = []struct {
	name  string
	fen   string
	nodes []uint64 // index i holds depth i+1
}{
	{"initial", fenbridge.StartPos, []uint64{20, 400, 8902}},
	{"kiwipete", kiwipeteFEN, []uint64{48, 2039}},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"talkchess", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
}

func TestPerftKnownCounts(t *testing.T) {
	for _, c := range perftPositions {
		t.Run(c.name, func(t *testing.T) {
			p := position(t, c.fen)
			for i, want := range c.nodes {
				depth := i + 1
				if depth == 3 && testing.Short() {
					break
				}
				if got := p.Perft(depth); got != want {
					t.Fatalf("%s depth%d: got %d want %d", c.name, depth, got, want)
				}
			}
		})
	}
}

func TestPerftLeavesPositionUntouched(t *testing.T) {
	p := position(t, kiwipeteFEN)
	before := p.Setup()
	_ = p.Perft(2)
	_ = p.PerftPseudo(2)
	_ = p.PerftDivide(2)
	if diff := cmp.Diff(before, p.Setup()); diff != "" {
		t.Fatalf("perft mutated the position (-want +got):\n%s", diff)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := position(t, kiwipeteFEN)
	div := p.PerftDivide(2)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide total: got %d want 2039", sum)
	}
	if len(p.PerftDivide(0)) != 0 {
		t.Fatalf("divide at depth 0 should be empty")
	}
}

func TestPerftPseudoCountsIllegalLeaves(t *testing.T) {
	p := position(t, pinnedFEN)
	if got := p.PerftPseudo(1); got != 13 {
		t.Fatalf("pseudo depth1: got %d want 13", got)
	}
	if got := p.Perft(1); got != 4 {
		t.Fatalf("legal depth1: got %d want 4", got)
	}
	start := position(t, fenbridge.StartPos)
	if start.PerftPseudo(2) != 400 || start.Perft(0) != 1 {
		t.Fatalf("pseudo and legal agree where no king is exposed")
	}
}

// oracleMoves lists dragontoothmg's legal moves in coordinate form, sorted.
func oracleMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

func uciMoves(moves []bitmg.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	slices.Sort(out)
	return out
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		undo()
	}
	return nodes
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, c := range perftPositions {
		p := position(t, c.fen)
		if diff := cmp.Diff(oracleMoves(c.fen), uciMoves(p.GenerateLegal())); diff != "" {
			t.Fatalf("%s: legal moves differ from oracle (-oracle +bitmg):\n%s", c.name, diff)
		}
		// one ply deeper, every reply list must agree too
		for _, m := range p.GenerateLegal() {
			child := p.Clone()
			if err := child.Apply(m); err != nil {
				t.Fatalf("%s: Apply(%s): %v", c.name, m, err)
			}
			fen := fenbridge.Encode(child)
			if diff := cmp.Diff(oracleMoves(fen), uciMoves(child.GenerateLegal())); diff != "" {
				t.Fatalf("%s after %s (%s):\n%s", c.name, m.UCI(), fen, diff)
			}
		}
	}
}

func TestPerftMatchesOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("oracle perft in short mode")
	}
	for _, c := range perftPositions {
		board := dragontoothmg.ParseFen(c.fen)
		want := oraclePerft(&board, 2)
		if got := position(t, c.fen).Perft(2); got != want {
			t.Fatalf("%s depth2: got %d oracle %d", c.name, got, want)
		}
	}
}
