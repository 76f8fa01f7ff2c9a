package suite_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chess-core/suite"
)

func TestLoad(t *testing.T) {
	s, err := suite.Load("testdata/perft.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Cases) != 5 {
		t.Fatalf("cases: got %d want 5", len(s.Cases))
	}
	c := s.Cases[0]
	if c.Name != "startpos" || c.Nodes[3] != 8902 {
		t.Fatalf("first case: %+v", c)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, c.Depths()); diff != "" {
		t.Fatalf("depths (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := suite.Load("testdata/nope.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseRejects(t *testing.T) {
	bad := map[string]string{
		"no fen":   "positions:\n  - name: x\n    nodes: {1: 20}\n",
		"no nodes": "positions:\n  - name: x\n    fen: 8/8/8/8/8/8/8/8 w - - 0 1\n",
		"depth 0":  "positions:\n  - name: x\n    fen: 8/8/8/8/8/8/8/8 w - - 0 1\n    nodes: {0: 1}\n",
		"not yaml": "positions: [",
	}
	for name, doc := range bad {
		if _, err := suite.Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	s, err := suite.Load("testdata/perft.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := suite.Parse(b)
	if err != nil {
		t.Fatalf("Parse(Marshal()): %v\n%s", err, b)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestVerify(t *testing.T) {
	s, err := suite.Load("testdata/perft.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	results := s.Verify(2, false)
	// every case lists depths 1 and 2
	if len(results) != 10 {
		t.Fatalf("results: got %d want 10", len(results))
	}
	for _, r := range results {
		if !r.OK() {
			t.Fatalf("unexpected failure: %s", r)
		}
	}
}

func TestVerifyReportsMismatch(t *testing.T) {
	s := &suite.Suite{Cases: []suite.Case{
		{Name: "off by one", FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Nodes: map[int]uint64{1: 21}},
		{Name: "broken", FEN: "not a fen", Nodes: map[int]uint64{1: 1}},
	}}
	results := s.Verify(0, false)
	if len(results) != 2 {
		t.Fatalf("results: got %d want 2", len(results))
	}
	if results[0].OK() || results[0].Got != 20 {
		t.Fatalf("mismatch not reported: %s", results[0])
	}
	if results[1].OK() || results[1].Err == nil {
		t.Fatalf("decode error not reported: %s", results[1])
	}
}

func TestVerifyPseudo(t *testing.T) {
	s := &suite.Suite{Cases: []suite.Case{
		{Name: "pinned", FEN: "4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1", Nodes: map[int]uint64{1: 13}},
	}}
	if r := s.Verify(0, true); !r[0].OK() {
		t.Fatalf("pseudo count: %s", r[0])
	}
	if r := s.Verify(0, false); r[0].OK() {
		t.Fatalf("legal count should differ: %s", r[0])
	}
}
