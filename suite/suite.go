// Package suite loads perft suites: YAML lists of positions with the
// expected leaf counts at each depth, and checks bitmg against them.
package suite

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"chess-core/bitmg"
	"chess-core/fenbridge"
)

// Case is one suite position with expected node counts by depth.
type Case struct {
	Name  string         `yaml:"name"`
	FEN   string         `yaml:"fen"`
	Nodes map[int]uint64 `yaml:"nodes"`
}

// Suite is a list of cases as stored in a suite file.
type Suite struct {
	Cases []Case `yaml:"positions"`
}

// Load reads and parses a suite file.
func Load(filename string) (*Suite, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", filename, err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return s, nil
}

// Parse decodes a suite document. Every case needs a FEN and at least one
// positive depth.
func Parse(b []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	for i, c := range s.Cases {
		if c.FEN == "" {
			return nil, fmt.Errorf("case %d (%s): missing fen", i, c.Name)
		}
		if len(c.Nodes) == 0 {
			return nil, fmt.Errorf("case %d (%s): no node counts", i, c.Name)
		}
		for d := range c.Nodes {
			if d <= 0 {
				return nil, fmt.Errorf("case %d (%s): depth %d", i, c.Name, d)
			}
		}
	}
	return &s, nil
}

// Marshal encodes the suite back to YAML.
func (s *Suite) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Depths returns the case's depths in ascending order.
func (c Case) Depths() []int {
	depths := make([]int, 0, len(c.Nodes))
	for d := range c.Nodes {
		depths = append(depths, d)
	}
	slices.Sort(depths)
	return depths
}

// Result is the outcome of one (case, depth) check.
type Result struct {
	Name  string
	Depth int
	Want  uint64
	Got   uint64
	Err   error
}

// OK reports whether the count matched.
func (r Result) OK() bool { return r.Err == nil && r.Want == r.Got }

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s depth %d: %v", r.Name, r.Depth, r.Err)
	case r.OK():
		return fmt.Sprintf("%s depth %d: %d ok", r.Name, r.Depth, r.Got)
	}
	return fmt.Sprintf("%s depth %d: got %d, want %d", r.Name, r.Depth, r.Got, r.Want)
}

// Verify runs perft on every case up to maxDepth (0 means no limit) and
// returns one result per checked depth, in file then depth order. Counting
// is legal unless pseudo is set.
func (s *Suite) Verify(maxDepth int, pseudo bool) []Result {
	var results []Result
	for _, c := range s.Cases {
		pos, err := fenbridge.Decode(c.FEN)
		for _, d := range c.Depths() {
			if maxDepth > 0 && d > maxDepth {
				break
			}
			r := Result{Name: c.Name, Depth: d, Want: c.Nodes[d], Err: err}
			if err == nil {
				r.Got = count(pos, d, pseudo)
			}
			results = append(results, r)
		}
	}
	return results
}

func count(p *bitmg.Position, depth int, pseudo bool) uint64 {
	if pseudo {
		return p.PerftPseudo(depth)
	}
	return p.Perft(depth)
}
