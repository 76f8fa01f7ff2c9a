package bitmg

// Perft counts the legal leaf nodes reachable in depth plies.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1), legal: true}
	return pc.walk(p, depth)
}

// PerftPseudo counts leaf nodes without the king-safety filter. Moves that
// leave the mover in check are still walked.
func (p *Position) PerftPseudo(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return pc.walk(p, depth)
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func (p *Position) PerftDivide(depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateLegal() {
		c := *p
		if err := c.Apply(m); err != nil {
			continue
		}
		result[m] = c.Perft(depth - 1)
	}
	return result
}

type perftCtx struct {
	bufs  [][]Move
	legal bool
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if depth >= len(pc.bufs) {
		pc.bufs = append(pc.bufs, make([][]Move, depth+1-len(pc.bufs))...)
	}
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func (pc *perftCtx) walk(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := p.GenerateInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	for _, m := range moves {
		c := *p
		if err := c.Apply(m); err != nil {
			continue
		}
		if pc.legal && c.InCheck(p.side) {
			continue
		}
		nodes += pc.walk(&c, depth-1)
	}
	return nodes
}
