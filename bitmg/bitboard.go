package bitmg

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares; bit i is set when square i is a member.
type Bitboard uint64

// bb returns a bitboard with the given square bit set.
func bb(sq Square) Bitboard {
	if !sq.Valid() {
		panic(fmt.Sprintf("bitmg: square %d out of range", sq))
	}
	return 1 << uint(sq)
}

// SquareSet builds a bitboard from a list of squares.
func SquareSet(squares ...Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b |= bb(sq)
	}
	return b
}

// Set adds sq to the set.
func (b *Bitboard) Set(sq Square) { *b |= bb(sq) }

// Clear removes sq from the set.
func (b *Bitboard) Clear(sq Square) { *b &^= bb(sq) }

// Has reports whether sq is a member.
func (b Bitboard) Has(sq Square) bool { return b&bb(sq) != 0 }

// Union returns b ∪ o.
func (b Bitboard) Union(o Bitboard) Bitboard { return b | o }

// Intersect returns b ∩ o.
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }

// Count returns the number of members.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Empty reports whether the set has no members.
func (b Bitboard) Empty() bool { return b == 0 }

// popLSB removes and returns the lowest member of the mask.
func popLSB(mask *Bitboard) Square {
	idx := bits.TrailingZeros64(uint64(*mask))
	*mask &= *mask - 1
	return Square(idx)
}

// Squares returns the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for m := b; m != 0; {
		out = append(out, popLSB(&m))
	}
	return out
}

// All iterates the members in ascending order. The sequence can be ranged
// over any number of times.
func (b Bitboard) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for m := b; m != 0; {
			if !yield(popLSB(&m)) {
				return
			}
		}
	}
}

// String draws the set as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for sq := Square(0); sq < 64; sq++ {
		if b.Has(sq) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('.')
		}
		if sq%8 == 7 {
			if sq < 63 {
				sb.WriteByte('\n')
			}
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
