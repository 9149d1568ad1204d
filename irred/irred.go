// Package irred decides which cubes of a cover are redundant — covered
// by the rest of the cover plus the don't-care set — using recursive
// tautology checking over single-part cofactors.
package irred

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/espresso/cube"
)

// MarkIrredundant flags redundant cubes of F, relative to the
// don't-care cover D, by clearing their ACTIVE flag. The cubes left
// active form an irredundant cover of the same function.
//
// The sweep is greedy in row order: a cube is dropped as soon as the
// still-active remainder of F plus D covers it. D may be nil.
func MarkIrredundant(F, D *cube.Cover) {
	s := F.Space()
	F.ActivateAll()

	for i := 0; i < F.Len(); i++ {
		p := F.At(i)

		rest := make([]*bitset.BitSet, 0, F.Len())
		for k := 0; k < F.Len(); k++ {
			q := F.At(k)
			if q != p && q.Is(cube.FlagActive) {
				rest = append(rest, q.Bits)
			}
		}
		if D != nil {
			for k := 0; k < D.Len(); k++ {
				rest = append(rest, D.At(k).Bits)
			}
		}

		if coveredBy(s, p.Bits, rest) {
			F.Deactivate(p)
		}
	}
}

// Tautology reports whether the active cubes of F cover the whole
// space.
func Tautology(F *cube.Cover) bool {
	rows := make([]*bitset.BitSet, 0, F.Len())
	for i := 0; i < F.Len(); i++ {
		if p := F.At(i); p.Is(cube.FlagActive) {
			rows = append(rows, p.Bits)
		}
	}
	return tautology(F.Space(), rows)
}

// coveredBy reports whether the rows cover cube p: the cofactor of
// the rows against p must be a tautology. Rows not meeting p in every
// variable fall out of the cofactor; the rest widen by p's complement.
func coveredBy(s *cube.Space, p *bitset.BitSet, rows []*bitset.BitSet) bool {
	notP := p.Complement()
	cof := make([]*bitset.BitSet, 0, len(rows))
	for _, q := range rows {
		if s.Intersects(q, p) {
			cof = append(cof, q.Union(notP))
		}
	}
	return tautology(s, cof)
}

// tautology implements the classic recursive check: a cover is a
// tautology iff every single-part cofactor on a splitting variable is.
// Shortcuts: a full row means yes; an uncovered column means no.
func tautology(s *cube.Space, rows []*bitset.BitSet) bool {
	if len(rows) == 0 {
		return false
	}

	union := s.NewEmpty()
	for _, q := range rows {
		if s.IsFull(q) {
			return true
		}
		union.InPlaceUnion(q)
	}
	if !s.IsFull(union) {
		return false
	}

	// Split on the variable restricted in the most rows.
	v, most := -1, 0
	for u := 0; u < s.NumVars(); u++ {
		restricted := 0
		for _, q := range rows {
			if int(q.IntersectionCardinality(s.VarMask(u))) < s.VarSize(u) {
				restricted++
			}
		}
		if restricted > most {
			v, most = u, restricted
		}
	}
	if v < 0 {
		return true
	}

	mask := s.VarMask(v)
	for j := s.FirstPart(v); j <= s.LastPart(v); j++ {
		sub := make([]*bitset.BitSet, 0, len(rows))
		for _, q := range rows {
			if q.Test(uint(j)) {
				sub = append(sub, q.Union(mask))
			}
		}
		if !tautology(s, sub) {
			return false
		}
	}
	return true
}
