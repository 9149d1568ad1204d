package expand

import (
	"github.com/bits-and-blooms/bitset"
	setcover "github.com/dkmccandless/cover"

	"github.com/katalvlaran/espresso/cube"
)

// minCover finishes an expansion no absorption could finish: choosing
// a maximally large prime becomes selecting a minimum-cardinality set
// of parts to lower over the blocking rows of the remaining OFF-set.
//
// Unravelling the OFF-set may be painful, so the size of the
// unravelled problem is estimated first; past the budget, a single
// heuristic part is raised instead and the caller loops.
func (e *expansion) minCover() error {
	s := e.space

	// 1) One blocking row per active OFF-set cube: the parts that
	//    must be lowered to keep RAISE away from it.
	rows := make([]*bitset.BitSet, 0, e.off.ActiveCount())
	for i := 0; i < e.off.Len(); i++ {
		b := e.off.At(i)
		if !b.Is(cube.FlagActive) {
			continue
		}
		row := s.NewEmpty()
		s.ForceLower(row, b.Bits, e.raise)
		rows = append(rows, row)
	}

	// 2) Estimate how many rows the output variable unravels into.
	outMask := s.VarMask(s.Output())
	nset := 0
	for _, row := range rows {
		grow := 1
		if d := int(row.IntersectionCardinality(outMask)); d > 1 {
			grow *= d
			if grow > e.budget {
				return e.heuristicCover()
			}
		}
		nset += grow
		if nset > e.budget {
			return e.heuristicCover()
		}
	}

	// 3) Exact mode: split multi-output rows, solve minimum cover,
	//    raise everything the lowering solution leaves free. The
	//    OFF-set is satisfied and the expansion is done.
	xlower := minimumCover(s, unravelOutput(s, rows))
	e.raise.InPlaceUnion(e.free.Difference(xlower))
	e.free.ClearAll()
	e.off.DeactivateAll()
	return nil
}

// heuristicCover raises one part and reruns the essential analysis;
// the outer loop re-enters minCover while OFF-set rows remain.
func (e *expansion) heuristicCover() error {
	best := e.mostFrequent(false)
	if best < 0 {
		// Nothing left to raise: the expansion is final, and every
		// remaining row is permanently separated — or overlapping.
		for i := 0; i < e.off.Len(); i++ {
			b := e.off.At(i)
			if !b.Is(cube.FlagActive) {
				continue
			}
			if e.space.Dist01(b.Bits, e.raise) == 0 {
				return ErrNotOrthogonal
			}
			e.off.Deactivate(b)
		}
		return nil
	}
	e.raise.Set(uint(best))
	e.free.Clear(uint(best))
	return e.essentialLower(false)
}

// unravelOutput splits every row constraining more than one output
// part into one row per output part, so that a minimum cover over the
// result separates the output variable correctly.
func unravelOutput(s *cube.Space, rows []*bitset.BitSet) []*bitset.BitSet {
	outMask := s.VarMask(s.Output())
	out := make([]*bitset.BitSet, 0, len(rows))
	for _, row := range rows {
		outParts := row.Intersection(outMask)
		if outParts.Count() <= 1 {
			out = append(out, row)
			continue
		}
		rest := row.Difference(outMask)
		for j, ok := outParts.NextSet(0); ok; j, ok = outParts.NextSet(j + 1) {
			split := rest.Clone()
			split.Set(j)
			out = append(out, split)
		}
	}
	return out
}

// minimumCover returns a minimum-cardinality set of parts hitting
// every row. Rows are the elements to cover; each part is the subset
// of rows it appears in.
func minimumCover(s *cube.Space, rows []*bitset.BitSet) *bitset.BitSet {
	problem := setcover.New()
	for i, row := range rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			problem.Add(int(j), i)
		}
	}

	lower := s.NewEmpty()
	covers := problem.Minimize()
	if len(covers) > 0 {
		for _, part := range covers[0] {
			lower.Set(uint(part.(int)))
		}
	}
	return lower
}
