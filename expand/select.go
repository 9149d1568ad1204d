package expand

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/espresso/cube"
)

// mostFrequent returns the free part present in the most active
// ON-set cubes, ties to the lowest index, or -1 when nothing is free.
// With withOn false it degenerates to the lowest-indexed free part —
// the MINI strategy's fallback used by the min-cover heuristic.
func (e *expansion) mostFrequent(withOn bool) int {
	s := e.space
	count := make([]int, s.Size())
	if withOn {
		for i := 0; i < e.on.Len(); i++ {
			p := e.on.At(i)
			if !p.Is(cube.FlagActive) {
				continue
			}
			for j, ok := p.Bits.NextSet(0); ok; j, ok = p.Bits.NextSet(j + 1) {
				count[j]++
			}
		}
	}

	best, bestCount := -1, -1
	for i := 0; i < s.Size(); i++ {
		if e.free.Test(uint(i)) && count[i] > bestCount {
			best, bestCount = i, count[i]
		}
	}
	return best
}

// selectFeasible absorbs ON-set cubes while any remains feasibly
// covered. Rather than maximizing the number absorbed outright, each
// round raises toward the candidate whose forced lowering disqualifies
// the fewest other candidates — a one-level lookahead.
func (e *expansion) selectFeasible() error {
	s := e.space

	// 1) Start with every active ON-set cube as a possibly feasibly
	//    covered candidate, with a parallel buffer for the lowering
	//    each one would force.
	feas := make([]*cube.Cube, 0, e.on.ActiveCount())
	for i := 0; i < e.on.Len(); i++ {
		if p := e.on.At(i); p.Is(cube.FlagActive) {
			feas = append(feas, p)
		}
	}
	newLower := make([]*bitset.BitSet, len(feas))
	for i := range newLower {
		newLower[i] = s.NewEmpty()
	}

	for {
		// 2) Take the free wins first; this can cover candidates
		//    without any feasibility test.
		e.essentialRaise()

		// 3) Refilter the candidates: absorb those now inside RAISE,
		//    keep the rest only while still feasibly coverable.
		kept := 0
		for _, p := range feas {
			if !p.Is(cube.FlagActive) {
				continue
			}
			if e.raise.IsSuperSet(p.Bits) {
				e.numCovered++
				e.super.InPlaceUnion(p.Bits)
				e.on.Deactivate(p)
				p.Mark(cube.FlagCovered)
				continue
			}
			if e.feasiblyCovered(p, newLower[kept]) {
				feas[kept] = p
				kept++
			}
		}
		feas = feas[:kept]
		if kept == 0 {
			return nil
		}

		// 4) Pick the best candidate: most other candidates left
		//    feasible (their cubes disjoint from this one's forced
		//    lowering), ties broken by fewest newly raised parts.
		bestCount, bestSize := 0, math.MaxInt
		var best *cube.Cube
		for i, p := range feas {
			size := int(p.Bits.IntersectionCardinality(e.free))
			count := 0
			for _, q := range feas {
				if newLower[i].IntersectionCardinality(q.Bits) == 0 {
					count++
				}
			}
			if count > bestCount || (count == bestCount && size < bestSize) {
				bestCount, bestSize, best = count, size, p
			}
		}

		// 5) Raise to cover it and propagate the forced lowering.
		e.raise.InPlaceUnion(best.Bits)
		e.free.InPlaceDifference(e.raise)
		if err := e.essentialLower(true); err != nil {
			return err
		}
	}
}
