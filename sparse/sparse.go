// Package sparse is the last-step cleanup of the minimization loop:
// it reduces the total literal count of a cover by alternately
// reducing the sparse (output) variable and re-expanding the dense
// (input) variables.
package sparse

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
	"github.com/katalvlaran/espresso/irred"
)

// MakeSparse reduces the literal count of F against the don't-care
// cover D and the OFF-set R. It alternates MVReduce with a
// non-sparse Expand until the cost stops decreasing, and returns the
// cleaned-up cover. F is mutated in place. D may be nil.
func MakeSparse(F, D, R *cube.Cover) (*cube.Cover, error) {
	best := F.Cost()

	for {
		F = MVReduce(F, D)
		cost := F.Cost()
		if cost.Total == best.Total {
			break
		}
		best = cost

		opts := expand.DefaultOptions()
		opts.NonSparse = true
		var err error
		if F, err = expand.Expand(F, R, opts); err != nil {
			return nil, err
		}
		cost = F.Cost()
		if cost.Total == best.Total {
			break
		}
		best = cost
	}
	return F, nil
}

// MVReduce performs an "optimal" reduction of the output variable:
// for each output part, the cubes asserting that part are cofactored
// into a single-output cover, the redundant ones are found with
// irredundant marking, and the part is removed from their source
// cubes. Cubes whose output goes entirely empty vanish.
//
// Working per output part through irredundant marking, rather than
// through reduce, sidesteps the cube-ordering problem.
func MVReduce(F, D *cube.Cover) *cube.Cover {
	s := F.Space()
	out := s.Output()
	outMask := s.VarMask(out)

	for i := s.FirstPart(out); i <= s.LastPart(out); i++ {
		part := uint(i)

		// Cofactor F against output part i, remembering which source
		// cube each row came from.
		F1 := cube.NewCover(s, F.Len())
		sources := make([]*cube.Cube, 0, F.Len())
		for k := 0; k < F.Len(); k++ {
			p := F.At(k)
			if !p.Bits.Test(part) {
				continue
			}
			q := s.NewCube()
			p.Bits.Copy(q.Bits)
			q.Bits.InPlaceDifference(outMask)
			q.Bits.Set(part)
			F1.Append(q)
			sources = append(sources, p)
		}

		D1 := cube.NewCover(s, 0)
		if D != nil {
			for k := 0; k < D.Len(); k++ {
				p := D.At(k)
				if !p.Bits.Test(part) {
					continue
				}
				q := s.NewCube()
				p.Bits.Copy(q.Bits)
				q.Bits.InPlaceDifference(outMask)
				q.Bits.Set(part)
				D1.Append(q)
			}
		}

		irred.MarkIrredundant(F1, D1)

		// Remove part i from the sources of the redundant rows; the
		// shrunk cubes are no longer known to be prime.
		for k := 0; k < F1.Len(); k++ {
			if !F1.At(k).Is(cube.FlagActive) {
				src := sources[k]
				src.Bits.Clear(part)
				src.Unmark(cube.FlagPrime)
			}
		}
	}

	// Check if any cubes disappeared.
	F.ActivateAll()
	for k := 0; k < F.Len(); k++ {
		p := F.At(k)
		if p.Bits.IntersectionCardinality(outMask) == 0 {
			F.Deactivate(p)
		}
	}
	if F.ActiveCount() != F.Len() {
		F.Compact()
	}
	return F
}
