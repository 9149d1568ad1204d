package expand

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/espresso/cube"
)

// Expand grows each nonprime cube of the ON-set F into a prime
// implicant against the OFF-set R, absorbing other ON-set cubes where
// it can. F is mutated in place and returned; cubes absorbed by an
// expansion are removed.
//
// It returns:
//   - F' : the expanded cover, |F'| ≤ |F|, every cube flagged PRIME
//   - err: ErrNotOrthogonal, ErrSpaceMismatch, or ErrNilCover
//
// Steps:
//  1. Order the cubes small-to-large so hard cubes expand first while
//     large cubes stay available for absorption (O(n log n)).
//  2. Build the initial lowering set — the output variable's parts
//     when opts.NonSparse (O(1)).
//  3. Reset COVERED/NONESSEN on every cube.
//  4. Expand each cube that is neither PRIME nor COVERED.
//  5. Drop the cubes that became COVERED and compact.
//
// Complexity is dominated by step 4: each single-cube expansion is
// O(|R|·vars) per phase iteration, and each iteration either absorbs
// an ON-set cube or shrinks the free set, so it terminates.
func Expand(F, R *cube.Cover, opts Options) (*cube.Cover, error) {
	if F == nil || R == nil {
		return nil, ErrNilCover
	}
	if F.Space() != R.Space() {
		return nil, ErrSpaceMismatch
	}
	opts.normalize()
	s := F.Space()

	// 1) Order the cubes by ascending part count.
	F.SortAscending()

	// 2) Initial lowering set: freeze the sparse (output) variable
	//    when only the dense variables may expand.
	initLower := s.NewEmpty()
	if opts.NonSparse {
		initLower.InPlaceUnion(s.VarMask(s.Output()))
	}

	// 3) Every cube starts uncovered and possibly essential.
	for i := 0; i < F.Len(); i++ {
		F.At(i).Unmark(cube.FlagCovered | cube.FlagNonessential)
	}

	// 4) Expand each nonprime, noncovered cube.
	for i := 0; i < F.Len(); i++ {
		p := F.At(i)
		if p.Is(cube.FlagPrime) || p.Is(cube.FlagCovered) {
			continue
		}
		e := &expansion{space: s, off: R, on: F, budget: opts.UnravelBudget}
		if err := e.run(p, initLower); err != nil {
			return nil, err
		}
		if opts.Verbose {
			fmt.Printf("expand: cube %d -> %s, absorbed %d\n", i, s.Format(p), e.numCovered)
		}
	}

	// 5) Delete the cubes which became covered during the expansion.
	changed := false
	for i := 0; i < F.Len(); i++ {
		p := F.At(i)
		if p.Is(cube.FlagCovered) {
			F.Deactivate(p)
			changed = true
		} else {
			F.Activate(p)
		}
	}
	if changed {
		F.Compact()
	}
	return F, nil
}

// expansion is the working set of one single-cube expansion: the
// three-way RAISE / free / lowered partition plus the book-keeping
// the phases share. off is the blocking (OFF-set) cover, on the
// covering (ON-set) cover; their active flags are scratch state owned
// by the expansion while it runs.
type expansion struct {
	space *cube.Space
	off   *cube.Cover
	on    *cube.Cover

	raise        *bitset.BitSet
	free         *bitset.BitSet
	super        *bitset.BitSet
	overexpanded *bitset.BitSet

	numCovered int
	budget     int
}

// run expands the single cube c in place into a prime implicant.
func (e *expansion) run(c *cube.Cube, initLower *bitset.BitSet) error {
	s := e.space

	// 1) Prime self-exclusion: never try to absorb c into itself.
	c.Mark(cube.FlagPrime)

	// 2) Activate the blocking and covering universes. ON-set cubes
	//    already PRIME or COVERED are not absorption candidates.
	e.off.ActivateAll()
	for i := 0; i < e.on.Len(); i++ {
		p := e.on.At(i)
		if p.Is(cube.FlagCovered) || p.Is(cube.FlagPrime) {
			e.on.Deactivate(p)
		} else {
			e.on.Activate(p)
		}
	}

	// 3) RAISE starts as c; everything else is free.
	e.raise = c.Bits.Clone()
	e.free = s.NewFull()
	e.free.InPlaceDifference(e.raise)
	e.super = c.Bits.Clone()
	e.numCovered = 0

	// 4) Remove any parts forced into the lowering set up front.
	if !initLower.None() {
		e.free.InPlaceDifference(initLower)
		e.pruneLowered(true)
	}

	// 5) Essential lowering, then snapshot the overexpanded cube for
	//    the inessential-prime test at the end.
	if err := e.essentialLower(true); err != nil {
		return err
	}
	e.overexpanded = e.raise.Union(e.free)

	// 6) While there are cubes which can be covered, cover them.
	if e.on.ActiveCount() > 0 {
		if err := e.selectFeasible(); err != nil {
			return err
		}
	}

	// 7) Cubes still under the overexpanded cube but not feasibly
	//    coverable: climb by the most frequently shared free part.
	for e.on.ActiveCount() > 0 {
		best := e.mostFrequent(true)
		if best < 0 {
			break
		}
		e.raise.Set(uint(best))
		e.free.Clear(uint(best))
		if err := e.essentialLower(true); err != nil {
			return err
		}
	}

	// 8) When all else fails, choose the largest possible prime. This
	//    loops only when minCover takes its one-part heuristic branch.
	for e.off.ActiveCount() > 0 {
		if err := e.minCover(); err != nil {
			return err
		}
	}

	// 9) Any remaining free part is unconstrained.
	e.raise.InPlaceUnion(e.free)

	// 10) Commit the expansion.
	e.raise.Copy(c.Bits)
	c.Mark(cube.FlagPrime)
	c.Unmark(cube.FlagCovered)

	// 11) A prime that absorbed nothing and fell short of its
	//     overexpanded cube may not have been the right expansion.
	if e.numCovered == 0 && !c.Bits.Equal(e.overexpanded) {
		c.Mark(cube.FlagNonessential)
	}
	return nil
}
