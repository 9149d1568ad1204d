package expand

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/espresso/cube"
)

// essentialLower forces into the lowering set every free part whose
// raising would collide with the OFF-set.
//
// Any OFF-set cube at distance 1 from RAISE conflicts in exactly one
// variable; the cube's parts of that variable must leave the free set,
// after which the cube can never be reached and is deactivated. A cube
// at distance 0 means the ON-set and OFF-set overlap — fatal.
//
// withOn is false in the min-cover fallback, where no covering cover
// is in play.
func (e *expansion) essentialLower(withOn bool) error {
	s := e.space
	forced := s.NewEmpty()

	for i := 0; i < e.off.Len(); i++ {
		b := e.off.At(i)
		if !b.Is(cube.FlagActive) {
			continue
		}
		switch s.Dist01(b.Bits, e.raise) {
		case 0:
			return ErrNotOrthogonal
		case 1:
			s.ForceLower(forced, b.Bits, e.raise)
			e.off.Deactivate(b)
		}
	}

	if !forced.None() {
		e.free.InPlaceDifference(forced)
		e.pruneLowered(withOn)
	}
	return nil
}

// essentialRaise moves into RAISE every free part that appears in no
// active OFF-set cube; such a part can always be raised without
// restricting further expansion.
func (e *expansion) essentialRaise() {
	blocked := e.space.NewEmpty()
	for i := 0; i < e.off.Len(); i++ {
		if b := e.off.At(i); b.Is(cube.FlagActive) {
			blocked.InPlaceUnion(b.Bits)
		}
	}

	wins := e.free.Difference(blocked)
	e.raise.InPlaceUnion(wins)
	e.free.InPlaceDifference(wins)
}

// pruneLowered re-prunes both covers after the free set shrank: OFF
// cubes orthogonal to the overexpanded cube can never be reached, and
// ON cubes no longer inside it can never be covered.
func (e *expansion) pruneLowered(withOn bool) {
	s := e.space
	r := e.raise.Union(e.free)

	for i := 0; i < e.off.Len(); i++ {
		b := e.off.At(i)
		if b.Is(cube.FlagActive) && !s.Intersects(b.Bits, r) {
			e.off.Deactivate(b)
		}
	}

	if !withOn {
		return
	}
	for i := 0; i < e.on.Len(); i++ {
		p := e.on.At(i)
		if p.Is(cube.FlagActive) && !r.IsSuperSet(p.Bits) {
			e.on.Deactivate(p)
		}
	}
}

// feasiblyCovered reports whether ON-set cube c could still be
// absorbed: raising RAISE ∪ c must leave every active OFF-set cube at
// distance ≥ 1. The lowering that absorption would force is
// accumulated into newLower.
func (e *expansion) feasiblyCovered(c *cube.Cube, newLower *bitset.BitSet) bool {
	s := e.space
	r := e.raise.Union(c.Bits)
	newLower.ClearAll()

	for i := 0; i < e.off.Len(); i++ {
		b := e.off.At(i)
		if !b.Is(cube.FlagActive) {
			continue
		}
		switch s.Dist01(b.Bits, r) {
		case 0:
			return false
		case 1:
			s.ForceLower(newLower, b.Bits, r)
		}
	}
	return true
}
