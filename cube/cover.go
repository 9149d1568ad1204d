package cube

import "sort"

// Cover is an ordered collection of cubes of one Space, with a cached
// count of the cubes carrying FlagActive. The active count is kept in
// sync by Activate/Deactivate; algorithms that toggle FlagActive
// directly must follow up with RecountActive.
type Cover struct {
	space  *Space
	cubes  []*Cube
	active int
}

// NewCover returns an empty cover of s with room for capacity cubes.
func NewCover(s *Space, capacity int) *Cover {
	return &Cover{space: s, cubes: make([]*Cube, 0, capacity)}
}

// Space returns the space the cover's cubes live in.
func (f *Cover) Space() *Space { return f.space }

// Len returns the number of cubes, active or not.
func (f *Cover) Len() int { return len(f.cubes) }

// At returns the cube at row i.
func (f *Cover) At(i int) *Cube { return f.cubes[i] }

// Append adds cubes to the end of the cover. Appended cubes count as
// active when flagged so.
func (f *Cover) Append(cubes ...*Cube) {
	for _, c := range cubes {
		f.cubes = append(f.cubes, c)
		if c.Is(FlagActive) {
			f.active++
		}
	}
}

// ActiveCount returns the cached number of active cubes.
func (f *Cover) ActiveCount() int { return f.active }

// Activate sets FlagActive on c and maintains the active count.
func (f *Cover) Activate(c *Cube) {
	if !c.Is(FlagActive) {
		c.Mark(FlagActive)
		f.active++
	}
}

// Deactivate clears FlagActive on c and maintains the active count.
func (f *Cover) Deactivate(c *Cube) {
	if c.Is(FlagActive) {
		c.Unmark(FlagActive)
		f.active--
	}
}

// ActivateAll marks every cube active.
func (f *Cover) ActivateAll() {
	for _, c := range f.cubes {
		c.Mark(FlagActive)
	}
	f.active = len(f.cubes)
}

// DeactivateAll marks every cube inactive.
func (f *Cover) DeactivateAll() {
	for _, c := range f.cubes {
		c.Unmark(FlagActive)
	}
	f.active = 0
}

// RecountActive rewrites the active count from the cubes' flags and
// returns it.
func (f *Cover) RecountActive() int {
	f.active = 0
	for _, c := range f.cubes {
		if c.Is(FlagActive) {
			f.active++
		}
	}
	return f.active
}

// Compact drops every inactive cube, preserving the order of the
// rest. It reports whether anything was removed.
func (f *Cover) Compact() bool {
	kept := f.cubes[:0]
	for _, c := range f.cubes {
		if c.Is(FlagActive) {
			kept = append(kept, c)
		}
	}
	changed := len(kept) != len(f.cubes)
	f.cubes = kept
	f.active = len(kept)
	return changed
}

// SortAscending reorders the cover small-to-large by part count, so
// that hard-to-cover cubes expand first while larger cubes remain
// available as absorption candidates. The sort is stable.
func (f *Cover) SortAscending() {
	sort.SliceStable(f.cubes, func(i, j int) bool {
		return f.cubes[i].Bits.Count() < f.cubes[j].Bits.Count()
	})
}

// Clone returns a deep copy of the cover.
func (f *Cover) Clone() *Cover {
	out := NewCover(f.space, len(f.cubes))
	for _, c := range f.cubes {
		out.cubes = append(out.cubes, c.Clone())
	}
	out.active = f.active
	return out
}

// Cost is the literal-count measure of a cover.
//
//	In    - unset parts over the input variables (binary literal count)
//	Out   - set parts of the output variable
//	Total - In + Out; comparable by equality across cleanup passes
type Cost struct {
	Cubes int
	In    int
	Out   int
	Total int
}

// Cost computes the cover's literal cost. Raising input parts and
// dropping output parts both strictly decrease Total, which makes it
// the termination measure of the sparse cleanup loop.
func (f *Cover) Cost() Cost {
	s := f.space
	outMask := s.varMask[s.output]
	inputParts := s.firstPart[s.output]

	c := Cost{Cubes: len(f.cubes)}
	for _, p := range f.cubes {
		out := int(p.Bits.IntersectionCardinality(outMask))
		in := int(p.Bits.Count()) - out
		c.In += inputParts - in
		c.Out += out
	}
	c.Total = c.In + c.Out
	return c
}
