package cube

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for space construction and notation parsing.
var (
	// ErrNoVariables indicates a space with fewer than two variables.
	ErrNoVariables = errors.New("cube: a space needs at least one input variable and an output variable")

	// ErrBadVarSize indicates a variable with no parts.
	ErrBadVarSize = errors.New("cube: every variable needs at least one part")

	// ErrNotation indicates malformed positional-cube notation.
	ErrNotation = errors.New("cube: malformed positional notation")
)

// Space describes the Boolean hypercube every cube of a problem lives
// in: how many parts there are, how they group into variables, and
// which variable carries the outputs. A Space is built once per
// problem and is read-only afterwards; all covers and cubes that take
// part in one minimization must share the same Space.
type Space struct {
	size      int
	numVars   int
	output    int
	firstPart []int
	lastPart  []int
	varMask   []*bitset.BitSet
	fullSet   *bitset.BitSet
}

// NewSpace builds a Space from per-variable part counts. The last
// variable is the output variable; the ones before it are inputs.
func NewSpace(sizes []int) (*Space, error) {
	if len(sizes) < 2 {
		return nil, ErrNoVariables
	}
	size := 0
	for _, n := range sizes {
		if n < 1 {
			return nil, ErrBadVarSize
		}
		size += n
	}

	s := &Space{
		size:      size,
		numVars:   len(sizes),
		output:    len(sizes) - 1,
		firstPart: make([]int, len(sizes)),
		lastPart:  make([]int, len(sizes)),
		varMask:   make([]*bitset.BitSet, len(sizes)),
		fullSet:   bitset.New(uint(size)),
	}

	part := 0
	for v, n := range sizes {
		s.firstPart[v] = part
		s.lastPart[v] = part + n - 1
		mask := bitset.New(uint(size))
		for j := 0; j < n; j++ {
			mask.Set(uint(part + j))
		}
		s.varMask[v] = mask
		s.fullSet.InPlaceUnion(mask)
		part += n
	}
	return s, nil
}

// Binary builds the common PLA-shaped space: `inputs` two-part binary
// variables followed by one `outputs`-part output variable.
func Binary(inputs, outputs int) (*Space, error) {
	if inputs < 1 {
		return nil, ErrNoVariables
	}
	sizes := make([]int, inputs+1)
	for v := 0; v < inputs; v++ {
		sizes[v] = 2
	}
	sizes[inputs] = outputs
	return NewSpace(sizes)
}

// Size returns the total number of parts.
func (s *Space) Size() int { return s.size }

// NumVars returns the number of variables, output included.
func (s *Space) NumVars() int { return s.numVars }

// Output returns the index of the output variable.
func (s *Space) Output() int { return s.output }

// FirstPart returns the index of variable v's first part.
func (s *Space) FirstPart(v int) int { return s.firstPart[v] }

// LastPart returns the index of variable v's last part.
func (s *Space) LastPart(v int) int { return s.lastPart[v] }

// VarSize returns the number of parts of variable v.
func (s *Space) VarSize(v int) int { return s.lastPart[v] - s.firstPart[v] + 1 }

// VarMask returns the shared bit-set holding exactly variable v's
// parts. Callers must treat it as read-only.
func (s *Space) VarMask(v int) *bitset.BitSet { return s.varMask[v] }

// Full returns the shared all-parts set. Callers must treat it as
// read-only; use NewFull for a private copy.
func (s *Space) Full() *bitset.BitSet { return s.fullSet }

// NewFull returns a fresh bit-set with every part present.
func (s *Space) NewFull() *bitset.BitSet { return s.fullSet.Clone() }

// NewEmpty returns a fresh bit-set with no parts present.
func (s *Space) NewEmpty() *bitset.BitSet { return bitset.New(uint(s.size)) }

// NewCube returns a fresh empty cube of this space.
func (s *Space) NewCube() *Cube { return &Cube{Bits: s.NewEmpty()} }

// IsFull reports whether b contains every part of the space.
func (s *Space) IsFull(b *bitset.BitSet) bool { return b.Count() == uint(s.size) }

// Intersects reports whether a and b intersect in every variable —
// the distance-0 predicate. Two cubes that fail it share no minterm.
func (s *Space) Intersects(a, b *bitset.BitSet) bool {
	common := a.Intersection(b)
	for v := 0; v < s.numVars; v++ {
		if common.IntersectionCardinality(s.varMask[v]) == 0 {
			return false
		}
	}
	return true
}

// Dist01 returns 0 if a and b intersect in every variable, 1 if they
// conflict in exactly one variable, and 2 as soon as a second
// conflicting variable is seen.
func (s *Space) Dist01(a, b *bitset.BitSet) int {
	common := a.Intersection(b)
	dist := 0
	for v := 0; v < s.numVars; v++ {
		if common.IntersectionCardinality(s.varMask[v]) == 0 {
			dist++
			if dist > 1 {
				return dist
			}
		}
	}
	return dist
}

// ForceLower accumulates into dst the parts of b, in every variable
// where b and r conflict, that must be removed from the free set to
// keep an expansion of r separated from b.
func (s *Space) ForceLower(dst, b, r *bitset.BitSet) {
	common := b.Intersection(r)
	for v := 0; v < s.numVars; v++ {
		if common.IntersectionCardinality(s.varMask[v]) == 0 {
			dst.InPlaceUnion(b.Intersection(s.varMask[v]))
		}
	}
}
