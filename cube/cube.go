package cube

import "github.com/bits-and-blooms/bitset"

// Flag is a per-cube status bit. Flags are orthogonal; any
// combination is legal.
type Flag uint8

const (
	// FlagActive marks a cube as logically present; a cube without it
	// is deleted at the next Cover.Compact.
	FlagActive Flag = 1 << iota

	// FlagPrime marks a cube that is already a prime implicant.
	FlagPrime

	// FlagCovered marks a cube absorbed by another cube's expansion.
	FlagCovered

	// FlagNonessential marks a prime that absorbed nothing and came
	// out strictly smaller than its overexpanded cube.
	FlagNonessential
)

// Cube is one product term: a flat bit-set of parts plus status flags.
type Cube struct {
	Bits *bitset.BitSet

	flags Flag
}

// Is reports whether any of the flags in f are set.
func (c *Cube) Is(f Flag) bool { return c.flags&f != 0 }

// Mark sets the flags in f.
func (c *Cube) Mark(f Flag) { c.flags |= f }

// Unmark clears the flags in f.
func (c *Cube) Unmark(f Flag) { c.flags &^= f }

// Clone returns a deep copy of the cube, flags included.
func (c *Cube) Clone() *Cube {
	return &Cube{Bits: c.Bits.Clone(), flags: c.flags}
}
