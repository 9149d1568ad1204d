package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/espresso/cube"
)

// TestNewSpace_Errors verifies the constructor rejects degenerate
// variable lists.
func TestNewSpace_Errors(t *testing.T) {
	_, err := cube.NewSpace([]int{2})
	assert.ErrorIs(t, err, cube.ErrNoVariables, "a lone variable cannot form a space")

	_, err = cube.NewSpace([]int{2, 0})
	assert.ErrorIs(t, err, cube.ErrBadVarSize, "zero-part variables must error")

	_, err = cube.Binary(0, 1)
	assert.ErrorIs(t, err, cube.ErrNoVariables, "a PLA needs at least one input")
}

// TestBinary_Partitioning checks the part ranges of the common
// two-input one-output space.
func TestBinary_Partitioning(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Size())
	assert.Equal(t, 3, s.NumVars())
	assert.Equal(t, 2, s.Output())
	assert.Equal(t, 0, s.FirstPart(0))
	assert.Equal(t, 1, s.LastPart(0))
	assert.Equal(t, 2, s.FirstPart(1))
	assert.Equal(t, 4, s.FirstPart(2))
	assert.Equal(t, 1, s.VarSize(2))
	assert.True(t, s.IsFull(s.Full()), "the full set contains every part")
}

// TestParse_RoundTrip verifies notation survives a parse/format cycle
// and that '-' parses as a present part.
func TestParse_RoundTrip(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	c, err := s.Parse("10 01 1")
	require.NoError(t, err)
	assert.Equal(t, "10 01 1", s.Format(c))

	dash, err := s.Parse("01 -- 1")
	require.NoError(t, err)
	assert.Equal(t, "01 11 1", s.Format(dash), "dashes mean all parts present")
}

// TestParse_Errors covers the malformed-notation cases.
func TestParse_Errors(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	_, err = s.Parse("10 01")
	assert.ErrorIs(t, err, cube.ErrNotation, "missing variable must error")

	_, err = s.Parse("101 01 1")
	assert.ErrorIs(t, err, cube.ErrNotation, "wrong part count must error")

	_, err = s.Parse("10 0x 1")
	assert.ErrorIs(t, err, cube.ErrNotation, "bad character must error")
}

// TestDist01 checks the three distance classes against hand-computed
// cubes.
func TestDist01(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	xy := s.MustParse("10 01 1")
	assert.Equal(t, 0, s.Dist01(xy.Bits, s.MustParse("11 11 1").Bits), "overlapping cubes are at distance 0")
	assert.Equal(t, 1, s.Dist01(xy.Bits, s.MustParse("10 10 1").Bits), "one conflicting variable")
	assert.Equal(t, 2, s.Dist01(xy.Bits, s.MustParse("01 10 1").Bits), "two conflicting variables")

	assert.True(t, s.Intersects(xy.Bits, s.MustParse("11 11 1").Bits))
	assert.False(t, s.Intersects(xy.Bits, s.MustParse("10 10 1").Bits))
}

// TestForceLower accumulates the blocking cube's parts of every
// conflicting variable.
func TestForceLower(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	raise := s.MustParse("10 01 1")
	block := s.MustParse("01 10 1")
	dst := s.NewEmpty()
	s.ForceLower(dst, block.Bits, raise.Bits)

	want := s.MustParse("01 10 0")
	assert.True(t, dst.Equal(want.Bits), "both conflicting variables contribute the blocker's parts")
}

// TestCover_SortAscending orders cubes small-to-large by part count,
// stably.
func TestCover_SortAscending(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	f := s.MustCover("11 11 1", "10 01 1", "10 11 1")
	f.SortAscending()

	assert.Equal(t, "10 01 1", s.Format(f.At(0)))
	assert.Equal(t, "10 11 1", s.Format(f.At(1)))
	assert.Equal(t, "11 11 1", s.Format(f.At(2)))
}

// TestCover_ActiveBookkeeping exercises the cached active count and
// compaction.
func TestCover_ActiveBookkeeping(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	f := s.MustCover("10 01 1", "01 10 1")
	f.ActivateAll()
	assert.Equal(t, 2, f.ActiveCount())

	f.Deactivate(f.At(0))
	f.Deactivate(f.At(0)) // second call must not double-count
	assert.Equal(t, 1, f.ActiveCount())

	assert.True(t, f.Compact())
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, "01 10 1", s.Format(f.At(0)))
	assert.False(t, f.Compact(), "a second compaction changes nothing")
}

// TestCover_Cost checks the literal-count measure on a two-output
// cover.
func TestCover_Cost(t *testing.T) {
	s, err := cube.Binary(1, 2)
	require.NoError(t, err)

	f := s.MustCover("10 11", "11 01")
	c := f.Cost()

	assert.Equal(t, 2, c.Cubes)
	assert.Equal(t, 1, c.In, "only the restricted input variable costs a literal")
	assert.Equal(t, 3, c.Out)
	assert.Equal(t, 4, c.Total)
}

// TestCube_Flags verifies flag orthogonality and the clone.
func TestCube_Flags(t *testing.T) {
	s, err := cube.Binary(2, 1)
	require.NoError(t, err)

	c := s.MustParse("10 01 1")
	c.Mark(cube.FlagPrime | cube.FlagActive)
	assert.True(t, c.Is(cube.FlagPrime))
	assert.True(t, c.Is(cube.FlagActive))
	assert.False(t, c.Is(cube.FlagCovered))

	clone := c.Clone()
	clone.Unmark(cube.FlagPrime)
	clone.Bits.Clear(0)
	assert.True(t, c.Is(cube.FlagPrime), "clone flags are independent")
	assert.True(t, c.Bits.Test(0), "clone bits are independent")
}
