// Package cube provides the data model shared by every phase of the
// minimizer: the cube space descriptor, single cubes, covers, and the
// primitive set operations the expansion engine is built on.
//
// 🚀 What is a cube?
//
//	A product term of a Boolean function, stored as a flat bit-set of
//	"parts". The space partitions the parts into variables; a variable
//	with every part present places no constraint on the function (the
//	familiar "-" of PLA notation).
//
// ✨ What lives here:
//   - Space  — mutable-once descriptor: sizes, variable masks, distances
//   - Cube   — one bit-set plus ACTIVE/PRIME/COVERED/NONESSEN flags
//   - Cover  — an ordered cube arena with active-count bookkeeping
//   - Cost   — the literal-count measure driving the sparse cleanup
//
// Cubes are positional: with two binary inputs and one output,
// "10 01 1" is the term x·y' asserting the single output. Space.Parse
// and Space.Format translate between notation and bit-sets.
//
// All state is explicit — construct a Space once, thread it through
// the algorithms, and never mutate it afterwards.
package cube
