// Package espresso is a two-level Boolean logic minimizer toolkit in the
// Espresso-II family, centered on the EXPAND step.
//
// 🚀 What is espresso?
//
//	A library that grows each cube of an ON-set cover into a prime
//	implicant — a product term that cannot be enlarged without touching
//	the OFF-set — while absorbing as many other ON-set cubes as it can
//	along the way.
//
// ✨ Key features:
//   - Prime expansion        — per-cube raising with OFF-set orthogonality
//   - Greedy absorption      — one-level lookahead over feasibly covered cubes
//   - Min-cover fallback     — bounded exact set cover when nothing absorbs
//   - Sparse cleanup         — alternating output-reduce / input-expand pass
//   - Pure Go                — no cgo, flat bit-set cubes, explicit errors
//
// Everything is organized under four subpackages:
//
//	cube/   — cube space descriptor, covers, flags, distances, notation
//	expand/ — the expansion engine (Expand, feasibility, min-cover fallback)
//	irred/  — irredundant-cover marking via recursive tautology checking
//	sparse/ — MakeSparse / MVReduce literal-count cleanup
//
// Quick positional-notation example (two inputs, one output):
//
//	F = { 10 01 1, 10 11 1 }   R = { 01 11 1 }
//
//	expand.Expand absorbs the first cube into the second: { 10 11 1 }.
//
//	go get github.com/katalvlaran/espresso
package espresso
