// Package expand implements the EXPAND step of the Espresso-II
// minimization loop: growing each cube of the ON-set into a prime
// implicant while absorbing as many other ON-set cubes as possible.
//
// 🚀 How expansion works
//
//	Each cube splits the parts of the space three ways: RAISE (parts
//	committed to the expanded cube), the free set (parts not yet
//	decided), and the lowered parts (forbidden). The engine tightens
//	RAISE and the free set through a fixed sequence of phases:
//
//	  1. essential lowering  — parts whose raising would hit the OFF-set
//	  2. essential raising   — parts no OFF-set cube blocks
//	  3. greedy absorption   — one-level lookahead over feasibly
//	                           covered ON-set cubes
//	  4. most-frequent climb — MINI-style part picking for stragglers
//	  5. min-cover fallback  — bounded exact set cover over the
//	                           remaining blocking rows
//
// The engine works directly against a representation of the OFF-set;
// no unwrapped version of it is required.
//
// Expansion is strictly single-threaded: it mutates the active flags
// of both covers while it runs. The only failure of the expansion
// itself is an ON-set overlapping the OFF-set, reported as
// ErrNotOrthogonal; Expand also rejects nil covers (ErrNilCover) and
// covers of different spaces (ErrSpaceMismatch) before it starts.
package expand
