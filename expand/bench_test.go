package expand_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
)

// mintermCover builds a cover holding one minterm cube per value in
// values, over n binary inputs and one output.
func mintermCover(s *cube.Space, n int, values []int) *cube.Cover {
	f := cube.NewCover(s, len(values))
	for _, m := range values {
		var b strings.Builder
		for v := 0; v < n; v++ {
			if m&(1<<v) == 0 {
				b.WriteString("10 ")
			} else {
				b.WriteString("01 ")
			}
		}
		b.WriteString("1")
		f.Append(s.MustParse(b.String()))
	}
	return f
}

// BenchmarkExpand_Parity4 expands the minterm cover of 4-input parity
// — every cube is already prime, so this measures the feasibility
// machinery without absorption.
func BenchmarkExpand_Parity4(b *testing.B) {
	s, err := cube.Binary(4, 1)
	if err != nil {
		b.Fatalf("space: %v", err)
	}
	var on, off []int
	for m := 0; m < 16; m++ {
		if popcount(m)%2 == 1 {
			on = append(on, m)
		} else {
			off = append(off, m)
		}
	}
	F := mintermCover(s, 4, on)
	R := mintermCover(s, 4, off)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := F.Clone()
		if _, err := expand.Expand(f, R, expand.DefaultOptions()); err != nil {
			b.Fatalf("Expand failed: %v", err)
		}
	}
}

// BenchmarkExpand_Majority3 expands the majority minterms, exercising
// the absorption path.
func BenchmarkExpand_Majority3(b *testing.B) {
	s, err := cube.Binary(3, 1)
	if err != nil {
		b.Fatalf("space: %v", err)
	}
	F := mintermCover(s, 3, []int{3, 5, 6, 7})
	R := mintermCover(s, 3, []int{0, 1, 2, 4})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := F.Clone()
		if _, err := expand.Expand(f, R, expand.DefaultOptions()); err != nil {
			b.Fatalf("Expand failed: %v", err)
		}
	}
}

func popcount(m int) int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}
