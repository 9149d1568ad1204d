package expand_test

import (
	"fmt"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
)

// ExampleExpand expands a two-cube cover; the narrow cube grows into
// the broad one and absorbs it.
func ExampleExpand() {
	s, _ := cube.Binary(2, 1)
	F := s.MustCover("10 01 1", "10 11 1")
	R := s.MustCover("01 11 1")

	F, _ = expand.Expand(F, R, expand.DefaultOptions())
	for i := 0; i < F.Len(); i++ {
		fmt.Println(s.Format(F.At(i)))
	}
	// Output:
	// 10 11 1
}
