package cube

import (
	"fmt"
	"strings"
)

// Parse reads a cube in positional notation: one token per variable,
// one character per part, '1' or '-' for a present part and '0' for
// an absent one. "10 01 1" over two binary inputs and one output is
// the term x·y' asserting the single output.
func (s *Space) Parse(text string) (*Cube, error) {
	tokens := strings.Fields(text)
	if len(tokens) != s.numVars {
		return nil, fmt.Errorf("%w: %q has %d variables, space has %d",
			ErrNotation, text, len(tokens), s.numVars)
	}

	c := s.NewCube()
	for v, tok := range tokens {
		if len(tok) != s.VarSize(v) {
			return nil, fmt.Errorf("%w: variable %d of %q has %d parts, want %d",
				ErrNotation, v, text, len(tok), s.VarSize(v))
		}
		for j := 0; j < len(tok); j++ {
			switch tok[j] {
			case '1', '-':
				c.Bits.Set(uint(s.firstPart[v] + j))
			case '0':
			default:
				return nil, fmt.Errorf("%w: bad character %q in %q",
					ErrNotation, tok[j], text)
			}
		}
	}
	return c, nil
}

// MustParse is Parse for tests and examples; it panics on bad input.
func (s *Space) MustParse(text string) *Cube {
	c, err := s.Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders a cube back into positional notation with '1' and
// '0' characters.
func (s *Space) Format(c *Cube) string {
	var b strings.Builder
	for v := 0; v < s.numVars; v++ {
		if v > 0 {
			b.WriteByte(' ')
		}
		for j := s.firstPart[v]; j <= s.lastPart[v]; j++ {
			if c.Bits.Test(uint(j)) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// CoverOf builds a cover from cubes in positional notation.
func (s *Space) CoverOf(cubes ...string) (*Cover, error) {
	f := NewCover(s, len(cubes))
	for _, text := range cubes {
		c, err := s.Parse(text)
		if err != nil {
			return nil, err
		}
		f.Append(c)
	}
	return f, nil
}

// MustCover is CoverOf for tests and examples; it panics on bad input.
func (s *Space) MustCover(cubes ...string) *Cover {
	f, err := s.CoverOf(cubes...)
	if err != nil {
		panic(err)
	}
	return f
}
