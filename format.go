package polyint

import (
	"strconv"
	"strings"
)

// String renders p in conventional notation, highest degree first, e.g.
// "4x^3 - 2x + 1". Zero-coefficient terms are skipped, unit coefficients
// are elided next to x, and the zero polynomial renders as "0". The first
// term carries its own sign; later terms are joined with " + " or " - "
// and show the coefficient's absolute value.
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	wrote := false
	for n := len(p.coeffs) - 1; n >= 0; n-- {
		c := p.coeffs[n]
		if c == 0 {
			continue
		}
		if wrote {
			if c < 0 {
				b.WriteString(" - ")
				c = -c
			} else {
				b.WriteString(" + ")
			}
		}
		switch {
		case n == 0:
			b.WriteString(strconv.Itoa(c))
		case c == 1:
			b.WriteByte('x')
		case c == -1:
			b.WriteString("-x")
		default:
			b.WriteString(strconv.Itoa(c))
			b.WriteByte('x')
		}
		if n > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(n))
		}
		wrote = true
	}
	return b.String()
}
