// Package polyint implements exact arithmetic on univariate polynomials
// with integer coefficients.
//
// A Polynomial stores its coefficients in ascending degree order, so index
// 0 is the constant term. The representation is kept canonical: there is
// never a trailing zero coefficient, and the zero polynomial is an empty
// coefficient slice. Every exported operation restores this invariant
// before returning.
//
// All arithmetic is plain machine-int arithmetic. Overflow is the caller's
// concern.
package polyint

import "slices"

// Polynomial is a univariate polynomial with integer coefficients, stored
// in ascending degree order.
//
// The zero value is the zero polynomial and is ready to use.
type Polynomial struct {
	coeffs []int
}

// New creates a polynomial from the given coefficients, in ascending
// degree order. For example, New([]int{1, 2, 3}) represents 3x^2 + 2x + 1.
// Trailing (higher-degree) zeroes are removed, so any slice is valid
// input, including nil. The slice is copied; the caller keeps ownership
// of its argument.
func New(coeffs []int) Polynomial {
	p := Polynomial{coeffs: append([]int(nil), coeffs...)}
	p.reduce()
	return p
}

// Poly is a variadic convenience constructor: Poly(1, 2, 1) is x^2 + 2x + 1
// and Poly() is the zero polynomial.
func Poly(coeffs ...int) Polynomial {
	return New(coeffs)
}

// Zero returns the zero polynomial, stored internally as an empty slice.
func Zero() Polynomial {
	return Polynomial{}
}

// Constant returns a constant polynomial. Constant(0) is identical to
// Zero().
func Constant(v int) Polynomial {
	if v == 0 {
		return Zero()
	}
	return Polynomial{coeffs: []int{v}}
}

// Degree returns the highest power with a nonzero coefficient. Nonzero
// constants have degree 0; the zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.Degree() == -1
}

// Coeffs returns a copy of p's coefficients in ascending degree order
// (Coeffs()[n] is the x^n coefficient). Returns nil for the zero
// polynomial.
func (p Polynomial) Coeffs() []int {
	if len(p.coeffs) == 0 {
		return nil
	}
	return append([]int(nil), p.coeffs...)
}

// RawCoeffs returns the underlying coefficient slice without copying.
// Writes through it bypass normalization: storing a zero in the last
// position breaks the canonical-form invariant, and that is the caller's
// responsibility to avoid.
func (p Polynomial) RawCoeffs() []int {
	return p.coeffs
}

// Coefficient returns the x^i coefficient. It panics if i is out of range
// for the stored coefficients; use Degree to check first.
func (p Polynomial) Coefficient(i int) int {
	return p.coeffs[i]
}

// SetCoefficient stores v as the x^i coefficient. It panics if i is out of
// range. Like RawCoeffs, it bypasses normalization: setting the leading
// coefficient to zero is the caller's responsibility to avoid.
func (p *Polynomial) SetCoefficient(i, v int) {
	p.coeffs[i] = v
}

// Equal reports whether p and q are the same polynomial. Since both are in
// canonical form this is element-wise slice equality.
func (p Polynomial) Equal(q Polynomial) bool {
	return slices.Equal(p.coeffs, q.coeffs)
}

// Clone returns a copy of p with its own backing storage.
func (p Polynomial) Clone() Polynomial {
	return Polynomial{coeffs: append([]int(nil), p.coeffs...)}
}

// reduce removes trailing zero coefficients. This is the single
// normalization primitive: every operation that could leave a trailing
// zero routes through it, and functions like Degree and String rely on
// the invariant it restores.
func (p *Polynomial) reduce() {
	for len(p.coeffs) > 0 && p.coeffs[len(p.coeffs)-1] == 0 {
		p.coeffs = p.coeffs[:len(p.coeffs)-1]
	}
}
