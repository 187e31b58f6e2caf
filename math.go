package polyint

import "slices"

// Derivative returns the formal derivative of p. Constants and the zero
// polynomial differentiate to Zero().
//
// For example, Poly(1, -2, 5, 4).Derivative() is Poly(-2, 10, 12).
func (p Polynomial) Derivative() Polynomial {
	if p.Degree() <= 0 {
		return Zero()
	}
	coeffs := make([]int, p.Degree())
	for i := range coeffs {
		coeffs[i] = (i + 1) * p.coeffs[i+1]
	}
	out := Polynomial{coeffs: coeffs}
	out.reduce()
	return out
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x int) int {
	acc := 0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}
	return acc
}

// HasRoot reports whether x is a root of p.
func (p Polynomial) HasRoot(x int) bool {
	return p.Eval(x) == 0
}

// HasRootMod reports whether x is a root of p with all arithmetic taken
// modulo div.
func (p Polynomial) HasRootMod(x, div int) bool {
	return remEuclid(p.Eval(x), div) == 0
}

// TimesX returns p multiplied by the indeterminate: every term is shifted
// up one degree. Zero().TimesX() is still Zero(), never Poly(0).
func (p Polynomial) TimesX() Polynomial {
	if p.IsZero() {
		return Zero()
	}
	coeffs := make([]int, len(p.coeffs)+1)
	copy(coeffs[1:], p.coeffs)
	return Polynomial{coeffs: coeffs}
}

// LeadingCoefficient returns the coefficient of p's highest-degree term,
// or 0 for the zero polynomial.
func (p Polynomial) LeadingCoefficient() int {
	if p.IsZero() {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// FactorRoot divides p by (x - a) using synthetic division, returning q
// with p == q * (x - a). If a is not a root of p it returns ErrNotRoot.
// The zero polynomial has every value as a root and factors to Zero().
//
// For example, Poly(12, -8, 1) is (x - 2)(x - 6), so FactorRoot(2) yields
// Poly(-6, 1) and FactorRoot(5) yields ErrNotRoot.
//
// Each division step must be exact once the root check passes; an inexact
// step can only mean the evaluation overflowed int, and the function
// panics rather than silently truncating.
func (p Polynomial) FactorRoot(a int) (Polynomial, error) {
	if !p.HasRoot(a) {
		return Polynomial{}, ErrNotRoot
	}
	if p.IsZero() {
		return Zero(), nil
	}
	if a == 0 {
		// Factoring out x is dropping the constant term.
		return New(p.coeffs[1:]), nil
	}
	// The quotient's constant term is -c[0]/a, and each next coefficient
	// satisfies q[n] = (q[n-1] - c[n]) / a.
	coeffs := make([]int, 0, p.Degree())
	acc := 0
	for _, c := range p.coeffs[:p.Degree()] {
		acc -= c
		if acc%a != 0 {
			panic("polyint: inexact synthetic division step, coefficient arithmetic overflowed")
		}
		acc /= a
		coeffs = append(coeffs, acc)
	}
	out := Polynomial{coeffs: coeffs}
	out.reduce()
	return out, nil
}

// FactorRootMod divides p by (x - a) over the field of integers modulo the
// prime mod, returning q with p == q * (x - a) (mod mod). The quotient's
// coefficients are always in [0, mod).
//
// It returns ErrNotPrime if mod is not prime and ErrNotRoot if a is not a
// root of p modulo mod. Primality is required because factorization is
// not unique over composite moduli: x^2 - 8x + 12 reduces to x^2 mod 4,
// but also equals (x + 2)^2 there.
func (p Polynomial) FactorRootMod(a, mod int) (Polynomial, error) {
	if !isPrime(mod) {
		return Polynomial{}, ErrNotPrime
	}
	if !p.HasRootMod(a, mod) {
		return Polynomial{}, ErrNotRoot
	}
	if p.IsZero() {
		return Zero(), nil
	}
	reduced := p.RemEuclid(mod)
	if reduced.IsZero() {
		return Zero(), nil
	}
	a = remEuclid(a, mod)
	if a == 0 {
		return New(reduced.coeffs[1:]), nil
	}
	// Same recurrence as FactorRoot, with division by a replaced by
	// multiplication by its inverse modulo mod.
	inv := invModP(a, mod)
	coeffs := make([]int, 0, reduced.Degree())
	acc := 0
	for _, c := range reduced.coeffs[:reduced.Degree()] {
		acc = remEuclid((acc-c)*inv, mod)
		coeffs = append(coeffs, acc)
	}
	out := Polynomial{coeffs: coeffs}
	out.reduce()
	return out, nil
}

// Pow returns p raised to the n-th power by binary exponentiation.
// Pow(0) is the constant polynomial 1. Negative exponents panic.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic("polyint: negative exponent")
	}
	out := Constant(1)
	base := p.Clone()
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return out
}

// Compose returns p(q(x)), evaluated by Horner's method over polynomials.
func (p Polynomial) Compose(q Polynomial) Polynomial {
	out := Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		out = out.Mul(q)
		out.AddScalarAssign(p.coeffs[i])
	}
	return out
}

// IntegerRoots returns every integer root of p in ascending order. Any
// integer root must divide the lowest-degree nonzero coefficient, so only
// divisors of it (and zero) are tested. A polynomial with no integer
// roots yields an empty result. The zero polynomial yields nil: every
// integer is vacuously a root, so there is nothing to enumerate.
func (p Polynomial) IntegerRoots() []int {
	if p.IsZero() {
		return nil
	}
	var roots []int
	q := p
	if q.coeffs[0] == 0 {
		roots = append(roots, 0)
		k := 0
		for q.coeffs[k] == 0 {
			k++
		}
		q = New(q.coeffs[k:])
	}
	c := q.coeffs[0]
	if c < 0 {
		c = -c
	}
	for d := 1; d*d <= c; d++ {
		if c%d != 0 {
			continue
		}
		for _, cand := range [4]int{d, -d, c / d, -(c / d)} {
			if q.HasRoot(cand) && !slices.Contains(roots, cand) {
				roots = append(roots, cand)
			}
		}
	}
	slices.Sort(roots)
	return roots
}

// isPrime reports whether p is prime by trial division. Past 2 and 3 only
// candidates of the form 6k±1 up to the square root need checking.
func isPrime(p int) bool {
	if p == 2 || p == 3 {
		return true
	}
	if p < 2 || p%2 == 0 || p%3 == 0 {
		return false
	}
	for i := 5; i*i <= p; i += 6 {
		if p%i == 0 || p%(i+2) == 0 {
			return false
		}
	}
	return true
}

// invModP computes the multiplicative inverse of a modulo the prime p via
// the extended Euclidean algorithm, normalized into [0, p). Callers must
// reduce a into [1, p) first; primality of p then guarantees the inverse
// exists.
func invModP(a, p int) int {
	r0, r1 := a, p
	s0, s1 := 1, 0
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	return remEuclid(s0, p)
}
