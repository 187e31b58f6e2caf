package polyint

// RemAssign replaces every coefficient with its truncating remainder
// modulo n, in place. Negative coefficients stay negative; use
// RemEuclidAssign for remainders guaranteed to land in [0, |n|).
func (p *Polynomial) RemAssign(n int) {
	for i := range p.coeffs {
		p.coeffs[i] %= n
	}
	p.reduce()
}

// Rem returns p with every coefficient replaced by its truncating
// remainder modulo n.
func (p Polynomial) Rem(n int) Polynomial {
	out := p.Clone()
	out.RemAssign(n)
	return out
}

// RemEuclidAssign replaces every coefficient with its Euclidean remainder
// modulo n, in place. Unlike RemAssign, every resulting coefficient is in
// [0, |n|) regardless of sign.
func (p *Polynomial) RemEuclidAssign(n int) {
	for i := range p.coeffs {
		p.coeffs[i] = remEuclid(p.coeffs[i], n)
	}
	p.reduce()
}

// RemEuclid returns p with every coefficient replaced by its Euclidean
// remainder modulo n.
//
// For example, Poly(6, -5, 3, -7, 4).RemEuclid(5) is Poly(1, 0, 3, 3, 4).
func (p Polynomial) RemEuclid(n int) Polynomial {
	out := p.Clone()
	out.RemEuclidAssign(n)
	return out
}

// remEuclid returns the Euclidean remainder of a modulo n, always in
// [0, |n|).
func remEuclid(a, n int) int {
	r := a % n
	if r < 0 {
		if n < 0 {
			r -= n
		} else {
			r += n
		}
	}
	return r
}
