package polyint

// SubAssign subtracts q from p in place.
func (p *Polynomial) SubAssign(q Polynomial) {
	if len(q.coeffs) > len(p.coeffs) {
		p.coeffs = append(p.coeffs, make([]int, len(q.coeffs)-len(p.coeffs))...)
	}
	for i, c := range q.coeffs {
		p.coeffs[i] -= c
	}
	p.reduce()
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	out := p.Clone()
	out.SubAssign(q)
	return out
}

// SubScalarAssign subtracts n from p's constant term in place.
func (p *Polynomial) SubScalarAssign(n int) {
	p.AddScalarAssign(-n)
}

// SubScalar returns p - n, treating n as a constant polynomial.
func (p Polynomial) SubScalar(n int) Polynomial {
	out := p.Clone()
	out.SubScalarAssign(n)
	return out
}

// NegAssign replaces every coefficient with its additive inverse.
// Negation cannot introduce a trailing zero, so no normalization is
// needed.
func (p *Polynomial) NegAssign() {
	for i := range p.coeffs {
		p.coeffs[i] = -p.coeffs[i]
	}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := p.Clone()
	out.NegAssign()
	return out
}
