package polyint

// AddAssign adds q to p in place. The arithmetic lives here; Add is a
// clone of p followed by AddAssign, so the two calling forms cannot
// diverge.
func (p *Polynomial) AddAssign(q Polynomial) {
	if len(q.coeffs) > len(p.coeffs) {
		p.coeffs = append(p.coeffs, make([]int, len(q.coeffs)-len(p.coeffs))...)
	}
	for i, c := range q.coeffs {
		p.coeffs[i] += c
	}
	p.reduce()
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := p.Clone()
	out.AddAssign(q)
	return out
}

// AddScalarAssign adds n to p's constant term in place. Adding to the zero
// polynomial produces Constant(n).
func (p *Polynomial) AddScalarAssign(n int) {
	if p.IsZero() {
		if n != 0 {
			p.coeffs = []int{n}
		}
		return
	}
	p.coeffs[0] += n
	p.reduce()
}

// AddScalar returns p + n, treating n as a constant polynomial.
func (p Polynomial) AddScalar(n int) Polynomial {
	out := p.Clone()
	out.AddScalarAssign(n)
	return out
}
