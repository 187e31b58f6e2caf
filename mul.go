package polyint

// Mul returns the product of p and q, computed by convolution: the x^k
// coefficient of the result is the sum of p[i]*q[j] over all i+j == k.
// If either operand is zero the result is Zero().
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	coeffs := make([]int, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] += a * b
		}
	}
	out := Polynomial{coeffs: coeffs}
	out.reduce()
	return out
}

// MulAssign replaces p with p * q. The product needs fresh storage anyway,
// so this shares the Mul implementation.
func (p *Polynomial) MulAssign(q Polynomial) {
	*p = p.Mul(q)
}

// MulScalarAssign multiplies every coefficient by n in place. Multiplying
// by 0 yields the zero polynomial, not a slice of zeroes.
func (p *Polynomial) MulScalarAssign(n int) {
	if n == 0 {
		p.coeffs = nil
		return
	}
	for i := range p.coeffs {
		p.coeffs[i] *= n
	}
}

// MulScalar returns p scaled by n.
func (p Polynomial) MulScalar(n int) Polynomial {
	out := p.Clone()
	out.MulScalarAssign(n)
	return out
}
