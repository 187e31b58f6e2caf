package polyint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul(t *testing.T) {
	t.Run("basic product", func(t *testing.T) {
		// (x^2 + 2x + 1)(x - 6) = x^3 - 4x^2 - 11x - 6
		assert.Equal(t, Poly(-6, -11, -4, 1), Poly(1, 2, 1).Mul(Poly(-6, 1)))
	})

	t.Run("cubic times quadratic", func(t *testing.T) {
		assert.Equal(t, Poly(-5, -11, -1, 13, 10, 2), Poly(1, 3, 3, 1).Mul(Poly(-5, 4, 2)))
	})

	t.Run("multiplying by zero", func(t *testing.T) {
		p := Poly(1, 2, 1)
		assert.True(t, p.Mul(Zero()).IsZero())
		assert.True(t, Zero().Mul(p).IsZero())
	})

	t.Run("multiplicative identity", func(t *testing.T) {
		p := Poly(1, 2, 1)
		assert.Equal(t, p, p.Mul(Constant(1)))
	})

	t.Run("commutative", func(t *testing.T) {
		p, q := Poly(1, 3, 3, 1), Poly(-5, 4, 2)
		assert.Equal(t, q.Mul(p), p.Mul(q))
	})

	t.Run("degree law", func(t *testing.T) {
		p, q := Poly(1, 2, 1), Poly(-6, 1)
		assert.Equal(t, p.Degree()+q.Degree(), p.Mul(q).Degree())
	})

	t.Run("does not mutate operands", func(t *testing.T) {
		p, q := Poly(1, 2, 1), Poly(-6, 1)
		p.Mul(q)
		assert.Equal(t, Poly(1, 2, 1), p)
		assert.Equal(t, Poly(-6, 1), q)
	})
}

func TestMulAssign(t *testing.T) {
	p := Poly(1, 2, 1)
	p.MulAssign(Poly(-6, 1))
	assert.Equal(t, Poly(1, 2, 1).Mul(Poly(-6, 1)), p)

	p = Poly(1, 2, 1)
	p.MulAssign(Zero())
	assert.True(t, p.IsZero())
}

func TestMulScalar(t *testing.T) {
	t.Run("scales every coefficient", func(t *testing.T) {
		assert.Equal(t, Poly(5, 10, 5), Poly(1, 2, 1).MulScalar(5))
	})

	t.Run("by zero yields the zero polynomial", func(t *testing.T) {
		p := Poly(1, 2, 1).MulScalar(0)
		assert.True(t, p.IsZero())
		assert.Nil(t, p.Coeffs())
	})

	t.Run("zero polynomial stays zero", func(t *testing.T) {
		assert.True(t, Zero().MulScalar(5).IsZero())
	})

	t.Run("assign form agrees", func(t *testing.T) {
		p := Poly(1, 2, 1)
		p.MulScalarAssign(5)
		assert.Equal(t, Poly(1, 2, 1).MulScalar(5), p)
	})
}

func TestMulDistributesOverAdd(t *testing.T) {
	p, q, r := Poly(1, 2, 1), Poly(-6, 1), Poly(3, 0, -2)
	assert.Equal(t, p.Mul(q).Add(p.Mul(r)), p.Mul(q.Add(r)))
}
