package polyint

import "errors"

var (
	// ErrNotRoot is returned by the factoring operations when the given
	// value is not a root of the polynomial.
	ErrNotRoot = errors.New("polyint: value is not a root")

	// ErrNotPrime is returned by FactorRootMod when the modulus is not
	// prime. Factoring over composite moduli is unsupported because unique
	// factorization fails there.
	ErrNotPrime = errors.New("polyint: modulus is not prime")
)
