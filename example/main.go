package main

import (
	"fmt"

	"github.com/vitalvas/polyint"
)

func main() {
	quadratic := polyint.Poly(1, 2, 1) // x^2 + 2x + 1
	linear := polyint.Poly(-6, 1)      // x - 6

	fmt.Println("sum:    ", quadratic.Add(linear))
	fmt.Println("product:", quadratic.Mul(linear))
	fmt.Println("mod 5:  ", quadratic.Mul(linear).RemEuclid(5))

	p := polyint.Poly(12, -8, 1) // (x - 2)(x - 6)
	fmt.Println("p:      ", p)
	fmt.Println("roots:  ", p.IntegerRoots())

	q, err := p.FactorRoot(2)
	if err != nil {
		panic(err)
	}
	fmt.Println("p / (x - 2):      ", q)

	qm, err := p.FactorRootMod(2, 5)
	if err != nil {
		panic(err)
	}
	fmt.Println("p / (x - 2) mod 5:", qm)
}
