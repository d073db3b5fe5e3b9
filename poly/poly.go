// Package poly implements dense polynomial arithmetic over an abstract
// coefficient ring. Coefficients are stored big-endian: index 0 holds the
// highest-degree coefficient and the last index the constant term, so a
// slice of length d+1 represents a polynomial of degree d.
package poly

import (
	"fmt"

	"github.com/finitefield/ntt/ring"
)

// Add returns x + y coefficient-wise. The operands must have equal length.
func Add[T any](r ring.Algebra[T], x, y []T) []T {
	checkSameLen("Add", x, y)
	z := make([]T, len(x))
	for i := range z {
		z[i] = r.Add(x[i], y[i])
	}
	return z
}

// Sub returns x - y coefficient-wise. The operands must have equal length.
func Sub[T any](r ring.Algebra[T], x, y []T) []T {
	checkSameLen("Sub", x, y)
	z := make([]T, len(x))
	for i := range z {
		z[i] = r.Sub(x[i], y[i])
	}
	return z
}

// Neg returns -x coefficient-wise.
func Neg[T any](r ring.Algebra[T], x []T) []T {
	z := make([]T, len(x))
	for i := range z {
		z[i] = r.Neg(x[i])
	}
	return z
}

// Scale returns c * x coefficient-wise.
func Scale[T any](r ring.Algebra[T], c T, x []T) []T {
	z := make([]T, len(x))
	for i := range z {
		z[i] = r.Mul(c, x[i])
	}
	return z
}

// Mul returns the product of x and y, the full convolution of their
// coefficients: a slice of length len(x)+len(y)-1 whose k-th entry is the
// ring sum of all x[i]*y[j] with i+j = k. Both operands must be non-empty.
func Mul[T any](r ring.Algebra[T], x, y []T) []T {
	if len(x) == 0 || len(y) == 0 {
		panic("cannot Mul: empty operand")
	}
	z := make([]T, len(x)+len(y)-1)
	for i := range z {
		z[i] = r.Zero()
	}
	for i := range x {
		for j := range y {
			z[i+j] = r.Add(z[i+j], r.Mul(x[i], y[j]))
		}
	}
	return z
}

// Eval evaluates p at x by Horner's rule, folding the coefficients from the
// highest degree down.
func Eval[T any](r ring.Algebra[T], p []T, x T) T {
	acc := r.Zero()
	for _, c := range p {
		acc = r.Add(r.Mul(x, acc), c)
	}
	return acc
}

// Reduce performs one long-division step of z against a monic modulus of
// degree len(modulus). The modulus stores only the coefficients below its
// implicit leading 1 and z must have length len(modulus)+1; the result is
// the degree-reduced remainder z - z[0]*(X^u + modulus), of length u.
func Reduce[T any](r ring.Algebra[T], modulus, z []T) []T {
	if len(z) != len(modulus)+1 {
		panic(fmt.Errorf("cannot Reduce: length %d != %d", len(z), len(modulus)+1))
	}
	head := z[0]
	rem := make([]T, len(modulus))
	for i := range rem {
		rem[i] = r.Sub(z[i+1], r.Mul(head, modulus[i]))
	}
	return rem
}

// DivMod divides x by the monic modulus y (leading 1 implicit, as in
// Reduce), returning the quotient of length len(x)-len(y) and the
// remainder of length len(y). It requires len(x) >= len(y).
func DivMod[T any](r ring.Algebra[T], x, y []T) (quot, rem []T) {

	if len(x) < len(y) {
		panic(fmt.Errorf("cannot DivMod: dividend length %d < %d", len(x), len(y)))
	}

	quot = make([]T, len(x)-len(y))

	rem = make([]T, len(y))
	copy(rem, x[:len(y)])

	// Slide one more coefficient of x in per step; the head of the window
	// is the next quotient digit, top-down.
	z := make([]T, len(y)+1)
	for i := range quot {
		copy(z, rem)
		z[len(y)] = x[len(y)+i]
		quot[i] = z[0]
		rem = Reduce(r, y, z)
	}

	return quot, rem
}

// Div returns the quotient of DivMod.
func Div[T any](r ring.Algebra[T], x, y []T) []T {
	quot, _ := DivMod(r, x, y)
	return quot
}

// Mod returns the remainder of DivMod.
func Mod[T any](r ring.Algebra[T], x, y []T) []T {
	_, rem := DivMod(r, x, y)
	return rem
}

// ModMul returns x * y mod (X^u + modulus) for operands of length
// u = len(modulus), reducing incrementally: the running accumulator is
// degree-shifted and reduced once per coefficient of x, so the double
// length product is never materialized.
func ModMul[T any](r ring.Algebra[T], modulus, x, y []T) []T {

	u := len(modulus)
	checkSameLen("ModMul", x, modulus)
	checkSameLen("ModMul", y, modulus)

	acc := make([]T, u)
	for i := range acc {
		acc[i] = r.Zero()
	}

	z := make([]T, u+1)
	for i := range x {

		// acc = acc*X mod m
		copy(z, acc)
		z[u] = r.Zero()
		acc = Reduce(r, modulus, z)

		// acc += x[i]*y
		for j := range acc {
			acc[j] = r.Add(acc[j], r.Mul(x[i], y[j]))
		}
	}

	return acc
}

func checkSameLen[T any](op string, x, y []T) {
	if len(x) != len(y) {
		panic(fmt.Errorf("cannot %s: operand lengths %d != %d", op, len(x), len(y)))
	}
}
