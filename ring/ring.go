// Package ring defines the capability contract satisfied by finite
// commutative rings and provides concrete instances of it: integers modulo
// a word-sized prime (with Barrett reduction), integers modulo an arbitrary
// big modulus, and binary extension fields. Transforms and polynomial
// arithmetic in the other packages are parametrized over this contract and
// never inspect the element representation.
package ring

import (
	"math/big"
	"math/bits"
)

// Algebra is the operation set of a finite commutative ring over an opaque
// element type T. Instances are immutable and freely shareable.
//
// Callers are responsible for supplying instances that satisfy the ring
// axioms (associativity and commutativity of Add, Zero as additive
// identity, Neg as additive inverse, associativity of Mul, distributivity,
// Sub(a, b) = Add(a, Neg(b))). FromInt must be a ring homomorphism from the
// integers. None of this is verified at run time: an instance violating the
// axioms yields well-typed but meaningless results.
type Algebra[T any] interface {

	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// FromInt returns the ring image of the integer k.
	FromInt(k int64) T

	// Add returns a + b.
	Add(a, b T) T

	// Neg returns -a.
	Neg(a T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Equal reports whether a and b represent the same ring element.
	Equal(a, b T) bool
}

// Pow evaluates x^e by square-and-multiply, scanning the exponent bits from
// the most significant down. Pow(x, 0) is One.
func Pow[T any](r Algebra[T], x T, e uint64) T {
	y := r.One()
	for i := bits.Len64(e); i > 0; i-- {
		y = r.Mul(y, y)
		if (e>>(i-1))&1 == 1 {
			y = r.Mul(y, x)
		}
	}
	return y
}

// PowInt evaluates x^e for an arbitrary non-negative integer exponent by
// recursive halving. It panics if e is negative: the contract provides no
// multiplicative inverses.
func PowInt[T any](r Algebra[T], x T, e *big.Int) T {
	if e.Sign() < 0 {
		panic("cannot PowInt: negative exponent")
	}
	if e.Sign() == 0 {
		return r.One()
	}
	h := PowInt(r, x, new(big.Int).Rsh(e, 1))
	h = r.Mul(h, h)
	if e.Bit(0) == 1 {
		h = r.Mul(h, x)
	}
	return h
}

// Powers returns the first n powers [One, x, x^2, ..., x^(n-1)].
func Powers[T any](r Algebra[T], x T, n int) []T {
	ps := make([]T, n)
	if n == 0 {
		return ps
	}
	ps[0] = r.One()
	for i := 1; i < n; i++ {
		ps[i] = r.Mul(ps[i-1], x)
	}
	return ps
}
