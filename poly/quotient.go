package poly

import (
	"fmt"

	"github.com/finitefield/ntt/ring"
)

// Quotient is the ring R[X]/(X^u + m(X)) for a monic modulus of degree
// u = len(m), stored without its leading 1. Elements are length-u
// big-endian coefficient vectors and multiplication is ModMul.
type Quotient[T any] struct {
	base    ring.Algebra[T]
	modulus []T
}

// NewQuotient returns the quotient ring of r by the monic modulus m.
func NewQuotient[T any](r ring.Algebra[T], m []T) (Quotient[T], error) {
	if len(m) == 0 {
		return Quotient[T]{}, fmt.Errorf("cannot NewQuotient: empty modulus")
	}
	modulus := make([]T, len(m))
	copy(modulus, m)
	return Quotient[T]{base: r, modulus: modulus}, nil
}

// Base returns the coefficient ring.
func (q Quotient[T]) Base() ring.Algebra[T] {
	return q.base
}

// Modulus returns the stored coefficients of the modulus, below its
// implicit leading 1.
func (q Quotient[T]) Modulus() []T {
	m := make([]T, len(q.modulus))
	copy(m, q.modulus)
	return m
}

// Degree returns the degree u of the modulus, the length of every element.
func (q Quotient[T]) Degree() int {
	return len(q.modulus)
}

func (q Quotient[T]) checkLen(xs []T) {
	if len(xs) != len(q.modulus) {
		panic(fmt.Errorf("invalid element length: %d != %d", len(xs), len(q.modulus)))
	}
}

// Zero returns the zero polynomial.
func (q Quotient[T]) Zero() []T {
	zs := make([]T, len(q.modulus))
	for i := range zs {
		zs[i] = q.base.Zero()
	}
	return zs
}

// One returns the constant polynomial 1.
func (q Quotient[T]) One() []T {
	return q.FromInt(1)
}

// FromInt returns the constant polynomial k.
func (q Quotient[T]) FromInt(k int64) []T {
	cs := q.Zero()
	cs[len(cs)-1] = q.base.FromInt(k)
	return cs
}

// Add returns a + b.
func (q Quotient[T]) Add(a, b []T) []T {
	q.checkLen(a)
	q.checkLen(b)
	return Add(q.base, a, b)
}

// Neg returns -a.
func (q Quotient[T]) Neg(a []T) []T {
	q.checkLen(a)
	return Neg(q.base, a)
}

// Sub returns a - b.
func (q Quotient[T]) Sub(a, b []T) []T {
	q.checkLen(a)
	q.checkLen(b)
	return Sub(q.base, a, b)
}

// Mul returns a * b mod the modulus.
func (q Quotient[T]) Mul(a, b []T) []T {
	q.checkLen(a)
	q.checkLen(b)
	return ModMul(q.base, q.modulus, a, b)
}

// Equal reports coefficient-wise equality.
func (q Quotient[T]) Equal(a, b []T) bool {
	q.checkLen(a)
	q.checkLen(b)
	for i := range a {
		if !q.base.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
