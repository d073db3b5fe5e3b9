package conv

import (
	"fmt"

	"github.com/finitefield/ntt/ring"
)

// CyclicRing is R[X]/(X^n - 1) over length-n little-endian coefficient
// vectors, with cyclic convolution as multiplication.
type CyclicRing[T any] struct {
	base ring.Algebra[T]
	n    int
}

// NewCyclicRing returns the cyclic convolution ring of length n over r.
func NewCyclicRing[T any](r ring.Algebra[T], n int) (CyclicRing[T], error) {
	if n < 1 {
		return CyclicRing[T]{}, fmt.Errorf("cannot NewCyclicRing: length %d < 1", n)
	}
	return CyclicRing[T]{base: r, n: n}, nil
}

// Base returns the coefficient ring.
func (c CyclicRing[T]) Base() ring.Algebra[T] { return c.base }

// N returns the sequence length.
func (c CyclicRing[T]) N() int { return c.n }

func (c CyclicRing[T]) checkLen(xs []T) {
	if len(xs) != c.n {
		panic(fmt.Errorf("invalid element length: %d != %d", len(xs), c.n))
	}
}

// Zero returns the zero sequence.
func (c CyclicRing[T]) Zero() []T {
	return constant(c.base, c.base.Zero(), c.n)
}

// One returns the unit impulse [1, 0, ..., 0].
func (c CyclicRing[T]) One() []T {
	return c.FromInt(1)
}

// FromInt returns the constant polynomial k, i.e. k at index 0.
func (c CyclicRing[T]) FromInt(k int64) []T {
	cs := c.Zero()
	cs[0] = c.base.FromInt(k)
	return cs
}

// Add returns the coefficient-wise sum.
func (c CyclicRing[T]) Add(a, b []T) []T {
	c.checkLen(a)
	c.checkLen(b)
	return addVec(c.base, a, b)
}

// Neg returns the coefficient-wise negation.
func (c CyclicRing[T]) Neg(a []T) []T {
	c.checkLen(a)
	return negVec(c.base, a)
}

// Sub returns the coefficient-wise difference.
func (c CyclicRing[T]) Sub(a, b []T) []T {
	c.checkLen(a)
	c.checkLen(b)
	return subVec(c.base, a, b)
}

// Mul returns the cyclic convolution of a and b.
func (c CyclicRing[T]) Mul(a, b []T) []T {
	c.checkLen(a)
	c.checkLen(b)
	return Cyclic(c.base, a, b)
}

// Equal reports coefficient-wise equality.
func (c CyclicRing[T]) Equal(a, b []T) bool {
	c.checkLen(a)
	c.checkLen(b)
	return equalVec(c.base, a, b)
}

// NegacyclicRing is R[X]/(X^n + 1) over length-n little-endian coefficient
// vectors, with negacyclic convolution as multiplication.
type NegacyclicRing[T any] struct {
	base ring.Algebra[T]
	n    int
}

// NewNegacyclicRing returns the negacyclic convolution ring of length n
// over r.
func NewNegacyclicRing[T any](r ring.Algebra[T], n int) (NegacyclicRing[T], error) {
	if n < 1 {
		return NegacyclicRing[T]{}, fmt.Errorf("cannot NewNegacyclicRing: length %d < 1", n)
	}
	return NegacyclicRing[T]{base: r, n: n}, nil
}

// Base returns the coefficient ring.
func (c NegacyclicRing[T]) Base() ring.Algebra[T] { return c.base }

// N returns the sequence length.
func (c NegacyclicRing[T]) N() int { return c.n }

func (c NegacyclicRing[T]) checkLen(xs []T) {
	if len(xs) != c.n {
		panic(fmt.Errorf("invalid element length: %d != %d", len(xs), c.n))
	}
}

// Zero returns the zero sequence.
func (c NegacyclicRing[T]) Zero() []T {
	return constant(c.base, c.base.Zero(), c.n)
}

// One returns the unit impulse [1, 0, ..., 0].
func (c NegacyclicRing[T]) One() []T {
	return c.FromInt(1)
}

// FromInt returns the constant polynomial k, i.e. k at index 0.
func (c NegacyclicRing[T]) FromInt(k int64) []T {
	cs := c.Zero()
	cs[0] = c.base.FromInt(k)
	return cs
}

// Add returns the coefficient-wise sum.
func (c NegacyclicRing[T]) Add(a, b []T) []T {
	c.checkLen(a)
	c.checkLen(b)
	return addVec(c.base, a, b)
}

// Neg returns the coefficient-wise negation.
func (c NegacyclicRing[T]) Neg(a []T) []T {
	c.checkLen(a)
	return negVec(c.base, a)
}

// Sub returns the coefficient-wise difference.
func (c NegacyclicRing[T]) Sub(a, b []T) []T {
	c.checkLen(a)
	c.checkLen(b)
	return subVec(c.base, a, b)
}

// Mul returns the negacyclic convolution of a and b.
func (c NegacyclicRing[T]) Mul(a, b []T) []T {
	c.checkLen(a)
	c.checkLen(b)
	return Negacyclic(c.base, a, b)
}

// Equal reports coefficient-wise equality.
func (c NegacyclicRing[T]) Equal(a, b []T) bool {
	c.checkLen(a)
	c.checkLen(b)
	return equalVec(c.base, a, b)
}

func constant[T any](r ring.Algebra[T], v T, n int) []T {
	vs := make([]T, n)
	for i := range vs {
		vs[i] = v
	}
	return vs
}

func addVec[T any](r ring.Algebra[T], a, b []T) []T {
	cs := make([]T, len(a))
	for i := range cs {
		cs[i] = r.Add(a[i], b[i])
	}
	return cs
}

func subVec[T any](r ring.Algebra[T], a, b []T) []T {
	cs := make([]T, len(a))
	for i := range cs {
		cs[i] = r.Sub(a[i], b[i])
	}
	return cs
}

func negVec[T any](r ring.Algebra[T], a []T) []T {
	cs := make([]T, len(a))
	for i := range cs {
		cs[i] = r.Neg(a[i])
	}
	return cs
}

func equalVec[T any](r ring.Algebra[T], a, b []T) bool {
	for i := range a {
		if !r.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
