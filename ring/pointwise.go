package ring

import (
	"fmt"
)

// Pointwise is the product ring R^n: fixed-length vectors over a base ring
// with componentwise operations. It is the frequency-domain target ring
// that a transform of size n is a homomorphism into.
type Pointwise[T any] struct {
	base Algebra[T]
	n    int
}

// NewPointwise returns the componentwise ring of length-n vectors over r.
func NewPointwise[T any](r Algebra[T], n int) (Pointwise[T], error) {
	if n < 1 {
		return Pointwise[T]{}, fmt.Errorf("cannot NewPointwise: length %d < 1", n)
	}
	return Pointwise[T]{base: r, n: n}, nil
}

// Base returns the underlying scalar ring.
func (p Pointwise[T]) Base() Algebra[T] {
	return p.base
}

// N returns the vector length.
func (p Pointwise[T]) N() int {
	return p.n
}

func (p Pointwise[T]) checkLen(xs []T) {
	if len(xs) != p.n {
		panic(fmt.Errorf("invalid vector length: %d != %d", len(xs), p.n))
	}
}

// Zero returns the all-zero vector.
func (p Pointwise[T]) Zero() []T {
	zs := make([]T, p.n)
	for i := range zs {
		zs[i] = p.base.Zero()
	}
	return zs
}

// One returns the all-one vector, the multiplicative identity of the
// componentwise product.
func (p Pointwise[T]) One() []T {
	os := make([]T, p.n)
	for i := range os {
		os[i] = p.base.One()
	}
	return os
}

// FromInt returns the vector with every component set to the ring image of k.
func (p Pointwise[T]) FromInt(k int64) []T {
	v := p.base.FromInt(k)
	vs := make([]T, p.n)
	for i := range vs {
		vs[i] = v
	}
	return vs
}

// Add returns the componentwise sum.
func (p Pointwise[T]) Add(a, b []T) []T {
	p.checkLen(a)
	p.checkLen(b)
	cs := make([]T, p.n)
	for i := range cs {
		cs[i] = p.base.Add(a[i], b[i])
	}
	return cs
}

// Neg returns the componentwise negation.
func (p Pointwise[T]) Neg(a []T) []T {
	p.checkLen(a)
	cs := make([]T, p.n)
	for i := range cs {
		cs[i] = p.base.Neg(a[i])
	}
	return cs
}

// Sub returns the componentwise difference.
func (p Pointwise[T]) Sub(a, b []T) []T {
	p.checkLen(a)
	p.checkLen(b)
	cs := make([]T, p.n)
	for i := range cs {
		cs[i] = p.base.Sub(a[i], b[i])
	}
	return cs
}

// Mul returns the componentwise (Hadamard) product.
func (p Pointwise[T]) Mul(a, b []T) []T {
	p.checkLen(a)
	p.checkLen(b)
	cs := make([]T, p.n)
	for i := range cs {
		cs[i] = p.base.Mul(a[i], b[i])
	}
	return cs
}

// Equal reports componentwise equality.
func (p Pointwise[T]) Equal(a, b []T) bool {
	p.checkLen(a)
	p.checkLen(b)
	for i := range a {
		if !p.base.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
