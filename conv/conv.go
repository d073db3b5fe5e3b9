// Package conv implements cyclic and negacyclic convolution over an
// abstract coefficient ring, together with the split that reduces a
// double-length cyclic convolution to one cyclic and one negacyclic half.
//
// Sequences in this package are little-endian: index i holds the
// coefficient of X^i. This is the opposite of package poly, whose dense
// polynomials put the highest degree first.
package conv

import (
	"fmt"

	"github.com/finitefield/ntt/ring"
)

// Cyclic returns the convolution of x and y in R[X]/(X^n - 1):
// out[i] is the ring sum of x[j]*y[(i-j) mod n]. The operands must have
// the same non-zero length.
func Cyclic[T any](r ring.Algebra[T], x, y []T) []T {

	n := checkOperands("Cyclic", x, y)

	out := make([]T, n)
	for i := range out {
		out[i] = r.Zero()
	}

	for j := range x {
		for k := range y {
			i := j + k
			if i >= n {
				i -= n
			}
			out[i] = r.Add(out[i], r.Mul(x[j], y[k]))
		}
	}

	return out
}

// Negacyclic returns the convolution of x and y in R[X]/(X^n + 1): the
// terms that wrap past degree n-1 re-enter with their sign flipped. The
// operands must have the same non-zero length.
func Negacyclic[T any](r ring.Algebra[T], x, y []T) []T {

	n := checkOperands("Negacyclic", x, y)

	out := make([]T, n)
	for i := range out {
		out[i] = r.Zero()
	}

	for j := range x {
		for k := range y {
			i := j + k
			p := r.Mul(x[j], y[k])
			if i >= n {
				i -= n
				p = r.Neg(p)
			}
			out[i] = r.Add(out[i], p)
		}
	}

	return out
}

// SplitCyclic computes the cyclic convolution of two length-2n sequences
// scaled by 2, by reduction to one length-n cyclic and one length-n
// negacyclic convolution through the factorization
// X^2n - 1 = (X^n - 1)(X^n + 1): with halves (x0, x1) and (y0, y1),
//
//	z0 = Cyclic(x0+x1, y0+y1)
//	z1 = Negacyclic(x0-x1, y0-y1)
//
// and the result is the concatenation (z0+z1) ++ (z0-z1). The factor of 2
// is not divided out, since 2 need not be invertible in the ring.
func SplitCyclic[T any](r ring.Algebra[T], x, y []T) []T {

	if len(x)&1 != 0 {
		panic(fmt.Errorf("cannot SplitCyclic: length %d is odd", len(x)))
	}
	checkOperands("SplitCyclic", x, y)

	n := len(x) >> 1

	sum := func(a, b []T) []T {
		s := make([]T, n)
		for i := range s {
			s[i] = r.Add(a[i], b[i])
		}
		return s
	}
	diff := func(a, b []T) []T {
		d := make([]T, n)
		for i := range d {
			d[i] = r.Sub(a[i], b[i])
		}
		return d
	}

	z0 := Cyclic(r, sum(x[:n], x[n:]), sum(y[:n], y[n:]))
	z1 := Negacyclic(r, diff(x[:n], x[n:]), diff(y[:n], y[n:]))

	out := make([]T, 2*n)
	for i := 0; i < n; i++ {
		out[i] = r.Add(z0[i], z1[i])
		out[n+i] = r.Sub(z0[i], z1[i])
	}

	return out
}

func checkOperands[T any](op string, x, y []T) int {
	if len(x) == 0 {
		panic(fmt.Errorf("cannot %s: empty operands", op))
	}
	if len(x) != len(y) {
		panic(fmt.Errorf("cannot %s: operand lengths %d != %d", op, len(x), len(y)))
	}
	return len(x)
}
