// Package transform implements the Number Theoretic Transform over
// abstract finite commutative rings: a naive quadratic oracle, closed-form
// butterflies for the small fixed sizes, radix-2 and general composite
// Cooley-Tukey composers, the prime-factor algorithm with its rectangular
// CRT variant, Bluestein's chirp transform and Rader's prime-length
// algorithm, together with the negacyclic pair.
//
// Sequences are little-endian: index i holds the coefficient of X^i. Every
// transform is pure and length-preserving. Composing functions take their
// inner transforms as explicit parameters, so a caller assembles exactly
// the recursion it wants. Roots of unity are trusted: the engine never
// verifies that a supplied root has the required order, and a wrong root
// yields a well-typed but wrong transform.
package transform

import (
	"fmt"

	"github.com/finitefield/ntt/poly"
	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/utils"
)

// Transform is a pure transform of a sequence by a root of unity: it maps
// a length-n input to the length-n output, for whatever sizes n the
// concrete algorithm supports.
type Transform[T any] func(w T, xs []T) []T

// Naive returns the reference transform evaluating the defining sum
// out[k] = sum_j xs[j] w^(jk) as a Horner evaluation of the reversed
// sequence at each power of w. Quadratic, and the oracle every fast
// algorithm is measured against.
func Naive[T any](r ring.Algebra[T]) Transform[T] {
	return func(w T, xs []T) []T {
		p := utils.Reverse(xs)
		out := make([]T, len(xs))
		wk := r.One()
		for k := range out {
			out[k] = poly.Eval(r, p, wk)
			wk = r.Mul(wk, w)
		}
		return out
	}
}

// Inverse returns the unnormalized inverse transform scaled by a supplied
// 1/n element: the caller passes the reciprocal root as w. The contract
// provides no division, so rings without an inverse of n cannot use it.
func Inverse[T any](r ring.Algebra[T], ninv T) Transform[T] {
	naive := Naive(r)
	return func(winv T, xs []T) []T {
		out := naive(winv, xs)
		for i := range out {
			out[i] = r.Mul(ninv, out[i])
		}
		return out
	}
}

func checkLen[T any](op string, want int, xs []T) {
	if len(xs) != want {
		panic(fmt.Errorf("cannot %s: sequence length %d != %d", op, len(xs), want))
	}
}
