package transform

import (
	"fmt"

	"github.com/finitefield/ntt/ring"
)

// Radix2DIT lifts an inner transform to twice its length by decimation in
// time: the even and odd subsequences are transformed at w^2, the odd
// outputs are twiddled by successive powers of w, and the halves are
// recombined with 2-point butterflies. w must be a primitive root of order
// len(xs), so that w^n = -1 for n = len(xs)/2.
func Radix2DIT[T any](r ring.Algebra[T], fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkEven("Radix2DIT", xs)
		n := len(xs) / 2
		evens := make([]T, n)
		odds := make([]T, n)
		for i := 0; i < n; i++ {
			evens[i] = xs[2*i]
			odds[i] = xs[2*i+1]
		}
		w2 := r.Mul(w, w)
		es := fn(w2, evens)
		os := fn(w2, odds)
		out := make([]T, 2*n)
		wi := r.One()
		for i := 0; i < n; i++ {
			out[i], out[i+n] = FFT2(r, es[i], r.Mul(wi, os[i]))
			wi = r.Mul(wi, w)
		}
		return out
	}
}

// Radix2DIF lifts an inner transform to twice its length by decimation in
// frequency: butterflies across the two halves of the input come first,
// the lower branch is twiddled, both branches are transformed at w^2, and
// their outputs interleave as the even and odd result indices.
func Radix2DIF[T any](r ring.Algebra[T], fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkEven("Radix2DIF", xs)
		n := len(xs) / 2
		ys0 := make([]T, n)
		ys1 := make([]T, n)
		wi := r.One()
		for i := 0; i < n; i++ {
			ys0[i] = r.Add(xs[i], xs[i+n])
			ys1[i] = r.Mul(wi, r.Sub(xs[i], xs[i+n]))
			wi = r.Mul(wi, w)
		}
		w2 := r.Mul(w, w)
		es := fn(w2, ys0)
		os := fn(w2, ys1)
		out := make([]T, 2*n)
		for i := 0; i < n; i++ {
			out[2*i] = es[i]
			out[2*i+1] = os[i]
		}
		return out
	}
}

func checkEven[T any](op string, xs []T) {
	if len(xs)%2 != 0 {
		panic(fmt.Errorf("cannot %s: sequence length %d is odd", op, len(xs)))
	}
}
