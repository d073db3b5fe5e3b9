package transform

import (
	"github.com/finitefield/ntt/ring"
)

// FFT2 is the 2-point butterfly with the root fixed at -1:
// (x0+x1, x0-x1).
func FFT2[T any](r ring.Algebra[T], x0, x1 T) (T, T) {
	return r.Add(x0, x1), r.Sub(x0, x1)
}

// NTT2 is the 2-point butterfly at an arbitrary primitive square root of
// one: (x0+x1, x0+w*x1). With w = -1 it reduces to FFT2.
func NTT2[T any](r ring.Algebra[T], w, x0, x1 T) (T, T) {
	return r.Add(x0, x1), r.Add(x0, r.Mul(w, x1))
}

// NTT3 is the closed-form 3-point transform at a primitive cube root w,
// with a single multiplication by w. It relies on 1 + w + w^2 = 0.
func NTT3[T any](r ring.Algebra[T], w, x0, x1, x2 T) (T, T, T) {
	t := r.Mul(w, r.Sub(x1, x2))
	y0 := r.Add(r.Add(x0, x1), x2)
	y1 := r.Add(r.Sub(x0, x2), t)
	y2 := r.Sub(r.Sub(x0, x1), t)
	return y0, y1, y2
}

// NTT4 is the closed-form 4-point transform at a primitive fourth root w:
// two stages of 2-point butterflies with a single twiddle multiplication.
func NTT4[T any](r ring.Algebra[T], w, x0, x1, x2, x3 T) (T, T, T, T) {
	t0 := r.Add(x0, x2)
	t1 := r.Add(x1, x3)
	t2 := r.Sub(x0, x2)
	t3 := r.Mul(w, r.Sub(x1, x3))
	return r.Add(t0, t1), r.Add(t2, t3), r.Sub(t0, t1), r.Sub(t2, t3)
}

// Butterfly2 wraps NTT2 as a length-2 Transform.
func Butterfly2[T any](r ring.Algebra[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("Butterfly2", 2, xs)
		y0, y1 := NTT2(r, w, xs[0], xs[1])
		return []T{y0, y1}
	}
}

// Butterfly3 wraps NTT3 as a length-3 Transform.
func Butterfly3[T any](r ring.Algebra[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("Butterfly3", 3, xs)
		y0, y1, y2 := NTT3(r, w, xs[0], xs[1], xs[2])
		return []T{y0, y1, y2}
	}
}

// Butterfly4 wraps NTT4 as a length-4 Transform.
func Butterfly4[T any](r ring.Algebra[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("Butterfly4", 4, xs)
		y0, y1, y2, y3 := NTT4(r, w, xs[0], xs[1], xs[2], xs[3])
		return []T{y0, y1, y2, y3}
	}
}
