package transform

import (
	"github.com/finitefield/ntt/ring"
)

// Negacyclic returns the transform evaluating its input at the n odd
// powers w, w^3, ..., w^(2n-1) of an order-2n root w, the evaluation
// points under which polynomial products reduce mod X^n + 1. The input is
// scaled coefficient-wise by powers of w, then handed to fn at w^2.
func Negacyclic[T any](r ring.Algebra[T], fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		ws := ring.Powers(r, w, len(xs))
		scaled := make([]T, len(xs))
		for i := range scaled {
			scaled[i] = r.Mul(ws[i], xs[i])
		}
		return fn(r.Mul(w, w), scaled)
	}
}

// NegacyclicInv undoes Negacyclic up to the factor n: fn runs at winv^2
// and the output is scaled coefficient-wise by powers of winv. With fn
// and the inner transform of Negacyclic forming a plain forward/backward
// pair at reciprocal roots, the composition is n times the identity.
func NegacyclicInv[T any](r ring.Algebra[T], fn Transform[T]) Transform[T] {
	return func(winv T, xs []T) []T {
		ys := fn(r.Mul(winv, winv), xs)
		ws := ring.Powers(r, winv, len(ys))
		out := make([]T, len(ys))
		for i := range out {
			out[i] = r.Mul(ws[i], ys[i])
		}
		return out
	}
}
