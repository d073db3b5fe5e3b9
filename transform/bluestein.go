package transform

import (
	"github.com/finitefield/ntt/poly"
	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/utils"
)

// Bluestein computes the transform of xs at the root u^2 through a single
// linear convolution, using the identity 2jk = j^2 + k^2 - (k-j)^2. The
// only requirement is u*v = 1: the input is chirped by u^(j^2), convolved
// against the symmetric kernel v^(j^2), and the result chirped again.
// Taking u to be a primitive 2n-th root for n = len(xs) therefore reaches
// transforms of arbitrary length, prime included, at the cost of one
// length 2n-1 convolution.
func Bluestein[T any](r ring.Algebra[T], u, v T, xs []T) []T {
	n := len(xs)
	if n == 0 {
		return []T{}
	}
	us := chirp(r, u, n)
	vs := chirp(r, v, n)
	as := make([]T, n)
	for i := range as {
		as[i] = r.Mul(xs[i], us[i])
	}
	bs := append(utils.Reverse(vs[1:]), vs...)
	cs := poly.Mul(r, as, bs)
	out := make([]T, n)
	for k := range out {
		out[k] = r.Mul(us[k], cs[k+n-1])
	}
	return out
}

// chirp returns the quadratic powers u^0, u^1, u^4, ..., u^((n-1)^2),
// built incrementally from the odd-step recurrence u^(i^2) =
// u^((i-1)^2) * u^(2i-1).
func chirp[T any](r ring.Algebra[T], u T, n int) []T {
	out := make([]T, n)
	u2 := r.Mul(u, u)
	step := u
	acc := r.One()
	for i := 0; i < n; i++ {
		out[i] = acc
		acc = r.Mul(acc, step)
		step = r.Mul(step, u2)
	}
	return out
}
