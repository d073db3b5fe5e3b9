package transform

import (
	"fmt"

	"github.com/finitefield/ntt/conv"
	"github.com/finitefield/ntt/ring"
)

// Tables for p = 7 with generator g = 3.
var (
	rader7Fwd = []int{1, 3, 2, 6, 4, 5} // 3^s mod 7
	rader7Inv = []int{1, 5, 4, 6, 2, 3} // 3^(-s) mod 7
	rader7Neg = []int{6, 2, 3, 1, 5, 4} // -3^(-s) mod 7
)

// Rader7 returns the length-7 prime transform computed through one
// length-6 cyclic convolution: the nonzero input indices are walked along
// powers of the generator 3 of the multiplicative group mod 7, convolved
// against the root powers walked in the opposite direction, and scattered
// back the same way.
func Rader7[T any](r ring.Algebra[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("Rader7", 7, xs)
		return raderCore(r, w, xs, rader7Fwd, rader7Inv, rader7Inv)
	}
}

// Rader7Inv returns the length-7 transform at the reciprocal of the
// supplied root, without requiring an inverse in the ring: negating the
// kernel exponents mod 7 turns w^(g^-s) into w^(-g^-s). Composed with
// Rader7 at the same root it yields 7 times the identity.
func Rader7Inv[T any](r ring.Algebra[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("Rader7Inv", 7, xs)
		return raderCore(r, w, xs, rader7Fwd, rader7Neg, rader7Inv)
	}
}

// Rader generalizes Rader7 to any odd prime p, deriving the index tables
// from the smallest generator mod p at construction time.
func Rader[T any](r ring.Algebra[T], p int) Transform[T] {
	fwd, inv := raderTables(p)
	return func(w T, xs []T) []T {
		checkLen("Rader", p, xs)
		return raderCore(r, w, xs, fwd, inv, inv)
	}
}

// raderCore gathers xs[1:] along fwd, convolves against the kernel
// w^ker[t], and scatters xs[0] plus the convolution along sct. Output 0
// is the plain sum of all inputs.
func raderCore[T any](r ring.Algebra[T], w T, xs []T, fwd, ker, sct []int) []T {
	p := len(xs)
	a := make([]T, p-1)
	b := make([]T, p-1)
	for s := 0; s < p-1; s++ {
		a[s] = xs[fwd[s]]
		b[s] = ring.Pow(r, w, uint64(ker[s]))
	}
	c := conv.Cyclic(r, a, b)
	out := make([]T, p)
	total := xs[0]
	for _, x := range xs[1:] {
		total = r.Add(total, x)
	}
	out[0] = total
	for t := 0; t < p-1; t++ {
		out[sct[t]] = r.Add(xs[0], c[t])
	}
	return out
}

func raderTables(p int) (fwd, inv []int) {
	if p < 3 || !ring.IsPrime(uint64(p)) {
		panic(fmt.Errorf("cannot Rader: %d is not an odd prime", p))
	}
	g, _, err := ring.PrimitiveRoot(uint64(p), nil)
	if err != nil {
		panic(err)
	}
	fwd = make([]int, p-1)
	inv = make([]int, p-1)
	e := 1
	for s := 0; s < p-1; s++ {
		fwd[s] = e
		inv[(p-1-s)%(p-1)] = e
		e = e * int(g) % p
	}
	return
}
