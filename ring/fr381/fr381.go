// Package fr381 adapts the scalar field of the BLS12-381 curve to the ring
// contract, giving the transforms a field whose internal representation
// (Montgomery form) they cannot observe.
package fr381

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/utils/sampling"
)

// maxOrderRoot is the 2-adicity of the scalar field: the multiplicative
// group contains a subgroup of order 2^32.
const maxOrderRoot uint64 = 32

// twoAdicGenerator generates the largest 2-adic subgroup of the field.
const twoAdicGenerator = "10238227357739495823651030575849232062558860180284477541189508159991286009131"

// Ring is the scalar field of BLS12-381 as a ring.Algebra[fr.Element].
// The zero value is ready to use.
type Ring struct{}

var _ ring.Algebra[fr.Element] = Ring{}

// Zero returns the additive identity.
func (Ring) Zero() fr.Element {
	var z fr.Element
	return z
}

// One returns the multiplicative identity.
func (Ring) One() fr.Element {
	return fr.One()
}

// FromInt returns the field image of k.
func (Ring) FromInt(k int64) fr.Element {
	var z fr.Element
	z.SetInt64(k)
	return z
}

// Add returns a + b.
func (Ring) Add(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Add(&a, &b)
	return c
}

// Neg returns -a.
func (Ring) Neg(a fr.Element) fr.Element {
	var c fr.Element
	c.Neg(&a)
	return c
}

// Sub returns a - b.
func (Ring) Sub(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Sub(&a, &b)
	return c
}

// Mul returns a * b.
func (Ring) Mul(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Mul(&a, &b)
	return c
}

// Equal reports whether a == b.
func (Ring) Equal(a, b fr.Element) bool {
	return a.Equal(&b)
}

// Inv returns a^-1. It returns an error if a is zero.
func (Ring) Inv(a fr.Element) (fr.Element, error) {
	if a.IsZero() {
		return fr.Element{}, fmt.Errorf("cannot Inv: zero is not invertible")
	}
	var c fr.Element
	c.Inverse(&a)
	return c, nil
}

// NthRoot returns a primitive n-th root of unity, obtained by powering the
// generator of the largest 2-adic subgroup. n must be a power of two not
// exceeding 2^32.
func (Ring) NthRoot(n uint64) (fr.Element, error) {

	if n == 0 || bits.OnesCount64(n) != 1 {
		return fr.Element{}, fmt.Errorf("cannot NthRoot: order %d is not a power of two", n)
	}

	logn := uint64(bits.TrailingZeros64(n))
	if logn > maxOrderRoot {
		return fr.Element{}, fmt.Errorf("cannot NthRoot: order 2^%d exceeds the 2-adicity 2^%d of the field", logn, maxOrderRoot)
	}

	var g fr.Element
	if _, err := g.SetString(twoAdicGenerator); err != nil {
		return fr.Element{}, fmt.Errorf("cannot NthRoot: %w", err)
	}

	var w fr.Element
	w.Exp(g, new(big.Int).SetUint64(uint64(1)<<(maxOrderRoot-logn)))

	return w, nil
}

// RandElement samples a field element from prng. The 48-byte oversampling
// keeps the bias of the modular reduction negligible.
func (Ring) RandElement(prng sampling.PRNG) fr.Element {
	buf := make([]byte, 48)
	if _, err := prng.Read(buf); err != nil {
		panic(err)
	}
	var c fr.Element
	c.SetBytes(buf)
	return c
}

// RandVector samples n field elements from prng.
func (r Ring) RandVector(prng sampling.PRNG, n int) []fr.Element {
	vs := make([]fr.Element, n)
	for i := range vs {
		vs[i] = r.RandElement(prng)
	}
	return vs
}
