package ring

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/finitefield/ntt/utils/factorization"
	"github.com/finitefield/ntt/utils/sampling"
)

// GF2k is the binary extension field GF(2^k), k <= 63, with elements packed
// into uint64 values: bit i holds the coefficient of X^i. Multiplication is
// carry-less, reduced by a caller-supplied irreducible polynomial of degree
// k whose degree-k bit is set. Irreducibility of the modulus is a
// precondition, not checked here.
//
// The field has characteristic 2: Neg is the identity and Sub equals Add,
// so cyclic and negacyclic convolutions coincide over it.
type GF2k struct {
	K    int
	Poly uint64
}

// NewGF2k returns GF(2^k) reduced by the degree-k polynomial poly.
func NewGF2k(k int, poly uint64) (GF2k, error) {
	if k < 1 || k > 63 {
		return GF2k{}, fmt.Errorf("invalid extension degree: k = %d not in [1, 63]", k)
	}
	if bits.Len64(poly) != k+1 {
		return GF2k{}, fmt.Errorf("invalid modulus: degree %d != %d", bits.Len64(poly)-1, k)
	}
	if poly&1 == 0 {
		return GF2k{}, fmt.Errorf("invalid modulus: zero constant term")
	}
	return GF2k{K: k, Poly: poly}, nil
}

// Zero returns 0.
func (r GF2k) Zero() uint64 {
	return 0
}

// One returns 1.
func (r GF2k) One() uint64 {
	return 1
}

// FromInt returns the image of k, which in characteristic 2 is its parity.
func (r GF2k) FromInt(k int64) uint64 {
	return uint64(k) & 1
}

// Add returns a + b, the coefficient-wise XOR.
func (r GF2k) Add(a, b uint64) uint64 {
	return a ^ b
}

// Neg returns a: every element is its own additive inverse.
func (r GF2k) Neg(a uint64) uint64 {
	return a
}

// Sub returns a - b, which equals a + b.
func (r GF2k) Sub(a, b uint64) uint64 {
	return a ^ b
}

// Mul returns a * b, by carry-less shift-and-xor with interleaved modular
// reduction.
func (r GF2k) Mul(a, b uint64) uint64 {
	var acc uint64
	top := uint64(1) << r.K
	for b != 0 {
		if b&1 == 1 {
			acc ^= a
		}
		b >>= 1
		a <<= 1
		if a&top != 0 {
			a ^= r.Poly
		}
	}
	return acc
}

// Equal reports whether a == b.
func (r GF2k) Equal(a, b uint64) bool {
	return a == b
}

// Inv returns a^-1 = a^(2^k - 2). It returns an error if a is zero.
func (r GF2k) Inv(a uint64) (uint64, error) {
	if a == 0 {
		return 0, fmt.Errorf("cannot Inv: zero is not invertible")
	}
	order := uint64(1)<<r.K - 1
	return Pow[uint64](r, a, order-1), nil
}

// NthRoot returns a primitive n-th root of unity, derived from a generator
// of the multiplicative group. It requires n | 2^k - 1.
func (r GF2k) NthRoot(n uint64) (uint64, error) {

	order := uint64(1)<<r.K - 1

	if n == 0 || order%n != 0 {
		return 0, fmt.Errorf("cannot NthRoot: order %d does not divide 2^%d - 1 = %d", n, r.K, order)
	}

	factors := factorization.GetFactors(new(big.Int).SetUint64(order))

	// Smallest generator of the multiplicative group.
	var g uint64 = 1
	for found := false; !found; {
		g++
		found = true
		for _, factor := range factors {
			if Pow[uint64](r, g, order/factor.Uint64()) == 1 {
				found = false
				break
			}
		}
	}

	w := Pow[uint64](r, g, order/n)

	for _, factor := range factorization.GetFactors(new(big.Int).SetUint64(n)) {
		if Pow[uint64](r, w, n/factor.Uint64()) == 1 {
			return 0, fmt.Errorf("cannot NthRoot: root order divides %d/%d, something went wrong", n, factor.Uint64())
		}
	}

	return w, nil
}

// RandElement samples a uniform field element from prng. Every k-bit value
// is an element, so no rejection is needed.
func (r GF2k) RandElement(prng sampling.PRNG) uint64 {
	buf := make([]byte, 8)
	if _, err := prng.Read(buf); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf) & (uint64(1)<<r.K - 1)
}

// RandVector samples n uniform field elements from prng.
func (r GF2k) RandVector(prng sampling.PRNG, n int) []uint64 {
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = r.RandElement(prng)
	}
	return vs
}
