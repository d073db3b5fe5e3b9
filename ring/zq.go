package ring

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/finitefield/ntt/utils/sampling"
)

// MaxModulusBits is the largest supported bit-size for Zq moduli.
const MaxModulusBits = 61

// Zq is the ring of integers modulo a word-sized q, with multiplication by
// Barrett reduction over a radix of 2^128. Elements are uint64 values in
// [0, q-1].
type Zq struct {
	Modulus      uint64
	BRedConstant [2]uint64
}

// NewZq returns the ring of integers modulo q.
// q must be at least 2 and at most MaxModulusBits bits.
func NewZq(q uint64) (Zq, error) {
	if q < 2 {
		return Zq{}, fmt.Errorf("invalid modulus: q = %d < 2", q)
	}
	if bits.Len64(q) > MaxModulusBits {
		return Zq{}, fmt.Errorf("invalid modulus: q = %d exceeds %d bits", q, MaxModulusBits)
	}
	return Zq{Modulus: q, BRedConstant: GetBRedConstant(q)}, nil
}

// Zero returns 0.
func (r Zq) Zero() uint64 {
	return 0
}

// One returns 1.
func (r Zq) One() uint64 {
	return 1
}

// FromInt returns k mod q, mapping negative k to its positive residue.
func (r Zq) FromInt(k int64) uint64 {
	m := k % int64(r.Modulus)
	if m < 0 {
		m += int64(r.Modulus)
	}
	return uint64(m)
}

// Add returns a + b mod q.
func (r Zq) Add(a, b uint64) uint64 {
	return CRed(a+b, r.Modulus)
}

// Neg returns -a mod q.
func (r Zq) Neg(a uint64) uint64 {
	return CRed(r.Modulus-a, r.Modulus)
}

// Sub returns a - b mod q.
func (r Zq) Sub(a, b uint64) uint64 {
	return CRed(a+r.Modulus-b, r.Modulus)
}

// Mul returns a * b mod q.
func (r Zq) Mul(a, b uint64) uint64 {
	return BRed(a, b, r.Modulus, r.BRedConstant)
}

// Equal reports whether a == b.
func (r Zq) Equal(a, b uint64) bool {
	return a == b
}

// Inv returns a^-1 mod q. It returns an error if a is not invertible.
func (r Zq) Inv(a uint64) (uint64, error) {
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(a), new(big.Int).SetUint64(r.Modulus))
	if inv == nil {
		return 0, fmt.Errorf("cannot Inv: %d is not invertible mod %d", a, r.Modulus)
	}
	return inv.Uint64(), nil
}

// RandElement samples a uniform element of the ring from prng by rejection.
func (r Zq) RandElement(prng sampling.PRNG) uint64 {
	mask := uint64(1<<bits.Len64(r.Modulus-1)) - 1
	buf := make([]byte, 8)
	for {
		if _, err := prng.Read(buf); err != nil {
			panic(err)
		}
		if c := binary.LittleEndian.Uint64(buf) & mask; c < r.Modulus {
			return c
		}
	}
}

// RandVector samples n uniform ring elements from prng.
func (r Zq) RandVector(prng sampling.PRNG, n int) []uint64 {
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = r.RandElement(prng)
	}
	return vs
}

// GetBRedConstant computes floor(2^128 / q), the constant required for
// Barrett reduction.
func GetBRedConstant(q uint64) [2]uint64 {
	bigR := new(big.Int).Lsh(big.NewInt(1), 128)
	bigR.Quo(bigR, new(big.Int).SetUint64(q))
	return [2]uint64{new(big.Int).Rsh(bigR, 64).Uint64(), bigR.Uint64()}
}

// BRed computes x*y mod q with a full 64x64-bit Barrett reduction.
func BRed(x, y, q uint64, bredconstant [2]uint64) (r uint64) {

	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	// (alo*blo)>>64

	lhi, _ = bits.Mul64(alo, bredconstant[1])

	// ((ahi*blo + alo*bhi) + (alo*blo))>>64

	mhi, mlo = bits.Mul64(alo, bredconstant[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, bredconstant[1])

	_, carry = bits.Add64(mlo, s0, 0)

	lhi = mhi + carry

	// (ahi*bhi) + (((ahi*blo + alo*bhi) + (alo*blo))>>64)

	s0 = ahi*bredconstant[0] + s1 + lhi

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}

// BRedAdd reduces a 64-bit integer x by q.
func BRedAdd(x, q uint64, bredconstant [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(x, bredconstant[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// CRed returns a mod q, for a in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// ModExp evaluates x^e mod q with a Barrett-reduced square-and-multiply.
func ModExp(x, e, q uint64) (y uint64) {
	brc := GetBRedConstant(q)
	x = BRedAdd(x, q, brc)
	y = 1 % q
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			y = BRed(y, x, q, brc)
		}
		x = BRed(x, x, q, brc)
	}
	return
}
