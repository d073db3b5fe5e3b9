package ring

import (
	"fmt"
	"math/big"

	"github.com/finitefield/ntt/utils/factorization"
	"github.com/finitefield/ntt/utils/sampling"
)

// ZBig is the ring of integers modulo an arbitrary modulus q >= 2, with
// *big.Int elements in [0, q-1]. It lifts the modulus bit-size cap of Zq at
// the cost of allocating arithmetic. Elements are treated as immutable:
// operations return fresh values and never mutate their operands.
type ZBig struct {
	Modulus *big.Int
}

// NewZBig returns the ring of integers modulo q.
func NewZBig(q *big.Int) (ZBig, error) {
	if q == nil || q.Cmp(big.NewInt(2)) < 0 {
		return ZBig{}, fmt.Errorf("invalid modulus: q must be >= 2")
	}
	return ZBig{Modulus: new(big.Int).Set(q)}, nil
}

// Zero returns 0.
func (r ZBig) Zero() *big.Int {
	return new(big.Int)
}

// One returns 1.
func (r ZBig) One() *big.Int {
	return big.NewInt(1)
}

// FromInt returns k mod q, mapping negative k to its positive residue.
func (r ZBig) FromInt(k int64) *big.Int {
	return new(big.Int).Mod(big.NewInt(k), r.Modulus)
}

// Add returns a + b mod q.
func (r ZBig) Add(a, b *big.Int) *big.Int {
	c := new(big.Int).Add(a, b)
	return c.Mod(c, r.Modulus)
}

// Neg returns -a mod q.
func (r ZBig) Neg(a *big.Int) *big.Int {
	c := new(big.Int).Neg(a)
	return c.Mod(c, r.Modulus)
}

// Sub returns a - b mod q.
func (r ZBig) Sub(a, b *big.Int) *big.Int {
	c := new(big.Int).Sub(a, b)
	return c.Mod(c, r.Modulus)
}

// Mul returns a * b mod q.
func (r ZBig) Mul(a, b *big.Int) *big.Int {
	c := new(big.Int).Mul(a, b)
	return c.Mod(c, r.Modulus)
}

// Equal reports whether a and b are the same residue.
func (r ZBig) Equal(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}

// Inv returns a^-1 mod q. It returns an error if a is not invertible.
func (r ZBig) Inv(a *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, r.Modulus)
	if inv == nil {
		return nil, fmt.Errorf("cannot Inv: %s is not invertible mod %s", a.String(), r.Modulus.String())
	}
	return inv, nil
}

// NthRoot returns a primitive n-th root of unity modulo q, derived from a
// generator of the multiplicative group. It requires q prime and n | q-1,
// and factors q-1, which might be slow for moduli with large prime factors
// in q-1.
func (r ZBig) NthRoot(n uint64) (*big.Int, error) {

	q := r.Modulus

	if !factorization.IsPrime(q) {
		return nil, fmt.Errorf("cannot NthRoot: modulus %s is not prime", q.String())
	}

	qMinusOne := new(big.Int).Sub(q, big.NewInt(1))

	bigN := new(big.Int).SetUint64(n)
	cofactor, rem := new(big.Int).QuoRem(qMinusOne, bigN, new(big.Int))
	if n == 0 || rem.Sign() != 0 {
		return nil, fmt.Errorf("cannot NthRoot: order %d does not divide %s", n, qMinusOne.String())
	}

	factors := factorization.GetFactors(qMinusOne)

	// Smallest generator of the multiplicative group.
	g := big.NewInt(1)
	exp := new(big.Int)
	one := big.NewInt(1)
	for found := false; !found; {
		g.Add(g, one)
		found = true
		for _, factor := range factors {
			exp.Quo(qMinusOne, factor)
			if new(big.Int).Exp(g, exp, q).Cmp(one) == 0 {
				found = false
				break
			}
		}
	}

	w := new(big.Int).Exp(g, cofactor, q)

	for _, factor := range factorization.GetFactors(bigN) {
		if new(big.Int).Exp(w, new(big.Int).Quo(bigN, factor), q).Cmp(one) == 0 {
			return nil, fmt.Errorf("cannot NthRoot: root order divides %s/%s, something went wrong", bigN.String(), factor.String())
		}
	}

	return w, nil
}

// RandElement samples a uniform element of the ring from prng by rejection.
func (r ZBig) RandElement(prng sampling.PRNG) *big.Int {

	bitLen := r.Modulus.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xFF >> (8*len(buf) - bitLen))

	c := new(big.Int)
	for {
		if _, err := prng.Read(buf); err != nil {
			panic(err)
		}
		buf[0] &= mask
		if c.SetBytes(buf); c.Cmp(r.Modulus) < 0 {
			return c
		}
	}
}

// RandVector samples n uniform ring elements from prng.
func (r ZBig) RandVector(prng sampling.PRNG, n int) []*big.Int {
	vs := make([]*big.Int, n)
	for i := range vs {
		vs[i] = r.RandElement(prng)
	}
	return vs
}
