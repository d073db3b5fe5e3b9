// Package factorization implements factorization of integers, combining
// trial division by small primes with Pollard's rho method and Lenstra's
// elliptic-curve method for the remaining composite part.
package factorization

import (
	"math/big"
	"sort"
)

// smallPrimeBound caps the trial-division stage and the smoothness bound of
// the ECM stage-1 scalar.
const smallPrimeBound = 1000

var smallPrimes = sievePrimes(smallPrimeBound)

func sievePrimes(bound int) (primes []uint64) {
	composite := make([]bool, bound+1)
	for p := 2; p <= bound; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, uint64(p))
		for k := p * p; k <= bound; k += p {
			composite[k] = true
		}
	}
	return
}

// IsPrime reports whether i is prime. The test is deterministic below 2^64
// and Baillie-PSW above.
func IsPrime(i *big.Int) bool {
	return i.ProbablyPrime(0)
}

// GetFactors returns the list of unique prime factors of m, in increasing
// order. Small factors are found by trial division, the remaining composite
// part is split recursively with Pollard's rho.
func GetFactors(m *big.Int) (factors []*big.Int) {

	one := new(big.Int).SetUint64(1)

	n := new(big.Int).Set(m)

	if n.CmpAbs(one) <= 0 {
		return
	}

	tmp := new(big.Int)
	for _, p := range smallPrimes {
		bigP := new(big.Int).SetUint64(p)
		if tmp.Mod(n, bigP).Sign() == 0 {
			factors = append(factors, bigP)
			for tmp.Mod(n, bigP).Sign() == 0 {
				n.Quo(n, bigP)
			}
		}
	}

	stack := []*big.Int{}
	if n.Cmp(one) != 0 {
		stack = append(stack, n)
	}

	for len(stack) > 0 {

		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if IsPrime(c) {
			factors = appendUnique(factors, c)
			continue
		}

		d := GetFactorPollardRho(c)
		stack = append(stack, d, new(big.Int).Quo(c, d))
	}

	sort.Slice(factors, func(i, j int) bool { return factors[i].Cmp(factors[j]) < 0 })

	return
}

func appendUnique(factors []*big.Int, f *big.Int) []*big.Int {
	for _, g := range factors {
		if g.Cmp(f) == 0 {
			return factors
		}
	}
	return append(factors, f)
}

// GetFactorPollardRho returns a non-trivial factor of the composite m using
// Pollard's rho method with Floyd cycle detection, retrying with a new
// polynomial offset whenever the walk degenerates.
func GetFactorPollardRho(m *big.Int) *big.Int {

	if m.Bit(0) == 0 {
		return new(big.Int).SetUint64(2)
	}

	one := new(big.Int).SetUint64(1)
	diff := new(big.Int)

	for c := int64(1); ; c++ {

		offset := big.NewInt(c)
		step := func(v *big.Int) {
			v.Mul(v, v)
			v.Add(v, offset)
			v.Mod(v, m)
		}

		x := new(big.Int).SetUint64(2)
		y := new(big.Int).SetUint64(2)
		d := new(big.Int).SetUint64(1)

		for d.Cmp(one) == 0 {

			step(x)
			step(y)
			step(y)

			diff.Sub(x, y)
			if diff.Sign() == 0 {
				// Degenerate cycle, try the next offset.
				break
			}

			d.GCD(nil, nil, diff.Abs(diff), m)
		}

		if d.Cmp(one) != 0 && d.Cmp(m) != 0 {
			return d
		}
	}
}

// GetFactorECM returns a non-trivial factor of the composite m using
// Lenstra's elliptic-curve method: random curves are walked through a
// B1-powersmooth scalar multiple of a random point until a slope
// denominator shares a divisor with m.
func GetFactorECM(m *big.Int) *big.Int {

	for {

		w, p := NewRandomWeierstrassCurve(m)

		var err error

		for _, q := range smallPrimes {

			// Largest power of q below the smoothness bound.
			k := q
			for k*q <= smallPrimeBound {
				k *= q
			}

			if p, err = w.ScalarMul(p, k); err != nil {
				if s, ok := err.(SingularSlopeError); ok && s.GCD.Cmp(m) != 0 {
					return s.GCD
				}
				break
			}

			if p.IsInfinity() {
				break
			}
		}
	}
}
