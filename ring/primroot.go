package ring

import (
	"fmt"
	"math/big"

	"github.com/finitefield/ntt/utils/factorization"
)

// PrimitiveRoot returns the smallest generator of the multiplicative group
// modulo the prime q. The unique prime factors of q-1 can be supplied to
// skip the factorization; when nil they are computed and returned alongside
// the root. The primality of q itself is a precondition, not checked here.
func PrimitiveRoot(q uint64, factors []uint64) (uint64, []uint64, error) {

	if factors != nil {
		if err := CheckFactors(q-1, factors); err != nil {
			return 0, factors, err
		}
	} else {

		factorsBig := factorization.GetFactors(new(big.Int).SetUint64(q - 1)) // might be slow

		factors = make([]uint64, len(factorsBig))
		for i := range factors {
			factors[i] = factorsBig[i].Uint64()
		}
	}

	notFound := true

	var g uint64 = 1

	for notFound {
		g++
		notFound = false
		for _, factor := range factors {
			// g is not a generator iff g^((q-1)/p) = 1 for some prime p | q-1.
			if ModExp(g, (q-1)/factor, q) == 1 {
				notFound = true
				break
			}
		}
	}

	return g, factors, nil
}

// CheckFactors checks that the given list contains every unique prime
// factor of m.
func CheckFactors(m uint64, factors []uint64) (err error) {

	for _, factor := range factors {

		if !IsPrime(factor) {
			return fmt.Errorf("invalid factor list: %d is composite", factor)
		}

		for m%factor == 0 {
			m /= factor
		}
	}

	if m != 1 {
		return fmt.Errorf("invalid factor list: incomplete")
	}

	return
}

// CheckPrimitiveRoot checks that g generates the multiplicative group
// modulo the prime q, given the unique prime factors of q-1.
func CheckPrimitiveRoot(g, q uint64, factors []uint64) (err error) {

	if err = CheckFactors(q-1, factors); err != nil {
		return
	}

	for _, factor := range factors {
		if ModExp(g, (q-1)/factor, q) == 1 {
			return fmt.Errorf("invalid primitive root %d mod %d", g, q)
		}
	}

	return
}

// NthRoot returns a primitive n-th root of unity modulo q, derived from a
// generator of the multiplicative group. It requires q prime and n | q-1.
func (r Zq) NthRoot(n uint64) (uint64, error) {

	q := r.Modulus

	if !IsPrime(q) {
		return 0, fmt.Errorf("cannot NthRoot: modulus %d is not prime", q)
	}

	if n == 0 || (q-1)%n != 0 {
		return 0, fmt.Errorf("cannot NthRoot: order %d does not divide %d", n, q-1)
	}

	g, _, err := PrimitiveRoot(q, nil)
	if err != nil {
		return 0, err
	}

	w := ModExp(g, (q-1)/n, q)

	// The order of w is exactly n by construction; anything else means a
	// precondition above was violated in a way the checks missed.
	if ModExp(w, n, q) != 1 {
		return 0, fmt.Errorf("cannot NthRoot: w^n != 1 mod %d, something went wrong", q)
	}
	for _, factorBig := range factorization.GetFactors(new(big.Int).SetUint64(n)) {
		if ModExp(w, n/factorBig.Uint64(), q) == 1 {
			return 0, fmt.Errorf("cannot NthRoot: root order divides %d/%d, something went wrong", n, factorBig.Uint64())
		}
	}

	return w, nil
}
