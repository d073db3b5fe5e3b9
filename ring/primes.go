package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW test, which is deterministic for inputs
// below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// NextNTTPrime returns the next prime p > q with p = 1 mod nthRoot.
// The input q must itself be 1 mod nthRoot.
func NextNTTPrime(q uint64, nthRoot uint64) (qNext uint64, err error) {

	qNext = q + nthRoot

	for !IsPrime(qNext) {

		qNext += nthRoot

		if bits.Len64(qNext) > MaxModulusBits {
			return 0, fmt.Errorf("cannot NextNTTPrime: exceeds the maximum bit-size of %d bits", MaxModulusBits)
		}
	}

	return qNext, nil
}

// PreviousNTTPrime returns the previous prime p < q with p = 1 mod nthRoot.
// The input q must itself be 1 mod nthRoot.
func PreviousNTTPrime(q uint64, nthRoot uint64) (qPrev uint64, err error) {

	if q < nthRoot {
		return 0, fmt.Errorf("cannot PreviousNTTPrime: input is smaller than nthRoot")
	}

	qPrev = q - nthRoot

	for !IsPrime(qPrev) {

		if qPrev < nthRoot {
			return 0, fmt.Errorf("cannot PreviousNTTPrime: candidate is smaller than nthRoot")
		}

		qPrev -= nthRoot
	}

	return qPrev, nil
}

// GenerateNTTPrimes returns n distinct primes p = 1 mod nthRoot close to
// 2^logQ, alternating above and below to keep the deviation from the base
// power of two as small as possible. For logQ = MaxModulusBits only the
// downward direction is scanned, so that the result stays within the
// supported modulus bit-size.
func GenerateNTTPrimes(logQ int, nthRoot uint64, n int) (primes []uint64, err error) {

	if logQ < 2 || logQ > MaxModulusBits {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: logQ must be in [2, %d]", MaxModulusBits)
	}

	if nthRoot == 0 {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: nthRoot = 0")
	}

	// Candidates start at 2^logQ + 1, which is 1 mod nthRoot for the
	// power-of-two nthRoot values used with NTT moduli.
	pow2 := uint64(1) << logQ
	nextPrime := pow2 + 1
	previousPrime := pow2 + 1

	scanUp := logQ < MaxModulusBits
	scanDown := true

	primes = make([]uint64, 0, n)

	for {

		if !(scanUp || scanDown) {
			return nil, fmt.Errorf("cannot GenerateNTTPrimes: not enough primes near 2^%d for nthRoot = %d", logQ, nthRoot)
		}

		if scanUp {

			nextPrime += nthRoot

			// Give up once candidates drift a full power of two away.
			if nextPrime > 2*pow2 {
				scanUp = false
			} else if IsPrime(nextPrime) {

				primes = append(primes, nextPrime)

				if len(primes) == n {
					return primes, nil
				}
			}
		}

		if scanDown {

			if previousPrime < nthRoot || previousPrime-nthRoot < pow2>>1 {
				scanDown = false
			} else {

				previousPrime -= nthRoot

				if IsPrime(previousPrime) {

					primes = append(primes, previousPrime)

					if len(primes) == n {
						return primes, nil
					}
				}
			}
		}
	}
}
