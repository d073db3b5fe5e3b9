// Package utils implements generic helper functions shared across the
// module.
package utils

import (
	"fmt"
)

// GCD computes the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x in [0, m) such that a*x = 1 mod m. It returns an
// error when a is not invertible modulo m.
func ModInverse(a, m int) (int, error) {

	if m < 2 {
		return 0, fmt.Errorf("cannot ModInverse: modulus %d < 2", m)
	}

	a %= m
	if a < 0 {
		a += m
	}

	// Extended Euclid on (a, m), tracking only the coefficient of a.
	r0, r1 := a, m
	s0, s1 := 1, 0

	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}

	if r0 != 1 {
		return 0, fmt.Errorf("cannot ModInverse: %d is not invertible mod %d", a, m)
	}

	if s0 < 0 {
		s0 += m
	}

	return s0, nil
}
