package factorization

import (
	"fmt"
	"math/big"

	"github.com/finitefield/ntt/utils/sampling"
)

// Weierstrass is an elliptic curve y^2 = x^3 + ax + b mod N.
type Weierstrass struct {
	A, B, N *big.Int
}

// Point represents a curve point in affine coordinates. The zero value is
// the point at infinity.
type Point struct {
	X, Y *big.Int
}

// Infinity returns the identity of the curve group.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil
}

// SingularSlopeError reports a slope denominator that is not invertible
// modulo N. GCD is the non-trivial divisor of N it reveals, the event
// Lenstra's method searches for.
type SingularSlopeError struct {
	GCD *big.Int
}

func (e SingularSlopeError) Error() string {
	return fmt.Sprintf("slope denominator shares factor %s with the modulus", e.GCD.String())
}

// Add adds two Weierstrass points with respect to the underlying curve.
// It does not check that the points lie on the curve. When a slope
// denominator is not invertible modulo N it returns a SingularSlopeError
// carrying the divisor of N found.
func (w *Weierstrass) Add(P, Q Point) (Point, error) {

	if P.IsInfinity() {
		return Q, nil
	}

	if Q.IsInfinity() {
		return P, nil
	}

	N := w.N

	xP, yP := P.X, P.Y
	xQ, yQ := Q.X, Q.Y

	S := new(big.Int) // slope
	den := new(big.Int)

	if xP.Cmp(xQ) == 0 {

		// Same x: either Q = -P, or P = Q and the tangent applies.
		if new(big.Int).Add(yP, yQ).Mod(new(big.Int).Add(yP, yQ), N).Sign() == 0 {
			return Infinity(), nil
		}

		// S = (3*xP^2 + a)/(2*yP)
		S.Mul(xP, xP)
		S.Mod(S, N)
		S.Mul(S, new(big.Int).SetUint64(3))
		S.Add(S, w.A)
		S.Mod(S, N)
		den.Add(yP, yP)

	} else {

		// S = (yQ-yP)/(xQ-xP)
		S.Sub(yQ, yP)
		den.Sub(xQ, xP)
	}

	den.Mod(den, N)

	g := new(big.Int).GCD(nil, nil, den, N)
	if g.Cmp(new(big.Int).SetUint64(1)) != 0 {
		return Point{}, SingularSlopeError{GCD: g}
	}

	den.ModInverse(den, N)
	S.Mul(S, den)
	S.Mod(S, N)

	// xR = s^2 - xP - xQ
	xR := new(big.Int).Mul(S, S)
	xR.Mod(xR, N)
	xR.Sub(xR, xP)
	xR.Sub(xR, xQ)
	xR.Mod(xR, N)

	// yR = s*(xP-xR) - yP
	yR := new(big.Int).Sub(xP, xR)
	yR.Mul(yR, S)
	yR.Mod(yR, N)
	yR.Sub(yR, yP)
	yR.Mod(yR, N)

	return Point{X: xR, Y: yR}, nil
}

// ScalarMul returns k*P by double-and-add.
func (w *Weierstrass) ScalarMul(P Point, k uint64) (Point, error) {

	var err error

	R := Infinity()

	for ; k > 0; k >>= 1 {

		if k&1 == 1 {
			if R, err = w.Add(R, P); err != nil {
				return Point{}, err
			}
		}

		if P, err = w.Add(P, P); err != nil {
			return Point{}, err
		}
	}

	return R, nil
}

// NewRandomWeierstrassCurve generates a random Weierstrass curve modulo N
// along with a random point that lies on it.
func NewRandomWeierstrassCurve(N *big.Int) (Weierstrass, Point) {

	var A, B, xG, yG *big.Int
	for {

		// Select random values for A, xG and yG.
		A = sampling.RandInt(N)
		xG = sampling.RandInt(N)
		yG = sampling.RandInt(N)

		// Deduces B from Y^2 = X^3 + A*X + B evaluated at (xG, yG).
		yGpow2 := new(big.Int).Mul(yG, yG)
		yGpow2.Mod(yGpow2, N)

		rhs := new(big.Int).Mul(xG, xG)
		rhs.Mod(rhs, N)
		rhs.Add(rhs, A)
		rhs.Mul(rhs, xG) // xG^3 + A*xG
		rhs.Mod(rhs, N)

		B = new(big.Int).Sub(yGpow2, rhs)
		B.Mod(B, N)

		// Rejects singular curves: 4A^3 + 27B^2 must be a unit mod N.
		fourACube := new(big.Int).Add(A, A)
		fourACube.Mul(fourACube, fourACube)
		fourACube.Mod(fourACube, N)
		fourACube.Mul(fourACube, A)

		twentySevenBSquare := new(big.Int).Mul(B, B)
		twentySevenBSquare.Mod(twentySevenBSquare, N)
		twentySevenBSquare.Mul(twentySevenBSquare, new(big.Int).SetUint64(27))
		twentySevenBSquare.Mod(twentySevenBSquare, N)

		discriminant := new(big.Int).Add(fourACube, twentySevenBSquare)
		discriminant.Mod(discriminant, N)

		if discriminant.Sign() != 0 && new(big.Int).GCD(nil, nil, N, discriminant).Cmp(new(big.Int).SetUint64(1)) == 0 {
			return Weierstrass{
				A: A,
				B: B,
				N: N,
			}, Point{X: xG, Y: yG}
		}
	}
}
