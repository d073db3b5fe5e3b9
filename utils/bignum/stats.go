package bignum

import (
	"math/big"
)

// Stats returns the mean and the base-2 logarithm of the (sample) standard
// deviation of values, computed with prec bits of precision. The logarithm
// is taken in arbitrary precision, so spreads beyond the float64 range
// still report a finite value.
func Stats(values []*big.Int, prec uint) (mean *big.Float, log2Std float64) {

	N := len(values)

	mean = NewFloat(0, prec)
	tmp := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		mean.Add(mean, tmp.SetInt(values[i]))
	}

	mean.Quo(mean, NewFloat(N, prec))

	if N < 2 {
		return mean, 0
	}

	variance := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		tmp.SetInt(values[i])
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		variance.Add(variance, tmp)
	}

	variance.Quo(variance, NewFloat(N-1, prec))

	std := variance.Sqrt(variance)

	if std.Sign() == 0 {
		return mean, 0
	}

	log2StdBig := Log(std)
	log2StdBig.Quo(log2StdBig, Log2(prec))

	log2Std, _ = log2StdBig.Float64()

	return mean, log2Std
}
