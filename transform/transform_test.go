package transform_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/finitefield/ntt/conv"
	"github.com/finitefield/ntt/poly"
	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/ring/fr381"
	"github.com/finitefield/ntt/transform"
	"github.com/finitefield/ntt/utils"
	"github.com/finitefield/ntt/utils/sampling"
)

func testString(opname string, q uint64, n int) string {
	return fmt.Sprintf("%s/q=%d/n=%d", opname, q, n)
}

type testParams struct {
	r    ring.Zq
	R    ring.Algebra[uint64]
	prng sampling.PRNG
}

func genTestParams(q uint64) (tc *testParams, err error) {
	tc = new(testParams)
	if tc.r, err = ring.NewZq(q); err != nil {
		return nil, err
	}
	tc.R = tc.r
	if tc.prng, err = sampling.NewKeyedPRNG(sampling.KeyFromLabel(fmt.Sprintf("transform/q=%d", q))); err != nil {
		return nil, err
	}
	return
}

func nthRoot(t *testing.T, r ring.Zq, n int) uint64 {
	w, err := r.NthRoot(uint64(n))
	require.NoError(t, err)
	return w
}

func requireVecEqual[T any](t *testing.T, r ring.Algebra[T], want, got []T) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		require.True(t, r.Equal(want[i], got[i]), "index %d: want %v, got %v", i, want[i], got[i])
	}
}

// pow2DIT assembles the decimation-in-time transform for length 2^logn
// from a chain of radix-2 stages over a 2-point leaf.
func pow2DIT[T any](r ring.Algebra[T], logn int) transform.Transform[T] {
	f := transform.Butterfly2(r)
	for i := 1; i < logn; i++ {
		f = transform.Radix2DIT(r, f)
	}
	return f
}

func TestTransform(t *testing.T) {
	testButterfly(t)
	testRadix2(t)
	testComposite(t)
	testPFA(t)
	testRectPFA(t)
	testBluestein(t)
	testRader(t)
	testNegacyclic(t)
	testHomomorphism(t)
	testInverse(t)
}

func testButterfly(t *testing.T) {

	for _, tcase := range []struct {
		q uint64
		n int
	}{
		{17, 2},
		{13, 3},
		{17, 4},
	} {
		tc, err := genTestParams(tcase.q)
		require.NoError(t, err)

		t.Run(testString("Butterfly", tcase.q, tcase.n), func(t *testing.T) {

			w := nthRoot(t, tc.r, tcase.n)
			xs := tc.r.RandVector(tc.prng, tcase.n)
			want := transform.Naive(tc.R)(w, xs)

			var got []uint64
			switch tcase.n {
			case 2:
				got = transform.Butterfly2(tc.R)(w, xs)
			case 3:
				got = transform.Butterfly3(tc.R)(w, xs)
			case 4:
				got = transform.Butterfly4(tc.R)(w, xs)
			}

			requireVecEqual(t, tc.R, want, got)
		})
	}

	t.Run(testString("FFT2", 17, 2), func(t *testing.T) {
		tc, err := genTestParams(17)
		require.NoError(t, err)
		xs := tc.r.RandVector(tc.prng, 2)
		y0, y1 := transform.FFT2(tc.R, xs[0], xs[1])
		want := transform.Naive(tc.R)(tc.r.FromInt(-1), xs)
		requireVecEqual(t, tc.R, want, []uint64{y0, y1})
	})
}

func testRadix2(t *testing.T) {

	tc, err := genTestParams(13)
	require.NoError(t, err)
	naive := transform.Naive(tc.R)

	t.Run(testString("Radix2DIT", 13, 6), func(t *testing.T) {
		w := nthRoot(t, tc.r, 6)
		xs := tc.r.RandVector(tc.prng, 6)
		f := transform.Radix2DIT(tc.R, naive)
		requireVecEqual(t, tc.R, naive(w, xs), f(w, xs))
	})

	t.Run(testString("Radix2DIF", 13, 6), func(t *testing.T) {
		w := nthRoot(t, tc.r, 6)
		xs := tc.r.RandVector(tc.prng, 6)
		f := transform.Radix2DIF(tc.R, naive)
		requireVecEqual(t, tc.R, naive(w, xs), f(w, xs))
	})

	t.Run(testString("Radix2DIT", 13, 12), func(t *testing.T) {
		w := nthRoot(t, tc.r, 12)
		xs := tc.r.RandVector(tc.prng, 12)
		f := transform.Radix2DIT(tc.R, transform.Radix2DIT(tc.R, transform.Butterfly3(tc.R)))
		requireVecEqual(t, tc.R, naive(w, xs), f(w, xs))
	})

	t.Run(testString("Radix2DIF", 13, 12), func(t *testing.T) {
		w := nthRoot(t, tc.r, 12)
		xs := tc.r.RandVector(tc.prng, 12)
		f := transform.Radix2DIF(tc.R, transform.Radix2DIF(tc.R, transform.Butterfly3(tc.R)))
		requireVecEqual(t, tc.R, naive(w, xs), f(w, xs))
	})

	t.Run(testString("Radix2DIT", 17, 8), func(t *testing.T) {
		tc, err := genTestParams(17)
		require.NoError(t, err)
		w := nthRoot(t, tc.r, 8)
		xs := tc.r.RandVector(tc.prng, 8)
		requireVecEqual(t, tc.R, transform.Naive(tc.R)(w, xs), pow2DIT(tc.R, 3)(w, xs))
	})

	t.Run(testString("Radix2DIT/OddLength", 13, 5), func(t *testing.T) {
		xs := tc.r.RandVector(tc.prng, 5)
		require.Panics(t, func() { transform.Radix2DIT(tc.R, naive)(tc.r.One(), xs) })
	})
}

func testComposite(t *testing.T) {

	for _, tcase := range []struct {
		q    uint64
		m, n int
	}{
		{17, 2, 2},
		{31, 3, 5},
		{547, 7, 13},
	} {
		tc, err := genTestParams(tcase.q)
		require.NoError(t, err)

		t.Run(testString(fmt.Sprintf("Composite/m=%d", tcase.m), tcase.q, tcase.m*tcase.n), func(t *testing.T) {

			naive := transform.Naive(tc.R)
			fm, fn := naive, naive
			switch {
			case tcase.m == 2:
				fm = transform.Butterfly2(tc.R)
			case tcase.m == 7:
				fm = transform.Rader7(tc.R)
			}

			w := nthRoot(t, tc.r, tcase.m*tcase.n)
			xs := tc.r.RandVector(tc.prng, tcase.m*tcase.n)
			want := naive(w, xs)

			f := transform.Composite(tc.R, tcase.m, tcase.n, fm, fn)
			requireVecEqual(t, tc.R, want, f(w, xs))

			fp := transform.CompositePar(tc.R, tcase.m, tcase.n, fm, fn)
			requireVecEqual(t, tc.R, want, fp(w, xs))
		})
	}
}

func testPFA(t *testing.T) {

	for _, tcase := range []struct {
		q    uint64
		m, n int
	}{
		{31, 3, 5},
		{547, 7, 13},
	} {
		tc, err := genTestParams(tcase.q)
		require.NoError(t, err)

		t.Run(testString(fmt.Sprintf("PFA/m=%d", tcase.m), tcase.q, tcase.m*tcase.n), func(t *testing.T) {

			l, err := transform.NewCRTLayout(tcase.m, tcase.n)
			require.NoError(t, err)
			require.Equal(t, tcase.m, l.M())
			require.Equal(t, tcase.n, l.N())
			require.Equal(t, tcase.m*tcase.n, l.Size())

			naive := transform.Naive(tc.R)
			w := nthRoot(t, tc.r, l.Size())
			xs := tc.r.RandVector(tc.prng, l.Size())
			want := naive(w, xs)

			f := transform.PFA(tc.R, l, naive, naive)
			requireVecEqual(t, tc.R, want, f(w, xs))

			fp := transform.PFAPar(tc.R, l, naive, naive)
			requireVecEqual(t, tc.R, want, fp(w, xs))
		})
	}

	t.Run("NewCRTLayout/NotCoprime", func(t *testing.T) {
		_, err := transform.NewCRTLayout(4, 6)
		require.Error(t, err)
	})

	t.Run("NewCRTLayout/InvalidFactor", func(t *testing.T) {
		_, err := transform.NewCRTLayout(0, 5)
		require.Error(t, err)
	})
}

func testRectPFA(t *testing.T) {

	for _, tcase := range []struct {
		q      uint64
		m, n   int
		mi, nj int
	}{
		{13, 3, 4, 3, 1},
		{31, 3, 5, 2, 2},
		{547, 7, 13, 2, 6},
	} {
		tc, err := genTestParams(tcase.q)
		require.NoError(t, err)

		t.Run(testString(fmt.Sprintf("RectPFA/m=%d", tcase.m), tcase.q, tcase.m*tcase.n), func(t *testing.T) {

			l, err := transform.NewCRTLayout(tcase.m, tcase.n)
			require.NoError(t, err)

			naive := transform.Naive(tc.R)
			w := nthRoot(t, tc.r, l.Size())
			xs := tc.r.RandVector(tc.prng, l.Size())

			// The CRT reshuffle must round-trip on its own.
			requireVecEqual(t, tc.R, xs, transform.FromCRT(l, transform.ToCRT(l, xs)))

			grid := transform.ToCRT(l, xs)
			out := transform.RectPFA(tc.R, l, tcase.mi, tcase.nj, naive, naive, w, grid)
			flat := transform.FromCRT(l, out)

			requireVecEqual(t, tc.R, naive(w, xs), flat)
			requireVecEqual(t, tc.R, transform.PFA(tc.R, l, naive, naive)(w, xs), flat)
		})
	}

	t.Run("RectPFA/InvalidInverses", func(t *testing.T) {
		tc, err := genTestParams(13)
		require.NoError(t, err)
		l, err := transform.NewCRTLayout(3, 4)
		require.NoError(t, err)
		naive := transform.Naive(tc.R)
		grid := transform.ToCRT(l, tc.r.RandVector(tc.prng, 12))
		require.Panics(t, func() {
			transform.RectPFA(tc.R, l, 2, 1, naive, naive, tc.r.One(), grid)
		})
	})
}

func testBluestein(t *testing.T) {

	for _, tcase := range []struct {
		q uint64
		n int
	}{
		{13, 6},
		{29, 7},
	} {
		tc, err := genTestParams(tcase.q)
		require.NoError(t, err)

		t.Run(testString("Bluestein", tcase.q, tcase.n), func(t *testing.T) {

			u := nthRoot(t, tc.r, 2*tcase.n)
			v, err := tc.r.Inv(u)
			require.NoError(t, err)

			xs := tc.r.RandVector(tc.prng, tcase.n)
			want := transform.Naive(tc.R)(tc.r.Mul(u, u), xs)

			requireVecEqual(t, tc.R, want, transform.Bluestein(tc.R, u, v, xs))
		})
	}
}

func testRader(t *testing.T) {

	tc, err := genTestParams(29)
	require.NoError(t, err)
	naive := transform.Naive(tc.R)

	t.Run(testString("Rader7", 29, 7), func(t *testing.T) {
		w := nthRoot(t, tc.r, 7)
		xs := tc.r.RandVector(tc.prng, 7)
		want := naive(w, xs)
		requireVecEqual(t, tc.R, want, transform.Rader7(tc.R)(w, xs))
		requireVecEqual(t, tc.R, want, transform.Rader(tc.R, 7)(w, xs))
	})

	t.Run(testString("Rader7Inv", 29, 7), func(t *testing.T) {
		w := nthRoot(t, tc.r, 7)
		winv, err := tc.r.Inv(w)
		require.NoError(t, err)
		xs := tc.r.RandVector(tc.prng, 7)
		requireVecEqual(t, tc.R, naive(winv, xs), transform.Rader7Inv(tc.R)(w, xs))
	})

	t.Run(testString("Rader7RoundTrip", 29, 7), func(t *testing.T) {
		w := nthRoot(t, tc.r, 7)
		xs := tc.r.RandVector(tc.prng, 7)
		rt := transform.Rader7Inv(tc.R)(w, transform.Rader7(tc.R)(w, xs))
		requireVecEqual(t, tc.R, poly.Scale(tc.R, tc.r.FromInt(7), xs), rt)
	})

	t.Run(testString("Rader", 23, 11), func(t *testing.T) {
		tc, err := genTestParams(23)
		require.NoError(t, err)
		w := nthRoot(t, tc.r, 11)
		xs := tc.r.RandVector(tc.prng, 11)
		requireVecEqual(t, tc.R, transform.Naive(tc.R)(w, xs), transform.Rader(tc.R, 11)(w, xs))
	})
}

func testNegacyclic(t *testing.T) {

	tc, err := genTestParams(17)
	require.NoError(t, err)
	naive := transform.Naive(tc.R)
	f := transform.Negacyclic(tc.R, naive)

	t.Run(testString("Negacyclic", 17, 8), func(t *testing.T) {

		w := nthRoot(t, tc.r, 16)
		xs := tc.r.RandVector(tc.prng, 8)
		got := f(w, xs)

		// Evaluation at the odd powers of w.
		p := utils.Reverse(xs)
		for k := range got {
			e := ring.Pow(tc.R, w, uint64(2*k+1))
			require.True(t, tc.r.Equal(poly.Eval(tc.R, p, e), got[k]), "odd power %d", 2*k+1)
		}
	})

	t.Run(testString("NegacyclicRoundTrip", 17, 8), func(t *testing.T) {

		w := nthRoot(t, tc.r, 16)
		winv, err := tc.r.Inv(w)
		require.NoError(t, err)

		xs := tc.r.RandVector(tc.prng, 8)
		inv := transform.NegacyclicInv(tc.R, naive)
		rt := inv(winv, f(w, xs))

		requireVecEqual(t, tc.R, poly.Scale(tc.R, tc.r.FromInt(8), xs), rt)
	})

	t.Run(testString("NegacyclicHomomorphism", 17, 8), func(t *testing.T) {

		w := nthRoot(t, tc.r, 16)
		nr, err := conv.NewNegacyclicRing(tc.R, 8)
		require.NoError(t, err)
		pw, err := ring.NewPointwise(tc.R, 8)
		require.NoError(t, err)

		xs := tc.r.RandVector(tc.prng, 8)
		ys := tc.r.RandVector(tc.prng, 8)

		requireVecEqual(t, tc.R, pw.Mul(f(w, xs), f(w, ys)), f(w, nr.Mul(xs, ys)))
	})
}

func testHomomorphism(t *testing.T) {

	tc, err := genTestParams(17)
	require.NoError(t, err)

	t.Run(testString("CyclicHomomorphism", 17, 8), func(t *testing.T) {

		T := transform.Naive(tc.R)
		w := nthRoot(t, tc.r, 8)

		cr, err := conv.NewCyclicRing(tc.R, 8)
		require.NoError(t, err)
		pw, err := ring.NewPointwise(tc.R, 8)
		require.NoError(t, err)

		xs := tc.r.RandVector(tc.prng, 8)
		ys := tc.r.RandVector(tc.prng, 8)

		// Products map to pointwise products, sums to pointwise sums, and
		// the unit impulse to the pointwise identity.
		requireVecEqual(t, tc.R, pw.Mul(T(w, xs), T(w, ys)), T(w, cr.Mul(xs, ys)))
		requireVecEqual(t, tc.R, pw.Add(T(w, xs), T(w, ys)), T(w, cr.Add(xs, ys)))
		requireVecEqual(t, tc.R, pw.One(), T(w, cr.One()))
	})
}

func testInverse(t *testing.T) {

	tc, err := genTestParams(17)
	require.NoError(t, err)

	t.Run(testString("Inverse", 17, 8), func(t *testing.T) {

		w := nthRoot(t, tc.r, 8)
		winv, err := tc.r.Inv(w)
		require.NoError(t, err)
		ninv, err := tc.r.Inv(8)
		require.NoError(t, err)

		T := transform.Naive(tc.R)
		TI := transform.Inverse(tc.R, ninv)

		xs := tc.r.RandVector(tc.prng, 8)
		requireVecEqual(t, tc.R, xs, TI(winv, T(w, xs)))

		// Without the 1/n normalization the round trip scales by n.
		requireVecEqual(t, tc.R, poly.Scale(tc.R, tc.r.FromInt(8), xs), T(winv, T(w, xs)))
	})
}

func TestTransformZBig(t *testing.T) {

	// The Goldilocks prime 2^64 - 2^32 + 1 exceeds the Zq modulus cap, and
	// 2^32 | q-1 gives it roots for every power-of-two size.
	q := new(big.Int).SetUint64(18446744069414584321)
	zr, err := ring.NewZBig(q)
	require.NoError(t, err)
	R := ring.Algebra[*big.Int](zr)

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel("transform/zbig"))
	require.NoError(t, err)

	naive := transform.Naive(R)

	t.Run(fmt.Sprintf("Radix2DIT/q=%s/n=16", q.String()), func(t *testing.T) {
		w, err := zr.NthRoot(16)
		require.NoError(t, err)
		xs := zr.RandVector(prng, 16)
		requireVecEqual(t, R, naive(w, xs), pow2DIT(R, 4)(w, xs))
	})

	t.Run(fmt.Sprintf("Bluestein/q=%s/n=6", q.String()), func(t *testing.T) {
		u, err := zr.NthRoot(12)
		require.NoError(t, err)
		v, err := zr.Inv(u)
		require.NoError(t, err)
		xs := zr.RandVector(prng, 6)
		requireVecEqual(t, R, naive(zr.Mul(u, u), xs), transform.Bluestein(R, u, v, xs))
	})

	t.Run(fmt.Sprintf("Inverse/q=%s/n=8", q.String()), func(t *testing.T) {
		w, err := zr.NthRoot(8)
		require.NoError(t, err)
		winv, err := zr.Inv(w)
		require.NoError(t, err)
		ninv, err := zr.Inv(big.NewInt(8))
		require.NoError(t, err)
		xs := zr.RandVector(prng, 8)
		requireVecEqual(t, R, xs, transform.Inverse(R, ninv)(winv, naive(w, xs)))
	})
}

func TestTransformGF2k(t *testing.T) {

	// GF(2^8) mod X^8 + X^4 + X^3 + X + 1. The multiplicative group has the
	// odd order 255 = 3 * 5 * 17, so every transform size here is odd.
	f, err := ring.NewGF2k(8, 0x11B)
	require.NoError(t, err)
	R := ring.Algebra[uint64](f)

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel("transform/gf2k"))
	require.NoError(t, err)

	naive := transform.Naive(R)

	t.Run("PFA/k=8/n=15", func(t *testing.T) {
		w, err := f.NthRoot(15)
		require.NoError(t, err)
		l, err := transform.NewCRTLayout(3, 5)
		require.NoError(t, err)
		xs := f.RandVector(prng, 15)
		requireVecEqual(t, R, naive(w, xs), transform.PFA(R, l, naive, naive)(w, xs))
	})

	t.Run("Bluestein/k=8/n=17", func(t *testing.T) {
		// No element has even order, so the half-order chirp root comes
		// from u = w^((n+1)/2), which squares back to w for odd n.
		w, err := f.NthRoot(17)
		require.NoError(t, err)
		u := ring.Pow(R, w, 9)
		v, err := f.Inv(u)
		require.NoError(t, err)
		xs := f.RandVector(prng, 17)
		requireVecEqual(t, R, naive(w, xs), transform.Bluestein(R, u, v, xs))
	})

	t.Run("Composite/k=8/n=15", func(t *testing.T) {
		w, err := f.NthRoot(15)
		require.NoError(t, err)
		xs := f.RandVector(prng, 15)
		requireVecEqual(t, R, naive(w, xs), transform.Composite(R, 3, 5, naive, naive)(w, xs))
	})
}

func TestTransformFr381(t *testing.T) {

	rr := fr381.Ring{}
	R := ring.Algebra[fr.Element](rr)

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel("transform/fr381"))
	require.NoError(t, err)

	naive := transform.Naive(R)

	t.Run("Radix2DIT/fr381/n=8", func(t *testing.T) {
		w, err := rr.NthRoot(8)
		require.NoError(t, err)
		xs := rr.RandVector(prng, 8)
		requireVecEqual(t, R, naive(w, xs), pow2DIT(R, 3)(w, xs))
	})

	t.Run("Composite/fr381/n=8", func(t *testing.T) {
		w, err := rr.NthRoot(8)
		require.NoError(t, err)
		xs := rr.RandVector(prng, 8)
		f := transform.Composite(R, 2, 4, transform.Butterfly2(R), transform.Butterfly4(R))
		requireVecEqual(t, R, naive(w, xs), f(w, xs))
	})

	t.Run("Bluestein/fr381/n=8", func(t *testing.T) {
		u, err := rr.NthRoot(16)
		require.NoError(t, err)
		v, err := rr.Inv(u)
		require.NoError(t, err)
		xs := rr.RandVector(prng, 8)
		requireVecEqual(t, R, naive(rr.Mul(u, u), xs), transform.Bluestein(R, u, v, xs))
	})

	t.Run("Inverse/fr381/n=8", func(t *testing.T) {
		w, err := rr.NthRoot(8)
		require.NoError(t, err)
		winv, err := rr.Inv(w)
		require.NoError(t, err)
		ninv, err := rr.Inv(rr.FromInt(8))
		require.NoError(t, err)
		xs := rr.RandVector(prng, 8)
		requireVecEqual(t, R, xs, transform.Inverse(R, ninv)(winv, naive(w, xs)))
	})
}
