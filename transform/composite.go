package transform

import (
	"github.com/finitefield/ntt/ring"
)

// Composite composes an inner length-n and length-m transform into the
// length m*n Cooley-Tukey transform. The factors need not be coprime. The
// input is viewed as an m x n grid with columns at stride m; fn transforms
// the m columns at w^m, the grid is twiddled by w^(i*s), and fm transforms
// the n rows at w^n. Output index q*n+s receives entry q of transformed
// row s.
func Composite[T any](r ring.Algebra[T], m, n int, fm, fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("Composite", m*n, xs)
		wm := ring.Pow(r, w, uint64(m))
		wn := ring.Pow(r, w, uint64(n))
		ws := ring.Powers(r, w, (m-1)*(n-1)+1)
		cols := make([][]T, m)
		buf := make([]T, n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				buf[j] = xs[i+m*j]
			}
			cols[i] = fn(wm, buf)
			for s := 1; s < n; s++ {
				cols[i][s] = r.Mul(ws[i*s], cols[i][s])
			}
		}
		out := make([]T, m*n)
		row := make([]T, m)
		for s := 0; s < n; s++ {
			for i := 0; i < m; i++ {
				row[i] = cols[i][s]
			}
			zs := fm(wn, row)
			for q := 0; q < m; q++ {
				out[q*n+s] = zs[q]
			}
		}
		return out
	}
}
