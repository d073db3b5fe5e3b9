package transform

import (
	"fmt"

	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/utils"
)

// CRTLayout precomputes the index permutations of one coprime
// factorization m*n: the Ruritanian map that feeds the prime-factor
// transform, the residue map that orders its output, and the CRT
// coordinate table shared by ToCRT and FromCRT.
type CRTLayout struct {
	m, n    int
	gather  [][]int // gather[i][j] = (i*n + j*m) mod m*n
	scatter []int   // scatter[k] = (k mod n)*m + k mod m
	crt     [][]int // crt[a][b] = the k < m*n with k = a mod m and k = b mod n
}

// NewCRTLayout builds the index tables for the factorization m*n. The
// factors must be positive and coprime.
func NewCRTLayout(m, n int) (*CRTLayout, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("invalid factorization: %d x %d", m, n)
	}
	if utils.GCD(m, n) != 1 {
		return nil, fmt.Errorf("cannot build CRT layout: %d and %d are not coprime", m, n)
	}
	size := m * n
	gather := make([][]int, m)
	for i := 0; i < m; i++ {
		gather[i] = make([]int, n)
		for j := 0; j < n; j++ {
			gather[i][j] = (i*n + j*m) % size
		}
	}
	scatter := make([]int, size)
	for k := 0; k < size; k++ {
		scatter[k] = (k%n)*m + k%m
	}
	crt := make([][]int, m)
	for a := range crt {
		crt[a] = make([]int, n)
	}
	for k := 0; k < size; k++ {
		crt[k%m][k%n] = k
	}
	return &CRTLayout{m: m, n: n, gather: gather, scatter: scatter, crt: crt}, nil
}

// M returns the first factor.
func (l *CRTLayout) M() int { return l.m }

// N returns the second factor.
func (l *CRTLayout) N() int { return l.n }

// Size returns the transform length m*n.
func (l *CRTLayout) Size() int { return l.m * l.n }

// PFA returns the prime-factor transform for the layout's factorization.
// The Ruritanian map arranges the input so that the two axes transform
// independently, with no twiddle stage: fn runs at w^m along the m rows of
// the permuted grid, fm at w^n along its n columns, and the CRT residues
// of each output index locate its value in the transformed grid.
func PFA[T any](r ring.Algebra[T], l *CRTLayout, fm, fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		m, n := l.m, l.n
		checkLen("PFA", m*n, xs)
		wm := ring.Pow(r, w, uint64(m))
		wn := ring.Pow(r, w, uint64(n))
		rows := make([][]T, m)
		buf := make([]T, n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				buf[j] = xs[l.gather[i][j]]
			}
			rows[i] = fn(wm, buf)
		}
		flat := make([]T, m*n)
		col := make([]T, m)
		for s := 0; s < n; s++ {
			for i := 0; i < m; i++ {
				col[i] = rows[i][s]
			}
			copy(flat[s*m:], fm(wn, col))
		}
		out := make([]T, m*n)
		for k := range out {
			out[k] = flat[l.scatter[k]]
		}
		return out
	}
}

// ToCRT reshapes a flat sequence into CRT coordinates: entry (a, b) of the
// result holds the element whose index is congruent to a mod m and to b
// mod n.
func ToCRT[T any](l *CRTLayout, xs []T) [][]T {
	checkLen("ToCRT", l.m*l.n, xs)
	out := make([][]T, l.m)
	for a := range out {
		out[a] = make([]T, l.n)
		for b := range out[a] {
			out[a][b] = xs[l.crt[a][b]]
		}
	}
	return out
}

// FromCRT flattens a CRT-coordinate grid back into a plain sequence,
// inverting ToCRT.
func FromCRT[T any](l *CRTLayout, grid [][]T) []T {
	if len(grid) != l.m {
		panic(fmt.Errorf("cannot FromCRT: grid has %d rows != %d", len(grid), l.m))
	}
	out := make([]T, l.m*l.n)
	for a := range grid {
		for b := range grid[a] {
			out[l.crt[a][b]] = grid[a][b]
		}
	}
	return out
}

// RectPFA computes the prime-factor transform of data already arranged in
// CRT coordinates, leaving the output in the same arrangement. mi and nj
// must satisfy m*mi = 1 mod n and n*nj = 1 mod m: the m grid rows are
// transformed by fn at w^(m*mi), a primitive n-th root, and the n columns
// by fm at w^(n*nj), a primitive m-th root. Conjugating by ToCRT and
// FromCRT recovers PFA exactly.
func RectPFA[T any](r ring.Algebra[T], l *CRTLayout, mi, nj int, fm, fn Transform[T], w T, grid [][]T) [][]T {
	m, n := l.m, l.n
	if len(grid) != m {
		panic(fmt.Errorf("cannot RectPFA: grid has %d rows != %d", len(grid), m))
	}
	if mi < 1 || nj < 1 || (m*mi-1)%n != 0 || (n*nj-1)%m != 0 {
		panic(fmt.Errorf("cannot RectPFA: %d and %d are not CRT inverses for %d x %d", mi, nj, m, n))
	}
	v := ring.Pow(r, w, uint64(m*mi))
	u := ring.Pow(r, w, uint64(n*nj))
	rows := make([][]T, m)
	for a := 0; a < m; a++ {
		checkLen("RectPFA", n, grid[a])
		rows[a] = fn(v, grid[a])
	}
	out := make([][]T, m)
	for a := range out {
		out[a] = make([]T, n)
	}
	col := make([]T, m)
	for b := 0; b < n; b++ {
		for a := 0; a < m; a++ {
			col[a] = rows[a][b]
		}
		zs := fm(u, col)
		for q := 0; q < m; q++ {
			out[q][b] = zs[q]
		}
	}
	return out
}
