package transform

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/finitefield/ntt/ring"
)

// CompositePar is Composite with the column and row transforms run
// concurrently, one goroutine per grid line. fm and fn must be safe for
// concurrent use.
func CompositePar[T any](r ring.Algebra[T], m, n int, fm, fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		checkLen("CompositePar", m*n, xs)
		wm := ring.Pow(r, w, uint64(m))
		wn := ring.Pow(r, w, uint64(n))
		ws := ring.Powers(r, w, (m-1)*(n-1)+1)
		cols := make([][]T, m)
		parallel("CompositePar column", m, func(i int) {
			buf := make([]T, n)
			for j := 0; j < n; j++ {
				buf[j] = xs[i+m*j]
			}
			cols[i] = fn(wm, buf)
			for s := 1; s < n; s++ {
				cols[i][s] = r.Mul(ws[i*s], cols[i][s])
			}
		})
		out := make([]T, m*n)
		parallel("CompositePar row", n, func(s int) {
			row := make([]T, m)
			for i := 0; i < m; i++ {
				row[i] = cols[i][s]
			}
			zs := fm(wn, row)
			for q := 0; q < m; q++ {
				out[q*n+s] = zs[q]
			}
		})
		return out
	}
}

// PFAPar is PFA with the two transform axes run concurrently, one
// goroutine per grid line. fm and fn must be safe for concurrent use.
func PFAPar[T any](r ring.Algebra[T], l *CRTLayout, fm, fn Transform[T]) Transform[T] {
	return func(w T, xs []T) []T {
		m, n := l.m, l.n
		checkLen("PFAPar", m*n, xs)
		wm := ring.Pow(r, w, uint64(m))
		wn := ring.Pow(r, w, uint64(n))
		rows := make([][]T, m)
		parallel("PFAPar row", m, func(i int) {
			buf := make([]T, n)
			for j := 0; j < n; j++ {
				buf[j] = xs[l.gather[i][j]]
			}
			rows[i] = fn(wm, buf)
		})
		flat := make([]T, m*n)
		parallel("PFAPar column", n, func(s int) {
			col := make([]T, m)
			for i := 0; i < m; i++ {
				col[i] = rows[i][s]
			}
			copy(flat[s*m:], fm(wn, col))
		})
		out := make([]T, m*n)
		for k := range out {
			out[k] = flat[l.scatter[k]]
		}
		return out
	}
}

// parallel runs f(0) .. f(lines-1) on one goroutine each and waits for
// all of them. A panic inside a worker would kill the process before the
// caller could observe it, so workers trap panics and the first one is
// re-raised on the calling goroutine.
func parallel(op string, lines int, f func(i int)) {
	var g errgroup.Group
	for i := 0; i < lines; i++ {
		i := i // pre-Go 1.22 loop variable capture
		g.Go(guard(op, i, func() { f(i) }))
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

func guard(op string, line int, f func()) func() error {
	return func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%s %d: %v", op, line, p)
			}
		}()
		f()
		return nil
	}
}
