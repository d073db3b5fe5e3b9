// This experiment times the transform algorithms against the naive oracle
// on a composite and a power-of-two length, prints summary statistics per
// algorithm and renders the comparison as a bar chart in timing.html.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/transform"
	"github.com/finitefield/ntt/utils/sampling"
)

var config = struct {
	Trials int
	Output string
}{
	Trials: 50,
	Output: "timing.html",
}

type measurement struct {
	name   string
	mean   float64
	median float64
	stddev float64
}

func pow2DIT[T any](r ring.Algebra[T], logn int) transform.Transform[T] {
	f := transform.Butterfly2(r)
	for i := 1; i < logn; i++ {
		f = transform.Radix2DIT(r, f)
	}
	return f
}

func pow2DIF[T any](r ring.Algebra[T], logn int) transform.Transform[T] {
	f := transform.Butterfly2(r)
	for i := 1; i < logn; i++ {
		f = transform.Radix2DIF(r, f)
	}
	return f
}

// measure times f over the configured number of trials and reduces the
// samples to mean, median and standard deviation.
func measure(name string, w uint64, xs []uint64, f transform.Transform[uint64]) measurement {

	samples := make([]float64, config.Trials)
	for i := range samples {
		start := time.Now()
		f(w, xs)
		samples[i] = float64(time.Since(start).Nanoseconds())
	}

	mean, _ := stats.Mean(samples)
	median, _ := stats.Median(samples)
	stddev, _ := stats.StandardDeviation(samples)

	return measurement{name: name, mean: mean, median: median, stddev: stddev}
}

// measurePow2 compares the algorithms applicable to n = 256 over Z/12289,
// whose multiplicative group has order 2^12 * 3.
func measurePow2() []measurement {

	r, err := ring.NewZq(12289)
	if err != nil {
		panic(err)
	}
	R := ring.Algebra[uint64](r)

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel("timing/pow2"))
	if err != nil {
		panic(err)
	}

	const logn = 8
	const n = 1 << logn

	w, err := r.NthRoot(n)
	if err != nil {
		panic(err)
	}
	u, err := r.NthRoot(2 * n)
	if err != nil {
		panic(err)
	}
	v, err := r.Inv(u)
	if err != nil {
		panic(err)
	}
	// Bluestein runs at the square of the supplied half-order root; w is
	// replaced by u^2 so all measurements transform at a root of order n.
	w = r.Mul(u, u)

	xs := r.RandVector(prng, n)

	return []measurement{
		measure("naive/256", w, xs, transform.Naive(R)),
		measure("radix2-dit/256", w, xs, pow2DIT(R, logn)),
		measure("radix2-dif/256", w, xs, pow2DIF(R, logn)),
		measure("bluestein/256", w, xs, func(_ uint64, in []uint64) []uint64 {
			return transform.Bluestein(R, u, v, in)
		}),
	}
}

// measureComposite compares the composers on n = 255 = 15 * 17 over
// Z/1021, whose multiplicative group has order 2^2 * 3 * 5 * 17.
func measureComposite() []measurement {

	r, err := ring.NewZq(1021)
	if err != nil {
		panic(err)
	}
	R := ring.Algebra[uint64](r)

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel("timing/composite"))
	if err != nil {
		panic(err)
	}

	const m, n = 15, 17

	w, err := r.NthRoot(m * n)
	if err != nil {
		panic(err)
	}

	l, err := transform.NewCRTLayout(m, n)
	if err != nil {
		panic(err)
	}

	naive := transform.Naive(R)
	xs := r.RandVector(prng, m*n)

	return []measurement{
		measure("naive/255", w, xs, naive),
		measure("composite/255", w, xs, transform.Composite(R, m, n, naive, naive)),
		measure("pfa/255", w, xs, transform.PFA(R, l, naive, naive)),
		measure("pfa-par/255", w, xs, transform.PFAPar(R, l, naive, naive)),
	}
}

func render(ms []measurement) error {

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "NTT algorithm timings",
			Subtitle: fmt.Sprintf("mean ns over %d trials", config.Trials),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "NTT timings", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	names := make([]string, len(ms))
	means := make([]opts.BarData, len(ms))
	medians := make([]opts.BarData, len(ms))
	for i, m := range ms {
		names[i] = m.name
		means[i] = opts.BarData{Value: m.mean}
		medians[i] = opts.BarData{Value: m.median}
	}

	bar.SetXAxis(names).
		AddSeries("mean", means).
		AddSeries("median", medians)

	f, err := os.Create(config.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	return bar.Render(f)
}

func main() {

	var ms []measurement
	ms = append(ms, measurePow2()...)
	ms = append(ms, measureComposite()...)

	fmt.Printf("%-18s %14s %14s %14s\n", "algorithm", "mean ns", "median ns", "stddev ns")
	for _, m := range ms {
		fmt.Printf("%-18s %14.0f %14.0f %14.0f\n", m.name, m.mean, m.median, m.stddev)
	}

	if err := render(ms); err != nil {
		panic(err)
	}
	fmt.Printf("\nwrote %s\n", config.Output)
}
