package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/biquat/biquaternion"
	"github.com/tuneinsight/biquat/motion"
	"github.com/tuneinsight/biquat/polynomial"
	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils/sampling"
)

var (
	flagDegree = flag.Int("degree", 4, "maximum degree of the benchmarked motion polynomials")
	flagRuns   = flag.Int("runs", 10, "number of runs per operation")
	flagSeed   = flag.String("seed", "biquat", "seed of the random motion polynomials")
	flagPrec   = flag.Uint("prec", motion.DefaultDomain.Prec, "precision in bits of the root isolation")
)

type Benchmark struct {
	OpName string
	Degree int
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
}

// Run op runtime times and collect the statistics of the measured times
func measureOp(runtime int, degree int, opName string, op func()) Benchmark {

	times := make([]float64, runtime)

	for i := range times {
		start := time.Now()
		op()
		times[i] = float64(time.Since(start).Nanoseconds())
	}

	mean, _ := stats.Mean(times)
	median, _ := stats.Median(times)
	stddev, _ := stats.StandardDeviation(times)

	return Benchmark{
		OpName: opName,
		Degree: degree,
		Mean:   time.Duration(mean),
		Median: time.Duration(median),
		StdDev: time.Duration(stddev),
	}
}

// randMotion returns a product of degree random rotors t - h.
func randMotion(alg *biquaternion.Algebra, prng sampling.PRNG, t scalar.Symbol, degree int) *polynomial.Poly {
	p := polynomial.NewBiQuaternion(alg.One(), t)
	for i := 0; i < degree; i++ {
		line := alg.RandLine(prng, 10)
		for line.Primal().IsZero() {
			line = alg.RandLine(prng, 10)
		}
		h := alg.NewScalar(biquaternion.RandRational(prng, 10)).Add(line)
		p = p.Mul(polynomial.Monomial(t, 1).Sub(polynomial.NewBiQuaternion(h, t)))
	}
	return p
}

// Run all operations for all degrees and return the statistics of each operation
func benchmarkAllDegrees(maxDegree, runs int, seed []byte, dom *motion.Domain) []Benchmark {

	alg := biquaternion.DualQuaternions()
	t := scalar.Symbol("t")

	benchmarks := []Benchmark{}

	for degree := 1; degree <= maxDegree; degree++ {

		prng, err := sampling.NewKeyedPRNG(sampling.DeriveKey(seed, "motion", degree))
		if err != nil {
			panic(err)
		}

		p := randMotion(alg, prng, t, degree)
		x, y := alg.RandBQ(prng, 10), alg.RandBQ(prng, 10)

		benchmarks = append(benchmarks, measureOp(runs, degree,
			"BiQuaternion/Mul",
			func() { x.Mul(y) }))

		benchmarks = append(benchmarks, measureOp(runs, degree,
			"BiQuaternion/Inv",
			func() {
				if _, err := x.Inv(); err != nil {
					panic(err)
				}
			}))

		benchmarks = append(benchmarks, measureOp(runs, degree,
			"Norm",
			func() { p.Norm() }))

		norm := p.Norm().Scal()

		var factors []*polynomial.Poly
		benchmarks = append(benchmarks, measureOp(runs, degree,
			"IrreducibleFactors",
			func() {
				if _, factors, err = motion.IrreducibleFactors(norm, dom); err != nil {
					panic(err)
				}
			}))

		benchmarks = append(benchmarks, measureOp(runs, degree,
			"Div",
			func() {
				if _, _, err := polynomial.Div(p, factors[0], t, false); err != nil {
					panic(err)
				}
			}))

		benchmarks = append(benchmarks, measureOp(runs, degree,
			"Factorize",
			func() {
				if _, err := motion.Factorize(p, dom); err != nil {
					panic(err)
				}
			}))

		fmt.Println(".")
	}

	return benchmarks
}

func main() {

	flag.Parse()

	dom := &motion.Domain{Prec: *flagPrec}

	// Run benchmarks
	results := benchmarkAllDegrees(*flagDegree, *flagRuns, []byte(*flagSeed), dom)
	for _, result := range results {
		fmt.Printf("Degree %d\n", result.Degree)
		fmt.Printf("%s:\n", result.OpName)
		fmt.Printf("  Mean: %v\n", result.Mean)
		fmt.Printf("  Median: %v\n", result.Median)
		fmt.Printf("  Std Dev: %v\n", result.StdDev)
	}
}
