package factorization

import (
	"math"
	"math/big"

	"github.com/tuneinsight/biquat/utils/bignum"
)

// Weierstrass approximates all the complex roots of the square-free polynomial p
// with the Weierstrass (Durand-Kerner) simultaneous iteration, using prec bits of precision.
// The iteration stops once every correction is below 2^-(prec-32) relative to the
// magnitude of its root, or after a bounded number of sweeps.
func Weierstrass(p *bignum.Polynomial, prec uint) (roots []*bignum.Complex) {

	n := p.Degree()

	if n < 1 {
		return nil
	}

	p = p.Monic()

	if n == 1 {
		return []*bignum.Complex{bignum.ToComplex(new(big.Rat).Neg(p.Coeffs[0]), prec)}
	}

	roots = initialGuesses(p, prec)

	tol := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec-32))
	one := bignum.NewFloat(1, prec)

	num := bignum.NewComplex(prec)
	den := bignum.NewComplex(prec)
	diff := bignum.NewComplex(prec)
	bound := new(big.Float).SetPrec(prec)

	maxIter := 512 + 64*n

	for iter := 0; iter < maxIter; iter++ {

		converged := true

		for i := range roots {

			num.Set(p.EvaluateComplex(roots[i]))

			den[0].SetInt64(1)
			den[1].SetInt64(0)

			for j := range roots {
				if j != i {
					diff.Sub(roots[i], roots[j])
					den.Mul(den, diff)
				}
			}

			// Coinciding approximations: nudge the root instead of dividing by zero.
			if den[0].Sign() == 0 && den[1].Sign() == 0 {
				roots[i][0].Add(roots[i][0], tol)
				roots[i][1].Add(roots[i][1], tol)
				converged = false
				continue
			}

			num.Quo(num, den)
			roots[i].Sub(roots[i], num)

			bound.Add(one, roots[i].Abs())
			bound.Mul(bound, tol)

			if num.Abs().Cmp(bound) > 0 {
				converged = false
			}
		}

		if converged {
			break
		}
	}

	return
}

// initialGuesses returns n points on a circle of radius |p(0)|^(1/n),
// rotated off the real axis to break the conjugate symmetry of real polynomials.
func initialGuesses(p *bignum.Polynomial, prec uint) (z []*bignum.Complex) {

	n := p.Degree()

	radius := bignum.NewFloat(1, prec)
	if c0 := bignum.NewFloat(p.Coeffs[0], prec); c0.Sign() != 0 {
		radius = bignum.Root(c0.Abs(c0), n)
	}

	z = make([]*bignum.Complex, n)
	for k := range z {
		theta := 2*math.Pi*float64(k)/float64(n) + 0.4
		z[k] = bignum.ToComplex(complex(math.Cos(theta), math.Sin(theta)), prec)
		z[k][0].Mul(z[k][0], radius)
		z[k][1].Mul(z[k][1], radius)
	}

	return
}
