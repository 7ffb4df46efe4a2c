package motion

import (
	"fmt"

	"github.com/tuneinsight/biquat/polynomial"
	"github.com/tuneinsight/biquat/scalar"
)

// indet returns the indeterminate of a univariate biquaternion polynomial.
func indet(p *polynomial.Poly) (v scalar.Symbol, err error) {

	indets := p.Indets()

	if len(indets) != 1 {
		return v, fmt.Errorf("%w: only univariate polynomials are supported but %v has indeterminates %v", ErrArgument, p, indets)
	}

	if p.Ring() != polynomial.BiQuaternion {
		return v, fmt.Errorf("%w: only polynomials with biquaternion coefficients are supported but %v has %v coefficients", ErrArgument, p, p.Ring())
	}

	return indets[0], nil
}

// MaxRealPolyFact returns the maximal real polynomial factor of p, that is the monic
// greatest common divisor of its eight coefficient polynomials. It is zero if p is zero.
func MaxRealPolyFact(p *polynomial.Poly) (gcd scalar.Expr, err error) {

	var v scalar.Symbol
	if v, err = indet(p); err != nil {
		return gcd, fmt.Errorf("cannot MaxRealPolyFact: %w", err)
	}

	bq, _ := p.BQ()

	for _, c := range bq.Coeffs() {
		if gcd, err = scalar.GCD(gcd, c, v); err != nil {
			return scalar.Expr{}, fmt.Errorf("cannot MaxRealPolyFact: %w", err)
		}
	}

	return
}

// GCDConjPD returns the real gcd of c = MaxRealPolyFact(Primal(p)) and of the primal
// parts of primal * ~dual and ~primal * dual, where primal is Primal(p) / c.
func GCDConjPD(p *polynomial.Poly) (gcd scalar.Expr, err error) {

	var v scalar.Symbol
	if v, err = indet(p); err != nil {
		return gcd, fmt.Errorf("cannot GCDConjPD: %w", err)
	}

	var c scalar.Expr
	if c, err = MaxRealPolyFact(p.Primal()); err != nil {
		return gcd, fmt.Errorf("cannot GCDConjPD: %w", err)
	}

	var reduced *polynomial.Poly
	if reduced, err = p.QuoExact(c, v); err != nil {
		return gcd, fmt.Errorf("cannot GCDConjPD: %w", err)
	}

	primal, _ := reduced.Primal().BQ()
	dual, _ := p.Dual().BQ()

	pdc := primal.Mul(dual.Conjugate()).Coeffs()
	pcd := primal.Conjugate().Mul(dual).Coeffs()

	gcd = c
	for _, x := range append(append([]scalar.Expr{}, pdc[:4]...), pcd[:4]...) {
		if gcd, err = scalar.GCD(gcd, x, v); err != nil {
			return scalar.Expr{}, fmt.Errorf("cannot GCDConjPD: %w", err)
		}
	}

	return
}

// IsReduced returns true if the primal and dual parts of p have no common real factor.
func IsReduced(p *polynomial.Poly) (bool, error) {

	v, err := indet(p)
	if err != nil {
		return false, fmt.Errorf("cannot IsReduced: %w", err)
	}

	primal, err := MaxRealPolyFact(p.Primal())
	if err != nil {
		return false, fmt.Errorf("cannot IsReduced: %w", err)
	}

	dual, err := MaxRealPolyFact(p.Dual())
	if err != nil {
		return false, fmt.Errorf("cannot IsReduced: %w", err)
	}

	gcd, err := scalar.GCD(primal, dual, v)
	if err != nil {
		return false, fmt.Errorf("cannot IsReduced: %w", err)
	}

	return gcd.IsOne(), nil
}
