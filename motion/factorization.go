package motion

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/biquat/polynomial"
	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils/factorization"
)

var (
	// ErrArgument is returned for polynomials that are not univariate
	// or do not have biquaternion coefficients.
	ErrArgument = polynomial.ErrArgument
	// ErrNotFactor is returned when a factor of the norm polynomial does not yield
	// a linear right factor of the polynomial.
	ErrNotFactor = errors.New("not a factor of the polynomial")
)

// Domain parameterizes the isolation of the roots of the norm polynomial.
type Domain struct {
	// Prec is the number of bits of precision of the root approximation.
	// The effective precision is increased with the size of the coefficients.
	Prec uint
}

// DefaultDomain is the Domain used when none is given.
var DefaultDomain = Domain{Prec: 128}

// IrreducibleFactors returns the leading coefficient of the univariate scalar polynomial
// norm and its monic real irreducible factors of degree one and two, sorted by the real
// part of their roots. Repeated factors are listed with their multiplicity. The factors
// have rational coefficients or coefficients in a real quadratic field Q(sqrt(d)), and
// factors requiring a larger field make the method return factorization.ErrNoFactor.
// A nil dom is replaced by DefaultDomain.
func IrreducibleFactors(norm *polynomial.Poly, dom *Domain) (lead scalar.Expr, factors []*polynomial.Poly, err error) {

	if dom == nil {
		dom = &DefaultDomain
	}

	indets := norm.Indets()
	if len(indets) != 1 {
		return lead, nil, fmt.Errorf("cannot IrreducibleFactors: %w: only univariate polynomials are supported but %v has indeterminates %v", ErrArgument, norm, indets)
	}

	v := indets[0]

	expr, ok := norm.Expr()
	if !ok {
		return lead, nil, fmt.Errorf("cannot IrreducibleFactors: %w: %v does not have scalar coefficients", ErrArgument, norm)
	}

	p, err := expr.ToUnivariate(v)
	if err != nil {
		return lead, nil, fmt.Errorf("cannot IrreducibleFactors: %w", err)
	}

	l, fs, err := factorization.RealFactors(p, dom.Prec)
	if err != nil {
		return lead, nil, fmt.Errorf("cannot IrreducibleFactors: %w", err)
	}

	factors = make([]*polynomial.Poly, len(fs))
	for i, f := range fs {

		e := scalar.FromUnivariate(f.Rat, v)

		if !f.IsRational() {
			var sqrt scalar.Expr
			if sqrt, err = scalar.Sqrt(f.Radicand); err != nil {
				return lead, nil, fmt.Errorf("cannot IrreducibleFactors: %w", err)
			}
			e = e.Add(scalar.FromUnivariate(f.Irr, v).Mul(sqrt))
		}

		factors[i] = polynomial.NewScalar(e, v)
	}

	return scalar.NewRat(l), factors, nil
}

// sameIndets returns true if p and q have the same indeterminates in the same order.
func sameIndets(p, q *polynomial.Poly) bool {
	a, b := p.Indets(), q.Indets()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SplitLinFactor splits off from p the linear right factor lin = t - h whose norm is
// the real polynomial f and returns the quotient quo such that p = quo * lin.
// The root h is -r1^-1 * r0, where r1*t + r0 is the remainder of the division of p
// by f. The method returns biquaternion.ErrNonInvertible if r1 is not invertible and
// ErrNotFactor if lin does not divide p.
func SplitLinFactor(p, f *polynomial.Poly) (quo, lin *polynomial.Poly, err error) {

	var v scalar.Symbol
	if v, err = indet(p); err != nil {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w", err)
	}

	if !sameIndets(p, f) {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w: %v and %v have different indeterminates", ErrArgument, p, f)
	}

	var rem *polynomial.Poly
	if _, rem, err = polynomial.Div(p, f, v, false); err != nil {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w", err)
	}

	if rem.Deg(v) > 1 {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w: norm factor %v has degree larger than two", ErrNotFactor, f)
	}

	r1, _ := rem.Coeff(v, 1).BQ()
	r0, _ := rem.Coeff(v, 0).BQ()

	inv, err := r1.Inv()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w", err)
	}

	root := inv.Mul(r0).Neg()

	lin = polynomial.Monomial(v, 1).Sub(polynomial.NewBiQuaternion(root, v))

	if quo, rem, err = polynomial.Div(p, lin, v, false); err != nil {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w", err)
	}

	if !rem.IsZero() {
		return nil, nil, fmt.Errorf("cannot SplitLinFactor: %w: %v does not divide %v", ErrNotFactor, lin, p)
	}

	return
}

// FactorizeFromList returns the linear factors of p associated to the given factors of its
// norm polynomial: the i-th linear factor has norm factors[i]. The factors are split off
// from the right, starting with the last one, so that the product of the returned list,
// from left to right, is p. The remaining quotient is prepended to the list if it is
// not 1, which happens if p is not monic or if the factors do not cover its norm.
func FactorizeFromList(p *polynomial.Poly, factors []*polynomial.Poly) (out []*polynomial.Poly, err error) {
	return factorizeFromList(p, factors, nil)
}

func factorizeFromList(p *polynomial.Poly, factors []*polynomial.Poly, onSplit func(f, lin *polynomial.Poly)) (out []*polynomial.Poly, err error) {

	if _, err = indet(p); err != nil {
		return nil, fmt.Errorf("cannot FactorizeFromList: %w", err)
	}

	out = make([]*polynomial.Poly, len(factors))

	quo := p
	for i := len(factors) - 1; i >= 0; i-- {

		if !sameIndets(p, factors[i]) {
			return nil, fmt.Errorf("cannot FactorizeFromList: %w: %v and factor %v have different indeterminates", ErrArgument, p, factors[i])
		}

		var lin *polynomial.Poly
		if quo, lin, err = SplitLinFactor(quo, factors[i]); err != nil {
			return nil, fmt.Errorf("cannot FactorizeFromList: factor %d: %w", i, err)
		}

		if onSplit != nil {
			onSplit(factors[i], lin)
		}

		out[i] = lin
	}

	if c, _ := quo.BQ(); !c.Equal(c.Algebra().One()) {
		out = append([]*polynomial.Poly{quo}, out...)
	}

	return
}

// Factorize returns the linear factors of p, ordered after the irreducible factors of
// its norm polynomial (see IrreducibleFactors). A nil dom is replaced by DefaultDomain.
func Factorize(p *polynomial.Poly, dom *Domain) ([]*polynomial.Poly, error) {

	factors, err := normFactors(p, dom)
	if err != nil {
		return nil, fmt.Errorf("cannot Factorize: %w", err)
	}

	out, err := FactorizeFromList(p, factors)
	if err != nil {
		return nil, fmt.Errorf("cannot Factorize: %w", err)
	}

	return out, nil
}

// normFactors returns the irreducible factors of the scalar part of the norm of p.
func normFactors(p *polynomial.Poly, dom *Domain) ([]*polynomial.Poly, error) {

	if _, err := indet(p); err != nil {
		return nil, err
	}

	_, factors, err := IrreducibleFactors(p.Norm().Scal(), dom)

	return factors, err
}
