package scalar

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/biquat/utils/bignum"
)

// ToUnivariate returns e as a dense polynomial in s.
// It fails with ErrNotUnivariate if any other symbol occurs in e.
func (e Expr) ToUnivariate(s Symbol) (*bignum.Polynomial, error) {
	coeffs := make([]*big.Rat, e.Degree(s)+1)
	for _, t := range e.terms {
		if len(t.mono.without(s)) != 0 {
			return nil, fmt.Errorf("cannot ToUnivariate: %w in %s: %s", ErrNotUnivariate, s, e)
		}
		if t.rad != nil {
			return nil, fmt.Errorf("cannot ToUnivariate: %w: %s", ErrIrrational, e)
		}
		coeffs[t.mono.degree(s)] = t.coeff
	}
	return bignum.NewPolynomial(coeffs), nil
}

// FromUnivariate returns the expression sum_i p.Coeffs[i] * s^i.
func FromUnivariate(p *bignum.Polynomial, s Symbol) Expr {
	b := builder{}
	for i, c := range p.Coeffs {
		if i == 0 {
			b.add(nil, nil, c)
		} else {
			b.add(monomial{{sym: s, exp: i}}, nil, c)
		}
	}
	return b.expr()
}

// GCD returns the monic greatest common divisor of a and b in Q[s].
// GCD(0, 0) is 0.
func GCD(a, b Expr, s Symbol) (Expr, error) {

	pa, err := a.ToUnivariate(s)
	if err != nil {
		return Expr{}, fmt.Errorf("cannot GCD: %w", err)
	}

	pb, err := b.ToUnivariate(s)
	if err != nil {
		return Expr{}, fmt.Errorf("cannot GCD: %w", err)
	}

	return FromUnivariate(bignum.GCD(pa, pb), s), nil
}

// QuoExact returns a / b in Q[s] and fails with ErrNotDivisible if b does not divide a.
func QuoExact(a, b Expr, s Symbol) (Expr, error) {

	pa, err := a.ToUnivariate(s)
	if err != nil {
		return Expr{}, fmt.Errorf("cannot QuoExact: %w", err)
	}

	pb, err := b.ToUnivariate(s)
	if err != nil {
		return Expr{}, fmt.Errorf("cannot QuoExact: %w", err)
	}

	quo, rem, err := pa.QuoRem(pb)
	if err != nil {
		return Expr{}, fmt.Errorf("cannot QuoExact: %w", err)
	}

	if !rem.IsZero() {
		return Expr{}, fmt.Errorf("cannot QuoExact: %w: %s by %s", ErrNotDivisible, a, b)
	}

	return FromUnivariate(quo, s), nil
}
