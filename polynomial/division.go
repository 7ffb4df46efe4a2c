package polynomial

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/biquat/biquaternion"
	"github.com/tuneinsight/biquat/scalar"
)

var (
	// ErrArgument is returned for malformed polynomial arguments.
	ErrArgument = errors.New("invalid polynomial argument")
	// ErrZeroDivisor is returned when dividing by the zero polynomial.
	ErrZeroDivisor = errors.New("division by the zero polynomial")
)

// Div divides p1 by p2 with respect to v and returns the quotient and the remainder:
//   - if right is true,  p1 = p2 * quo + rem,
//   - if right is false, p1 = quo * p2 + rem,
//
// with rem = 0 or deg(rem, v) < deg(p2, v).
//
// Let c be the leading coefficient of p2 in v. p1 and p2 are first multiplied by
// c^-1, on the left if right is true and on the right otherwise, so that the
// normalized divisor has leading coefficient 1. The schoolbook division is then
// carried out and the remainder is multiplied back by c on the same side.
// The method returns biquaternion.ErrNonInvertible if c is not invertible.
func Div(p1, p2 *Poly, v scalar.Symbol, right bool) (quo, rem *Poly, err error) {

	if p2.IsZero() {
		return nil, nil, fmt.Errorf("cannot Div: %w", ErrZeroDivisor)
	}

	c := p2.LCoeff(v)

	var u *Poly
	if u, err = c.inv(); err != nil {
		return nil, nil, fmt.Errorf("cannot Div: leading coefficient: %w", err)
	}

	var f0, g0 *Poly
	if right {
		f0, g0 = u.Mul(p1), u.Mul(p2)
	} else {
		f0, g0 = p1.Mul(u), p2.Mul(u)
	}

	indets := union(p1.indets, p2.indets)
	indets = union(indets, []scalar.Symbol{v})

	quo = NewScalar(scalar.Zero(), indets...)
	if f0.ring == BiQuaternion {
		quo = quo.Lift(f0.bq.Algebra())
	}
	rem = f0

	n := p2.Deg(v)

	for m := rem.Deg(v); !rem.IsZero() && m >= n; m = rem.Deg(v) {

		mono := rem.LCoeff(v).Mul(Monomial(v, m-n))

		quo = quo.Add(mono)

		if right {
			rem = rem.Sub(g0.Mul(mono))
		} else {
			rem = rem.Sub(mono.Mul(g0))
		}
	}

	if right {
		rem = c.Mul(rem)
	} else {
		rem = rem.Mul(c)
	}

	return quo, NewScalar(scalar.Zero(), indets...).Add(rem), nil
}

// inv returns the inverse of a polynomial of degree zero.
func (p *Poly) inv() (*Poly, error) {

	if p.ring == BiQuaternion {
		q, err := p.bq.Inv()
		if err != nil {
			return nil, err
		}
		return p.with(scalar.Expr{}, q, p.indets), nil
	}

	if !p.scal.IsConstant() || p.scal.IsZero() {
		return nil, fmt.Errorf("%w: %v is not a unit of the coefficient ring", biquaternion.ErrNonInvertible, p.scal)
	}

	r, err := p.scal.Inv()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", biquaternion.ErrNonInvertible, err)
	}

	return p.with(r, biquaternion.BiQuaternion{}, p.indets), nil
}
