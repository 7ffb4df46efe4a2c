// Package factorization implements the factorization of univariate rational polynomials
// into real irreducible factors of degree one and two, whose coefficients are rational or
// lie in a real quadratic field.
package factorization

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/tuneinsight/biquat/utils"
	"github.com/tuneinsight/biquat/utils/bignum"
)

// ErrNoFactor is returned when a factor of the polynomial cannot be written as a
// product of real factors of degree at most two over the rationals or over a real
// quadratic field.
var ErrNoFactor = errors.New("no real factor of degree at most two over a quadratic field")

// MinPrec is the minimum number of bits of precision used by the root isolation.
const MinPrec = 64

// RealFactors returns the leading coefficient of p and monic real factors of p of degree
// one or two whose product, times the leading coefficient, is p. Each real rational root
// yields a linear factor and each pair of roots conjugate over the rationals yields a
// quadratic factor with rational coefficients. Two pairs of complex conjugate roots whose
// quadratics are not rational yield two quadratic factors with coefficients in Q(sqrt(d)),
// conjugate to each other, when their product is a rational factor of p. Factors are
// sorted by the real part of their roots and repeated factors are listed as many times
// as their multiplicity.
//
// Roots are approximated with prec bits (plus a margin derived from the coefficient sizes)
// and every candidate factor is accepted only if it divides the polynomial exactly.
// Factors requiring a field of higher degree make the method return ErrNoFactor.
func RealFactors(p *bignum.Polynomial, prec uint) (lead *big.Rat, factors []*Factor, err error) {

	lead = p.Lead()

	if p.Degree() < 1 {
		return
	}

	if prec < MinPrec {
		prec = MinPrec
	}

	for i, a := range p.SquareFree() {

		if a.Degree() < 1 {
			continue
		}

		var fs []*Factor
		if fs, err = splitSquareFree(a, prec); err != nil {
			return nil, nil, fmt.Errorf("cannot RealFactors: %w", err)
		}

		for _, f := range fs {
			for k := 0; k <= i; k++ {
				factors = append(factors, f)
			}
		}
	}

	sortPrec := prec + 64

	sort.SliceStable(factors, func(i, j int) bool {
		return lessFactor(factors[i], factors[j], sortPrec)
	})

	return
}

// splitSquareFree splits the monic square-free polynomial a.
func splitSquareFree(a *bignum.Polynomial, prec uint) (factors []*Factor, err error) {

	n := a.Degree()

	if n == 1 {
		return []*Factor{{Rat: a}}, nil
	}

	// Coefficients of monic rational factors of a have denominators dividing
	// the leading coefficient of the primitive integer polynomial proportional to a.
	// Symmetric functions of degree two in the coefficients of the quadratic factors
	// over the reals have denominators dividing its square.
	primitive := a.Primitive()
	den := primitive[n]
	den2 := new(big.Int).Mul(den, den)

	bitLens := make([]int, len(primitive))
	for i, c := range primitive {
		bitLens[i] = c.BitLen()
	}
	maxBits := utils.MaxSlice(bitLens)

	workPrec := prec + uint(4*maxBits+2*den.BitLen()) + 32

	roots := Weierstrass(a, workPrec)

	realTol := new(big.Float).SetPrec(workPrec).SetMantExp(big.NewFloat(1), -int(workPrec/2))

	rest := a.Clone()

	var unmatched []*big.Float
	var complexRoots []*bignum.Complex

	for _, z := range roots {

		bound := new(big.Float).SetPrec(workPrec).Add(bignum.NewFloat(1, workPrec), z.Abs())
		bound.Mul(bound, realTol)

		if new(big.Float).Abs(z.Imag()).Cmp(bound) <= 0 {

			r := bignum.RoundToDenominator(z.Real(), den)
			if rest.Evaluate(r).Sign() == 0 {
				lin := bignum.NewPolynomial([]*big.Rat{new(big.Rat).Neg(r), big.NewRat(1, 1)})
				rest, _ = rest.QuoExact(lin)
				factors = append(factors, &Factor{Rat: lin})
			} else {
				unmatched = append(unmatched, z.Real())
			}

		} else if z.Imag().Sign() > 0 {
			complexRoots = append(complexRoots, z)
		}
	}

	// (x - z)(x - conj(z)) = x^2 + bx + c with b = -2Re(z) and c = |z|^2
	var pairs [][2]*big.Float

	for _, z := range complexRoots {

		b := new(big.Float).SetPrec(workPrec).Add(z.Real(), z.Real())
		b.Neg(b)
		c := z.Abs()
		c.Mul(c, c)

		quad := quadratic(bignum.RoundToDenominator(b, den), bignum.RoundToDenominator(c, den))

		if quad.Divides(rest) {
			rest, _ = rest.QuoExact(quad)
			factors = append(factors, &Factor{Rat: quad})
		} else {
			pairs = append(pairs, [2]*big.Float{b, c})
		}
	}

	// Irrational real roots are paired with their conjugate over the rationals.
	used := make([]bool, len(unmatched))
	for i := range unmatched {
		if used[i] {
			continue
		}
		for j := i + 1; j < len(unmatched); j++ {

			if used[j] {
				continue
			}

			b := new(big.Float).SetPrec(workPrec).Add(unmatched[i], unmatched[j])
			b.Neg(b)
			c := new(big.Float).SetPrec(workPrec).Mul(unmatched[i], unmatched[j])

			quad := quadratic(bignum.RoundToDenominator(b, den), bignum.RoundToDenominator(c, den))

			if quad.Divides(rest) {
				rest, _ = rest.QuoExact(quad)
				factors = append(factors, &Factor{Rat: quad})
				used[i], used[j] = true, true
				break
			}
		}
	}

	// Complex pairs whose quadratic is not rational are paired with their
	// conjugate over a real quadratic field.
	used = make([]bool, len(pairs))
	for i := range pairs {
		if used[i] {
			continue
		}
		for j := i + 1; j < len(pairs); j++ {

			if used[j] {
				continue
			}

			quartic, fi, fj, ok := splitQuartic(pairs[i], pairs[j], den, den2, workPrec)
			if !ok || !quartic.Divides(rest) {
				continue
			}

			rest, _ = rest.QuoExact(quartic)
			factors = append(factors, fi, fj)
			used[i], used[j] = true, true
			break
		}
	}

	if rest.Degree() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFactor, rest)
	}

	return factors, nil
}

// splitQuartic returns the rational quartic q = (x^2 + b1x + c1)(x^2 + b2x + c2), where
// (b1, c1) and (b2, c2) approximate the coefficients of the given quadratics, and its
// two quadratic factors with coefficients in Q(sqrt(d)), for d the square-free part of
// the discriminants of b1, b2 and of c1, c2. It returns false if no such field exists.
func splitQuartic(p1, p2 [2]*big.Float, den, den2 *big.Int, prec uint) (q *bignum.Polynomial, f1, f2 *Factor, ok bool) {

	b1, c1 := p1[0], p1[1]
	b2, c2 := p2[0], p2[1]

	mul := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(x, y) }
	add := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Add(x, y) }

	q = bignum.NewPolynomial([]*big.Rat{
		bignum.RoundToDenominator(mul(c1, c2), den),
		bignum.RoundToDenominator(add(mul(b1, c2), mul(b2, c1)), den),
		bignum.RoundToDenominator(add(add(c1, c2), mul(b1, b2)), den),
		bignum.RoundToDenominator(add(b1, b2), den),
		big.NewRat(1, 1),
	})

	// b1, b2 are the roots of y^2 - sb*y + pb and c1, c2 those of y^2 - sc*y + pc.
	sb, pb := q.Coeffs[3], bignum.RoundToDenominator(mul(b1, b2), den2)
	sc, pc := bignum.RoundToDenominator(add(c1, c2), den2), q.Coeffs[0]

	rb, db, okb := halfSqrtDiscriminant(sb, pb)
	rc, dc, okc := halfSqrtDiscriminant(sc, pc)

	if !okb || !okc {
		return nil, nil, nil, false
	}

	var radicand *big.Int
	switch {
	case db != nil && dc != nil && db.Cmp(dc) != 0:
		return nil, nil, nil, false
	case db != nil:
		radicand = db
	case dc != nil:
		radicand = dc
	default:
		return nil, nil, nil, false
	}

	half := big.NewRat(1, 2)

	// b1 = sb/2 + vb*sqrt(d), the sign of vb given by b1 - b2.
	vb := new(big.Rat).Set(rb)
	if add(b1, new(big.Float).Neg(b2)).Sign() < 0 {
		vb.Neg(vb)
	}

	vc := new(big.Rat).Set(rc)
	if add(c1, new(big.Float).Neg(c2)).Sign() < 0 {
		vc.Neg(vc)
	}

	f1 = &Factor{
		Rat:      quadratic(new(big.Rat).Mul(sb, half), new(big.Rat).Mul(sc, half)),
		Irr:      bignum.NewPolynomial([]*big.Rat{vc, vb}),
		Radicand: radicand,
	}

	f2 = f1.Conjugate()

	if !f1.normIs(q) {
		return nil, nil, nil, false
	}

	return q, f1, f2, true
}

// halfSqrtDiscriminant returns r and the square-free integer d > 1 such that
// sqrt(s^2 - 4p) / 2 = r * sqrt(d), with r = 0 and d = nil if the discriminant is zero.
// It returns false if the discriminant is negative or a non-zero rational square,
// or if its square-free part cannot be determined.
func halfSqrtDiscriminant(s, p *big.Rat) (r *big.Rat, d *big.Int, ok bool) {

	disc := new(big.Rat).Mul(s, s)
	disc.Sub(disc, new(big.Rat).Mul(big.NewRat(4, 1), p))

	switch disc.Sign() {
	case -1:
		return nil, nil, false
	case 0:
		return new(big.Rat), nil, true
	}

	// sqrt(num/den) = sqrt(num*den)/den
	nd := new(big.Int).Mul(disc.Num(), disc.Denom())

	core, root, err := bignum.SquareFreePart(nd)
	if err != nil || core.Cmp(big.NewInt(1)) == 0 {
		return nil, nil, false
	}

	r = new(big.Rat).SetFrac(root, new(big.Int).Mul(disc.Denom(), big.NewInt(2)))

	return r, core, true
}

// normIs returns true if f times its conjugate is q.
func (f *Factor) normIs(q *bignum.Polynomial) bool {

	// f = x^2 + (u1 + v1*sqrt(d))x + (u2 + v2*sqrt(d))
	u2, u1 := f.Rat.Coeffs[0], f.Rat.Coeffs[1]

	v := make([]*big.Rat, 2)
	for i := range v {
		v[i] = new(big.Rat)
		if i < len(f.Irr.Coeffs) {
			v[i].Set(f.Irr.Coeffs[i])
		}
	}
	v2, v1 := v[0], v[1]

	d := new(big.Rat).SetInt(f.Radicand)

	mul := func(xs ...*big.Rat) *big.Rat {
		r := big.NewRat(1, 1)
		for _, x := range xs {
			r.Mul(r, x)
		}
		return r
	}
	two := big.NewRat(2, 1)

	// x^3: 2u1, x^2: 2u2 + u1^2 - v1^2 d, x: 2(u1u2 - v1v2 d), 1: u2^2 - v2^2 d
	want := bignum.NewPolynomial([]*big.Rat{
		new(big.Rat).Sub(mul(u2, u2), mul(v2, v2, d)),
		mul(two, new(big.Rat).Sub(mul(u1, u2), mul(v1, v2, d))),
		new(big.Rat).Add(mul(two, u2), new(big.Rat).Sub(mul(u1, u1), mul(v1, v1, d))),
		mul(two, u1),
		big.NewRat(1, 1),
	})

	return want.Equal(q)
}

// quadratic returns x^2 + bx + c.
func quadratic(b, c *big.Rat) *bignum.Polynomial {
	return bignum.NewPolynomial([]*big.Rat{c, b, big.NewRat(1, 1)})
}

// lessFactor orders factors by the real part of their roots,
// linear factors first, then by constant coefficient.
func lessFactor(f, g *Factor, prec uint) bool {
	if cmp := center(f, prec).Cmp(center(g, prec)); cmp != 0 {
		return cmp < 0
	}
	if f.Degree() != g.Degree() {
		return f.Degree() < g.Degree()
	}
	return f.coeff(0, prec).Cmp(g.coeff(0, prec)) < 0
}

// center returns the real part of the roots of the monic factor f of degree one or two.
func center(f *Factor, prec uint) *big.Float {
	c := f.coeff(f.Degree()-1, prec)
	c.Neg(c)
	if f.Degree() == 2 {
		c.Quo(c, bignum.NewFloat(2, prec))
	}
	return c
}
