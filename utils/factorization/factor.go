package factorization

import (
	"math/big"
	"strings"

	"github.com/tuneinsight/biquat/utils/bignum"
)

// Factor is a monic real polynomial of degree one or two whose i-th coefficient is
// Rat.Coeffs[i] + Irr.Coeffs[i] * sqrt(Radicand). Irr and Radicand are nil for factors
// with rational coefficients, otherwise Radicand is a square-free integer larger than one.
type Factor struct {
	Rat      *bignum.Polynomial
	Irr      *bignum.Polynomial
	Radicand *big.Int
}

// Degree returns the degree of f.
func (f *Factor) Degree() int {
	return f.Rat.Degree()
}

// IsRational returns true if f has rational coefficients.
func (f *Factor) IsRational() bool {
	return f.Irr == nil
}

// Equal returns true if f and g have the same coefficients.
func (f *Factor) Equal(g *Factor) bool {
	if f.IsRational() || g.IsRational() {
		return f.IsRational() && g.IsRational() && f.Rat.Equal(g.Rat)
	}
	return f.Radicand.Cmp(g.Radicand) == 0 && f.Rat.Equal(g.Rat) && f.Irr.Equal(g.Irr)
}

// Conjugate returns f with sqrt(Radicand) replaced by -sqrt(Radicand).
func (f *Factor) Conjugate() *Factor {
	if f.IsRational() {
		return f
	}
	return &Factor{Rat: f.Rat.Clone(), Irr: f.Irr.Neg(), Radicand: new(big.Int).Set(f.Radicand)}
}

// coeff returns an approximation of the i-th coefficient of f.
func (f *Factor) coeff(i int, prec uint) *big.Float {

	x := bignum.NewFloat(f.Rat.Coeffs[i], prec)

	if f.Irr != nil && i < len(f.Irr.Coeffs) {
		s := new(big.Float).SetPrec(prec).SetInt(f.Radicand)
		s.Sqrt(s)
		s.Mul(s, bignum.NewFloat(f.Irr.Coeffs[i], prec))
		x.Add(x, s)
	}

	return x
}

// String returns f as a polynomial in x, e.g. "1*x^2 + (0 + 1*sqrt(2))*x + 1".
func (f *Factor) String() string {

	if f.IsRational() {
		return f.Rat.String()
	}

	var sb strings.Builder

	for i := f.Degree(); i >= 0; i-- {

		if i < f.Degree() {
			sb.WriteString(" + ")
		}

		if i < len(f.Irr.Coeffs) && f.Irr.Coeffs[i].Sign() != 0 {
			sb.WriteString("(" + f.Rat.Coeffs[i].RatString() + " + " + f.Irr.Coeffs[i].RatString() + "*sqrt(" + f.Radicand.String() + "))")
		} else {
			sb.WriteString(f.Rat.Coeffs[i].RatString())
		}

		switch i {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			sb.WriteString("*x^2")
		}
	}

	return sb.String()
}
