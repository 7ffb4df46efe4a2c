package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.SetRat(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float but is %T", x))
	}

	return
}

// Round returns round(x) as a *big.Int, rounding half away from zero.
func Round(x *big.Float) (r *big.Int) {
	tmp := new(big.Float).SetPrec(x.Prec()).Set(x)
	half := new(big.Float).SetFloat64(0.5)
	if tmp.Sign() >= 0 {
		tmp.Add(tmp, half)
	} else {
		tmp.Sub(tmp, half)
	}

	r = new(big.Int)
	tmp.Int(r)
	return
}

// RoundToDenominator returns the rational k/den closest to x, where k is an integer.
func RoundToDenominator(x *big.Float, den *big.Int) *big.Rat {
	scaled := new(big.Float).SetPrec(x.Prec()).SetInt(den)
	scaled.Mul(scaled, x)
	return new(big.Rat).SetFrac(Round(scaled), den)
}

// Root returns x^(1/n) for x > 0, with the precision of x.
func Root(x *big.Float, n int) *big.Float {
	if x.Sign() <= 0 {
		panic(fmt.Errorf("cannot Root: x must be positive but is %s", x.Text('g', 10)))
	}
	if n == 1 {
		return new(big.Float).Set(x)
	}
	e := NewFloat(1, x.Prec())
	e.Quo(e, NewFloat(n, x.Prec()))
	return bigfloat.Pow(x, e)
}
