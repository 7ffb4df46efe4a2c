package bignum

import (
	"fmt"
	"math/big"
)

// Complex is a type for arbitrary precision complex number
type Complex [2]*big.Float

// NewComplex creates a new arbitrary precision complex number with prec bits of precision.
func NewComplex(prec uint) (c *Complex) {
	return &Complex{
		new(big.Float).SetPrec(prec),
		new(big.Float).SetPrec(prec),
	}
}

// ToComplex takes a complex128, float64, int, int64, *big.Int, *big.Rat, *big.Float or *Complex and returns a *Complex set to the given precision.
func ToComplex(value interface{}, prec uint) (cmplx *Complex) {

	cmplx = NewComplex(prec)

	switch value := value.(type) {
	case complex128:
		cmplx[0].SetFloat64(real(value))
		cmplx[1].SetFloat64(imag(value))
	case float64:
		cmplx[0].SetFloat64(value)
	case int:
		cmplx[0].SetInt64(int64(value))
	case int64:
		cmplx[0].SetInt64(value)
	case *big.Int:
		cmplx[0].SetInt(value)
	case *big.Rat:
		cmplx[0].SetRat(value)
	case *big.Float:
		cmplx[0].Set(value)
	case *Complex:
		cmplx[0].Set(value[0])
		cmplx[1].Set(value[1])
	default:
		panic(fmt.Errorf("invalid value.(type): must be int, int64, float64, complex128, *big.Int, *big.Rat, *big.Float or *Complex but is %T", value))
	}

	return
}

// IsReal returns true if the imaginary part is zero.
func (c *Complex) IsReal() bool {
	return c[1] == nil || c[1].Sign() == 0
}

// Set sets an arbitrary precision complex number
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Set(a[1])
	return c
}

// Prec returns the precision of the real part.
func (c *Complex) Prec() uint {
	return c[0].Prec()
}

// Clone returns a new copy of the target arbitrary precision complex number
func (c *Complex) Clone() *Complex {
	return &Complex{new(big.Float).Set(c[0]), new(big.Float).Set(c[1])}
}

// Real returns the real part as a big.Float
func (c *Complex) Real() *big.Float {
	return c[0]
}

// Imag returns the imaginary part as a big.Float
func (c *Complex) Imag() *big.Float {
	return c[1]
}

// Complex128 returns the arbitrary precision complex number as a complex128
func (c *Complex) Complex128() complex128 {

	real, _ := c[0].Float64()
	imag, _ := c[1].Float64()

	return complex(real, imag)
}

// Add adds two arbitrary precision complex numbers together
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(a[0], b[0])
	c[1].Add(a[1], b[1])
	return c
}

// Sub subtracts two arbitrary precision complex numbers together
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(a[0], b[0])
	c[1].Sub(a[1], b[1])
	return c
}

// Neg negates a and writes the result on c.
func (c *Complex) Neg(a *Complex) *Complex {
	c[0].Neg(a[0])
	c[1].Neg(a[1])
	return c
}

// Mul evaluates c = a * b.
// The operands may alias c.
func (c *Complex) Mul(a, b *Complex) *Complex {

	prec := c.Prec()

	re := new(big.Float).SetPrec(prec).Mul(a[0], b[0])
	tmp := new(big.Float).SetPrec(prec).Mul(a[1], b[1])
	re.Sub(re, tmp)

	im := new(big.Float).SetPrec(prec).Mul(a[0], b[1])
	tmp.Mul(a[1], b[0])
	im.Add(im, tmp)

	c[0].Set(re)
	c[1].Set(im)
	return c
}

// Quo evaluates c = a / b.
// The operands may alias c.
func (c *Complex) Quo(a, b *Complex) *Complex {

	prec := c.Prec()

	// den = b[0]^2 + b[1]^2
	den := new(big.Float).SetPrec(prec).Mul(b[0], b[0])
	tmp := new(big.Float).SetPrec(prec).Mul(b[1], b[1])
	den.Add(den, tmp)

	// re = a[0]*b[0] + a[1]*b[1]
	re := new(big.Float).SetPrec(prec).Mul(a[0], b[0])
	tmp.Mul(a[1], b[1])
	re.Add(re, tmp)

	// im = a[1]*b[0] - a[0]*b[1]
	im := new(big.Float).SetPrec(prec).Mul(a[1], b[0])
	tmp.Mul(a[0], b[1])
	im.Sub(im, tmp)

	c[0].Quo(re, den)
	c[1].Quo(im, den)
	return c
}

// Abs returns |c| with the precision of c.
func (c *Complex) Abs() *big.Float {
	prec := c.Prec()
	abs := new(big.Float).SetPrec(prec).Mul(c[0], c[0])
	tmp := new(big.Float).SetPrec(prec).Mul(c[1], c[1])
	abs.Add(abs, tmp)
	return abs.Sqrt(abs)
}

// String returns the complex number as a string with 16 significant digits.
func (c *Complex) String() string {
	return fmt.Sprintf("(%s + %si)", c[0].Text('g', 16), c[1].Text('g', 16))
}
