package bignum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/tuneinsight/biquat/utils"
)

// ErrZeroDivisor is returned when dividing by the zero polynomial.
var ErrZeroDivisor = errors.New("division by the zero polynomial")

// Polynomial is a dense univariate polynomial with rational coefficients
// in ascending order of powers. The zero polynomial has no coefficients
// and a degree of -1.
type Polynomial struct {
	Coeffs []*big.Rat
}

// NewPolynomial creates a new polynomial from the input coefficients given in ascending order:
// coeffs: []int, []int64, []*big.Int or []*big.Rat
func NewPolynomial(coeffs interface{}) *Polynomial {
	var coefficients []*big.Rat

	switch coeffs := coeffs.(type) {
	case []int:
		coefficients = make([]*big.Rat, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = new(big.Rat).SetInt64(int64(c))
		}
	case []int64:
		coefficients = make([]*big.Rat, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = new(big.Rat).SetInt64(c)
		}
	case []*big.Int:
		coefficients = make([]*big.Rat, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = new(big.Rat).SetInt(c)
		}
	case []*big.Rat:
		coefficients = make([]*big.Rat, len(coeffs))
		for i, c := range coeffs {
			if c != nil {
				coefficients[i] = new(big.Rat).Set(c)
			} else {
				coefficients[i] = new(big.Rat)
			}
		}
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{int, int64, *big.Int, *big.Rat} but is %T", coeffs))
	}

	return (&Polynomial{Coeffs: coefficients}).trim()
}

// trim removes the vanishing leading coefficients in place.
func (p *Polynomial) trim() *Polynomial {
	n := len(p.Coeffs)
	for n > 0 && p.Coeffs[n-1].Sign() == 0 {
		n--
	}
	p.Coeffs = p.Coeffs[:n]
	return p
}

func zeros(n int) []*big.Rat {
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat)
	}
	return c
}

// Degree returns the degree of the polynomial, -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.Coeffs) == 0
}

// IsOne returns true if p is the constant polynomial 1.
func (p *Polynomial) IsOne() bool {
	return len(p.Coeffs) == 1 && p.Coeffs[0].Cmp(big.NewRat(1, 1)) == 0
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return NewPolynomial(p.Coeffs)
}

// Lead returns a copy of the leading coefficient of p, 0 for the zero polynomial.
func (p *Polynomial) Lead() *big.Rat {
	if p.IsZero() {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.Coeffs[len(p.Coeffs)-1])
}

// Equal returns true if p and q have the same coefficients.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(q.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	c := zeros(utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range p.Coeffs {
		c[i].Add(c[i], p.Coeffs[i])
	}
	for i := range q.Coeffs {
		c[i].Add(c[i], q.Coeffs[i])
	}
	return (&Polynomial{Coeffs: c}).trim()
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	c := make([]*big.Rat, len(p.Coeffs))
	for i := range p.Coeffs {
		c[i] = new(big.Rat).Neg(p.Coeffs[i])
	}
	return &Polynomial{Coeffs: c}
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

// Mul returns p * q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return &Polynomial{}
	}
	c := zeros(len(p.Coeffs) + len(q.Coeffs) - 1)
	tmp := new(big.Rat)
	for i := range p.Coeffs {
		if p.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := range q.Coeffs {
			c[i+j].Add(c[i+j], tmp.Mul(p.Coeffs[i], q.Coeffs[j]))
		}
	}
	return (&Polynomial{Coeffs: c}).trim()
}

// MulRat returns a * p.
func (p *Polynomial) MulRat(a *big.Rat) *Polynomial {
	c := make([]*big.Rat, len(p.Coeffs))
	for i := range p.Coeffs {
		c[i] = new(big.Rat).Mul(p.Coeffs[i], a)
	}
	return (&Polynomial{Coeffs: c}).trim()
}

// Monic returns p divided by its leading coefficient.
// The zero polynomial is returned unchanged.
func (p *Polynomial) Monic() *Polynomial {
	if p.IsZero() {
		return &Polynomial{}
	}
	return p.MulRat(new(big.Rat).Inv(p.Lead()))
}

// Derivative returns the formal derivative of p.
func (p *Polynomial) Derivative() *Polynomial {
	if len(p.Coeffs) < 2 {
		return &Polynomial{}
	}
	c := make([]*big.Rat, len(p.Coeffs)-1)
	for i := 1; i < len(p.Coeffs); i++ {
		c[i-1] = new(big.Rat).Mul(p.Coeffs[i], new(big.Rat).SetInt64(int64(i)))
	}
	return (&Polynomial{Coeffs: c}).trim()
}

// QuoRem returns the quotient and remainder of the euclidean division of p by q.
func (p *Polynomial) QuoRem(q *Polynomial) (quo, rem *Polynomial, err error) {

	if q.IsZero() {
		return nil, nil, fmt.Errorf("cannot QuoRem: %w", ErrZeroDivisor)
	}

	dp, dq := p.Degree(), q.Degree()

	if dp < dq {
		return &Polynomial{}, p.Clone(), nil
	}

	r := NewPolynomial(p.Coeffs).Coeffs
	qc := zeros(dp - dq + 1)

	lead := q.Coeffs[dq]
	tmp := new(big.Rat)

	for k := dp; k >= dq; k-- {
		if r[k].Sign() == 0 {
			continue
		}
		t := new(big.Rat).Quo(r[k], lead)
		qc[k-dq] = t
		for j := 0; j <= dq; j++ {
			r[k-dq+j].Sub(r[k-dq+j], tmp.Mul(t, q.Coeffs[j]))
		}
	}

	return (&Polynomial{Coeffs: qc}).trim(), (&Polynomial{Coeffs: r}).trim(), nil
}

// QuoExact returns p / q and an error if q does not divide p.
func (p *Polynomial) QuoExact(q *Polynomial) (*Polynomial, error) {
	quo, rem, err := p.QuoRem(q)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() {
		return nil, fmt.Errorf("cannot QuoExact: %v does not divide %v", q, p)
	}
	return quo, nil
}

// Divides returns true if p divides q.
func (p *Polynomial) Divides(q *Polynomial) bool {
	if p.IsZero() {
		return q.IsZero()
	}
	_, rem, err := q.QuoRem(p)
	return err == nil && rem.IsZero()
}

// GCD returns the monic greatest common divisor of a and b.
// GCD(0, 0) is the zero polynomial.
func GCD(a, b *Polynomial) *Polynomial {
	a, b = a.Clone(), b.Clone()
	for !b.IsZero() {
		_, r, _ := a.QuoRem(b)
		a, b = b, r
	}
	return a.Monic()
}

// SquareFree returns the square-free decomposition of p with Yun's algorithm:
// p = lead(p) * prod_i out[i]^(i+1), where every out[i] is monic and square-free.
// Entries for multiplicities that do not occur are the constant 1.
func (p *Polynomial) SquareFree() (out []*Polynomial) {

	if p.Degree() < 1 {
		return nil
	}

	f := p.Monic()
	df := f.Derivative()
	a0 := GCD(f, df)

	b, _ := f.QuoExact(a0)
	c, _ := df.QuoExact(a0)
	d := c.Sub(b.Derivative())

	for b.Degree() > 0 {
		a := GCD(b, d)
		out = append(out, a)
		b, _ = b.QuoExact(a)
		c, _ = d.QuoExact(a)
		d = c.Sub(b.Derivative())
	}

	return
}

// Primitive returns the integer coefficients of the primitive polynomial
// proportional to p with a positive leading coefficient.
func (p *Polynomial) Primitive() (coeffs []*big.Int) {

	if p.IsZero() {
		return nil
	}

	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, c := range p.Coeffs {
		den := c.Denom()
		g.GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Quo(den, g))
	}

	coeffs = make([]*big.Int, len(p.Coeffs))
	content := new(big.Int)
	for i, c := range p.Coeffs {
		v := new(big.Int).Mul(c.Num(), new(big.Int).Quo(lcm, c.Denom()))
		coeffs[i] = v
		content.GCD(nil, nil, content, new(big.Int).Abs(v))
	}

	if p.Lead().Sign() < 0 {
		content.Neg(content)
	}

	for i := range coeffs {
		coeffs[i].Quo(coeffs[i], content)
	}

	return
}

// Evaluate returns p(x).
func (p *Polynomial) Evaluate(x *big.Rat) (y *big.Rat) {
	y = new(big.Rat)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.Coeffs[i])
	}
	return
}

// EvaluateComplex returns p(x) with the precision of x.
func (p *Polynomial) EvaluateComplex(x *Complex) (y *Complex) {
	prec := x.Prec()
	y = NewComplex(prec)
	c := NewComplex(prec)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		c[0].SetRat(p.Coeffs[i])
		y.Add(y, c)
	}
	return
}

// String returns the polynomial in descending order of powers of x.
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		c := p.Coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		if sb.Len() > 0 {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		} else if c.Sign() < 0 {
			sb.WriteString("-")
		}
		abs := new(big.Rat).Abs(c)
		if i == 0 || abs.Cmp(big.NewRat(1, 1)) != 0 {
			sb.WriteString(abs.RatString())
			if i > 0 {
				sb.WriteString("*")
			}
		}
		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	return sb.String()
}
