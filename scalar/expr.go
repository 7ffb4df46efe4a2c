package scalar

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/tuneinsight/biquat/utils"
	"github.com/tuneinsight/biquat/utils/bignum"
)

var (
	// ErrInvalidType is returned when a value cannot be interpreted as a scalar.
	ErrInvalidType = errors.New("invalid scalar type")
	// ErrNotUnivariate is returned when an expression depends on more than the requested symbol.
	ErrNotUnivariate = errors.New("expression is not univariate")
	// ErrNotDivisible is returned by exact divisions with a non-zero remainder.
	ErrNotDivisible = errors.New("expression is not divisible")
	// ErrIrrational is returned when an expression with irrational coefficients
	// is used where rational coefficients are required.
	ErrIrrational = errors.New("expression has irrational coefficients")
	// ErrNotInvertible is returned by Inv for zero or non-constant expressions.
	ErrNotInvertible = errors.New("expression is not invertible")
)

// Symbol is a named commuting indeterminate.
type Symbol string

// Expr returns the expression consisting of the symbol alone.
func (s Symbol) Expr() Expr {
	b := builder{}
	b.add(monomial{{sym: s, exp: 1}}, nil, big.NewRat(1, 1))
	return b.expr()
}

// String returns the name of the symbol.
func (s Symbol) String() string {
	return string(s)
}

// Symbols returns the symbols with the given names.
func Symbols(names ...string) (syms []Symbol) {
	syms = make([]Symbol, len(names))
	for i := range names {
		syms[i] = Symbol(names[i])
	}
	return
}

type power struct {
	sym Symbol
	exp int
}

// monomial is a product of powers sorted by symbol with positive exponents.
type monomial []power

func (m monomial) key() string {
	var sb strings.Builder
	for i, p := range m {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(string(p.sym))
		sb.WriteByte(0x1e)
		sb.WriteString(strconv.Itoa(p.exp))
	}
	return sb.String()
}

func (m monomial) mul(o monomial) (r monomial) {
	r = make(monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].sym < o[j].sym:
			r = append(r, m[i])
			i++
		case m[i].sym > o[j].sym:
			r = append(r, o[j])
			j++
		default:
			r = append(r, power{sym: m[i].sym, exp: m[i].exp + o[j].exp})
			i++
			j++
		}
	}
	r = append(r, m[i:]...)
	return append(r, o[j:]...)
}

func (m monomial) degree(s Symbol) int {
	for _, p := range m {
		if p.sym == s {
			return p.exp
		}
	}
	return 0
}

func (m monomial) without(s Symbol) (r monomial) {
	r = make(monomial, 0, len(m))
	for _, p := range m {
		if p.sym != s {
			r = append(r, p)
		}
	}
	return
}

func (m monomial) totalDegree() (d int) {
	for _, p := range m {
		d += p.exp
	}
	return
}

// term is coeff * sqrt(rad) * mono, where rad is a square-free integer
// larger than one, or nil for a rational coefficient.
type term struct {
	mono  monomial
	rad   *big.Int
	coeff *big.Rat
}

func termKey(m monomial, rad *big.Int) string {
	if rad == nil {
		return m.key()
	}
	return m.key() + "\x1d" + rad.String()
}

// Expr is an immutable multivariate polynomial whose coefficients are rational
// linear combinations of square roots of square-free integers, always kept in
// expanded form. The zero value is the zero expression.
type Expr struct {
	terms map[string]term
}

// builder accumulates terms; the coefficients it stores are never shared.
type builder map[string]term

func (b builder) add(m monomial, rad *big.Int, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	k := termKey(m, rad)
	if t, ok := b[k]; ok {
		s := new(big.Rat).Add(t.coeff, c)
		if s.Sign() == 0 {
			delete(b, k)
		} else {
			b[k] = term{mono: t.mono, rad: t.rad, coeff: s}
		}
		return
	}
	b[k] = term{mono: m, rad: rad, coeff: new(big.Rat).Set(c)}
}

func (b builder) expr() Expr {
	if len(b) == 0 {
		return Expr{}
	}
	return Expr{terms: b}
}

// NewRat returns the constant expression x.
func NewRat(x *big.Rat) Expr {
	b := builder{}
	b.add(nil, nil, x)
	return b.expr()
}

// NewInt returns the constant expression x.
func NewInt(x int64) Expr {
	return NewRat(new(big.Rat).SetInt64(x))
}

// NewFrac returns the constant expression a/b.
func NewFrac(a, b int64) Expr {
	return NewRat(big.NewRat(a, b))
}

// Zero returns the zero expression.
func Zero() Expr {
	return Expr{}
}

// One returns the constant expression 1.
func One() Expr {
	return NewInt(1)
}

// Parse interprets x as a scalar expression.
// Accepted types are: int, int32, int64, uint, uint32, uint64, float64 (converted exactly),
// string (rational literal such as "-3/4"), *big.Int, *big.Rat, Symbol and Expr.
func Parse(x interface{}) (Expr, error) {
	switch x := x.(type) {
	case nil:
		return Expr{}, nil
	case int, int64, uint64, *big.Int:
		return NewRat(bignum.NewRat(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case uint:
		return NewRat(bignum.NewRat(uint64(x))), nil
	case uint32:
		return NewRat(bignum.NewRat(uint64(x))), nil
	case float64:
		r := new(big.Rat)
		if r.SetFloat64(x) == nil {
			return Expr{}, fmt.Errorf("%w: non-finite float %v", ErrInvalidType, x)
		}
		return NewRat(r), nil
	case string:
		r, ok := new(big.Rat).SetString(x)
		if !ok {
			return Expr{}, fmt.Errorf("%w: invalid rational literal %q", ErrInvalidType, x)
		}
		return NewRat(r), nil
	case *big.Rat:
		return NewRat(x), nil
	case Symbol:
		return x.Expr(), nil
	case Expr:
		return x, nil
	default:
		return Expr{}, fmt.Errorf("%w: %T", ErrInvalidType, x)
	}
}

// New is the panicking counterpart of Parse.
func New(x interface{}) Expr {
	e, err := Parse(x)
	if err != nil {
		panic(fmt.Errorf("cannot New: %w", err))
	}
	return e
}

// IsZero returns true if e is the zero expression.
func (e Expr) IsZero() bool {
	return len(e.terms) == 0
}

// IsConstant returns true if no symbol occurs in e.
func (e Expr) IsConstant() bool {
	for _, t := range e.terms {
		if len(t.mono) != 0 {
			return false
		}
	}
	return true
}

// IsRational returns true if every coefficient of e is rational.
func (e Expr) IsRational() bool {
	for _, t := range e.terms {
		if t.rad != nil {
			return false
		}
	}
	return true
}

// Rat returns the value of e and true if e is a rational constant.
func (e Expr) Rat() (*big.Rat, bool) {
	switch len(e.terms) {
	case 0:
		return new(big.Rat), true
	case 1:
		if t, ok := e.terms[""]; ok {
			return new(big.Rat).Set(t.coeff), true
		}
	}
	return nil, false
}

// IsOne returns true if e is the constant 1.
func (e Expr) IsOne() bool {
	r, ok := e.Rat()
	return ok && r.Cmp(big.NewRat(1, 1)) == 0
}

// Equal returns true if e and o have the same expanded form.
func (e Expr) Equal(o Expr) bool {
	if len(e.terms) != len(o.terms) {
		return false
	}
	for k, t := range e.terms {
		u, ok := o.terms[k]
		if !ok || t.coeff.Cmp(u.coeff) != 0 {
			return false
		}
	}
	return true
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	b := builder{}
	for _, t := range e.terms {
		b.add(t.mono, t.rad, t.coeff)
	}
	for _, t := range o.terms {
		b.add(t.mono, t.rad, t.coeff)
	}
	return b.expr()
}

// Neg returns -e.
func (e Expr) Neg() Expr {
	return e.Scale(big.NewRat(-1, 1))
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr {
	return e.Add(o.Neg())
}

// Scale returns r * e.
func (e Expr) Scale(r *big.Rat) Expr {
	b := builder{}
	tmp := new(big.Rat)
	for _, t := range e.terms {
		b.add(t.mono, t.rad, tmp.Mul(t.coeff, r))
	}
	return b.expr()
}

// Mul returns e * o.
func (e Expr) Mul(o Expr) Expr {
	if e.IsZero() || o.IsZero() {
		return Expr{}
	}
	b := builder{}
	tmp := new(big.Rat)
	for _, t := range e.terms {
		for _, u := range o.terms {
			g, rad := mulRadicals(t.rad, u.rad)
			tmp.Mul(t.coeff, u.coeff)
			if g != nil {
				tmp.Mul(tmp, new(big.Rat).SetInt(g))
			}
			b.add(t.mono.mul(u.mono), rad, tmp)
		}
	}
	return b.expr()
}

// Pow returns e^n for n >= 0, with 0^0 = 1.
func (e Expr) Pow(n int) Expr {
	if n < 0 {
		panic(fmt.Errorf("cannot Pow: negative exponent %d", n))
	}
	r, base := One(), e
	for n > 0 {
		if n&1 == 1 {
			r = r.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return r
}

// Degree returns the maximal exponent of s in e, 0 for the zero expression.
func (e Expr) Degree(s Symbol) (d int) {
	for _, t := range e.terms {
		if k := t.mono.degree(s); k > d {
			d = k
		}
	}
	return
}

// TotalDegree returns the maximal total degree of the terms of e.
func (e Expr) TotalDegree() (d int) {
	for _, t := range e.terms {
		if k := t.mono.totalDegree(); k > d {
			d = k
		}
	}
	return
}

// Coeff returns the coefficient of s^n in e, in which other symbols are kept.
func (e Expr) Coeff(s Symbol, n int) Expr {
	b := builder{}
	for _, t := range e.terms {
		if t.mono.degree(s) == n {
			b.add(t.mono.without(s), t.rad, t.coeff)
		}
	}
	return b.expr()
}

// Symbols returns the sorted symbols occurring in e.
func (e Expr) Symbols() []Symbol {
	set := map[Symbol]bool{}
	for _, t := range e.terms {
		for _, p := range t.mono {
			set[p.sym] = true
		}
	}
	return utils.GetSortedKeys(set)
}

// Subs returns e with every occurrence of s replaced by v.
func (e Expr) Subs(s Symbol, v Expr) Expr {
	powers := map[int]Expr{}
	out := Expr{}
	for _, t := range e.terms {
		k := t.mono.degree(s)
		if k == 0 {
			out = out.Add(Expr{terms: map[string]term{termKey(t.mono, t.rad): t}})
			continue
		}
		pw, ok := powers[k]
		if !ok {
			pw = v.Pow(k)
			powers[k] = pw
		}
		rest := t.mono.without(s)
		out = out.Add(Expr{terms: map[string]term{termKey(rest, t.rad): {mono: rest, rad: t.rad, coeff: t.coeff}}}.Mul(pw))
	}
	return out
}

// Eval returns the value of e at the given point.
// Every symbol of e must be assigned a value and e must have rational coefficients.
func (e Expr) Eval(values map[Symbol]*big.Rat) (*big.Rat, error) {
	r := new(big.Rat)
	for _, t := range e.terms {
		if t.rad != nil {
			return nil, fmt.Errorf("cannot Eval: %w: %s", ErrIrrational, e)
		}
		v := new(big.Rat).Set(t.coeff)
		for _, p := range t.mono {
			x, ok := values[p.sym]
			if !ok {
				return nil, fmt.Errorf("cannot Eval: no value for symbol %s", p.sym)
			}
			for i := 0; i < p.exp; i++ {
				v.Mul(v, x)
			}
		}
		r.Add(r, v)
	}
	return r, nil
}

// sortedTerms returns the terms of e by decreasing total degree, then by monomial key.
func (e Expr) sortedTerms() (ts []term) {
	ts = make([]term, 0, len(e.terms))
	for _, t := range e.terms {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		di, dj := ts[i].mono.totalDegree(), ts[j].mono.totalDegree()
		if di != dj {
			return di > dj
		}
		return termKey(ts[i].mono, ts[i].rad) < termKey(ts[j].mono, ts[j].rad)
	})
	return
}

// String returns a human readable form of e with a deterministic term order.
func (e Expr) String() string {

	if e.IsZero() {
		return "0"
	}

	var sb strings.Builder

	for i, t := range e.sortedTerms() {

		neg := t.coeff.Sign() < 0
		switch {
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		case neg:
			sb.WriteString("-")
		}

		var factors []string

		abs := new(big.Rat).Abs(t.coeff)
		if abs.Cmp(big.NewRat(1, 1)) != 0 || (len(t.mono) == 0 && t.rad == nil) {
			factors = append(factors, abs.RatString())
		}

		if t.rad != nil {
			factors = append(factors, "sqrt("+t.rad.String()+")")
		}

		for _, p := range t.mono {
			f := string(p.sym)
			if p.exp > 1 {
				f += "^" + strconv.Itoa(p.exp)
			}
			factors = append(factors, f)
		}

		sb.WriteString(strings.Join(factors, "*"))
	}

	return sb.String()
}
