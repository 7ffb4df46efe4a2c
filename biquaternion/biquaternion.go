package biquaternion

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils"
)

var (
	// ErrArgument is returned for malformed constructor inputs.
	ErrArgument = errors.New("invalid argument")
	// ErrNonInvertible is returned when inverting a biquaternion q such that
	// p^2 - e^2 * d^2 is not a unit, where p + e*d is the quadrance of q.
	ErrNonInvertible = errors.New("biquaternion is not invertible")
	// ErrExponentType is returned by Pow for non-integer exponents.
	ErrExponentType = errors.New("unsupported exponent type")
	// ErrAlgebraMismatch is the panic value when combining values of different algebras.
	ErrAlgebraMismatch = errors.New("biquaternions belong to different algebras")
)

var basis = [8]string{"", "i", "j", "k", "e", "e*i", "e*j", "e*k"}

// BiQuaternion is an element primal + e*dual of a biquaternion algebra,
// stored as its 8 coefficients in the order 1, i, j, k, e, ei, ej, ek.
// BiQuaternions are immutable: all operations return new values.
type BiQuaternion struct {
	alg *Algebra
	c   [8]scalar.Expr
}

// NewBiQuaternion creates a new BiQuaternion of the algebra. The accepted inputs are:
//   - between 0 and 8 scalars (any type accepted by scalar.Parse), missing coefficients are zero;
//   - a single slice of scalars ([]interface{}, []scalar.Expr, []int, []int64 or []*big.Rat);
//   - a single BiQuaternion, which is copied and bound to alg.
func (alg *Algebra) NewBiQuaternion(coeffs ...interface{}) (q BiQuaternion, err error) {

	if len(coeffs) == 1 {
		switch x := coeffs[0].(type) {
		case BiQuaternion:
			return BiQuaternion{alg: alg, c: x.c}, nil
		case [8]scalar.Expr:
			return BiQuaternion{alg: alg, c: x}, nil
		case []interface{}:
			return alg.NewBiQuaternion(x...)
		case []scalar.Expr:
			return alg.NewBiQuaternion(toInterfaces(x)...)
		case []int:
			return alg.NewBiQuaternion(toInterfaces(x)...)
		case []int64:
			return alg.NewBiQuaternion(toInterfaces(x)...)
		case []*big.Rat:
			return alg.NewBiQuaternion(toInterfaces(x)...)
		}
	}

	if len(coeffs) > 8 {
		return q, fmt.Errorf("cannot NewBiQuaternion: %w: at most 8 coefficients but %d given", ErrArgument, len(coeffs))
	}

	q.alg = alg

	for i, x := range coeffs {

		if _, ok := x.(BiQuaternion); ok {
			return BiQuaternion{}, fmt.Errorf("cannot NewBiQuaternion: %w: coefficient %d is a biquaternion", ErrArgument, i)
		}

		if q.c[i], err = scalar.Parse(x); err != nil {
			return BiQuaternion{}, fmt.Errorf("cannot NewBiQuaternion: coefficient %d: %w: %w", i, ErrArgument, err)
		}
	}

	return
}

func toInterfaces[T any](s []T) []interface{} {
	out := make([]interface{}, len(s))
	for i := range s {
		out[i] = s[i]
	}
	return out
}

// algebra returns the algebra shared by q and p and panics if they differ.
func (q BiQuaternion) algebra(p BiQuaternion) *Algebra {
	if q.alg != p.alg && !q.alg.Equal(p.alg) {
		panic(fmt.Errorf("%w: %v and %v", ErrAlgebraMismatch, q.alg, p.alg))
	}
	return q.alg
}

// Algebra returns the algebra of q.
func (q BiQuaternion) Algebra() *Algebra {
	return q.alg
}

// Component returns the i-th coefficient of q.
func (q BiQuaternion) Component(i int) scalar.Expr {
	return q.c[i]
}

// Coeffs returns the coefficients of q.
func (q BiQuaternion) Coeffs() [8]scalar.Expr {
	return q.c
}

// IsZero returns true if all the coefficients of q are zero.
func (q BiQuaternion) IsZero() bool {
	for i := range q.c {
		if !q.c[i].IsZero() {
			return false
		}
	}
	return true
}

// Equal returns true if q and p belong to the same algebra and have the same coefficients.
func (q BiQuaternion) Equal(p BiQuaternion) bool {
	if !q.alg.Equal(p.alg) {
		return false
	}
	for i := range q.c {
		if !q.c[i].Equal(p.c[i]) {
			return false
		}
	}
	return true
}

// Add returns q + p.
func (q BiQuaternion) Add(p BiQuaternion) BiQuaternion {
	r := BiQuaternion{alg: q.algebra(p)}
	for i := range r.c {
		r.c[i] = q.c[i].Add(p.c[i])
	}
	return r
}

// Sub returns q - p.
func (q BiQuaternion) Sub(p BiQuaternion) BiQuaternion {
	r := BiQuaternion{alg: q.algebra(p)}
	for i := range r.c {
		r.c[i] = q.c[i].Sub(p.c[i])
	}
	return r
}

// Neg returns -q.
func (q BiQuaternion) Neg() BiQuaternion {
	return q.ApplyElementwise(scalar.Expr.Neg)
}

// Scale returns s * q.
func (q BiQuaternion) Scale(s scalar.Expr) BiQuaternion {
	return q.ApplyElementwise(func(x scalar.Expr) scalar.Expr { return x.Mul(s) })
}

// Mul returns q * p.
func (q BiQuaternion) Mul(p BiQuaternion) BiQuaternion {

	alg := q.algebra(p)

	r := BiQuaternion{alg: alg}

	for a := range q.c {

		if q.c[a].IsZero() {
			continue
		}

		for b := range p.c {

			if p.c[b].IsZero() {
				continue
			}

			if prod := alg.table[a][b]; !prod.coeff.IsZero() {
				r.c[prod.idx] = r.c[prod.idx].Add(prod.coeff.Mul(q.c[a]).Mul(p.c[b]))
			}
		}
	}

	return r
}

// Conjugate returns the quaternion conjugate of q, negating the
// coefficients of i, j, k in both the primal and the dual part.
func (q BiQuaternion) Conjugate() BiQuaternion {
	r := q
	for _, i := range []int{1, 2, 3, 5, 6, 7} {
		r.c[i] = q.c[i].Neg()
	}
	return r
}

// EpsConjugate returns q with its dual part negated.
func (q BiQuaternion) EpsConjugate() BiQuaternion {
	r := q
	for i := 4; i < 8; i++ {
		r.c[i] = q.c[i].Neg()
	}
	return r
}

// Quadrance returns q * Conjugate(q).
func (q BiQuaternion) Quadrance() BiQuaternion {
	return q.Mul(q.Conjugate())
}

// Norm is an alias of Quadrance.
func (q BiQuaternion) Norm() BiQuaternion {
	return q.Quadrance()
}

// Inv returns the inverse of q.
// Let p + e*d be the quadrance of q and s = p^2 - e^2 * d^2, then
// Inv(q) = EpsConjugate(Quadrance(q)) * (1/s) * Conjugate(q).
// The method returns ErrNonInvertible if s is zero or depends on a symbol,
// and ErrArgument if q does not belong to an algebra.
func (q BiQuaternion) Inv() (BiQuaternion, error) {

	if q.alg == nil {
		return BiQuaternion{}, fmt.Errorf("cannot Inv: %w: biquaternion has no algebra", ErrArgument)
	}

	quad := q.Quadrance()

	p, d := quad.c[0], quad.c[4]

	s := p.Mul(p).Sub(q.alg.eSq.Mul(d).Mul(d))

	if s.IsZero() {
		return BiQuaternion{}, fmt.Errorf("cannot Inv: %w: %v", ErrNonInvertible, q)
	}

	if !s.IsConstant() {
		return BiQuaternion{}, fmt.Errorf("cannot Inv: %w: %v is not a unit of the coefficient ring", ErrNonInvertible, s)
	}

	r, err := s.Inv()
	if err != nil {
		return BiQuaternion{}, fmt.Errorf("cannot Inv: %w: %w", ErrNonInvertible, err)
	}

	return quad.EpsConjugate().Mul(q.Conjugate()).ApplyElementwise(func(x scalar.Expr) scalar.Expr {
		return x.Mul(r)
	}), nil
}

// Quo returns q * Inv(p).
func (q BiQuaternion) Quo(p BiQuaternion) (BiQuaternion, error) {
	q.algebra(p)
	inv, err := p.Inv()
	if err != nil {
		return BiQuaternion{}, fmt.Errorf("cannot Quo: %w", err)
	}
	return q.Mul(inv), nil
}

// Pow returns q^exp. exp must be a Go integer type. Non-negative exponents
// are evaluated by repeated multiplication (q^0 = 1), negative exponents by
// repeated division.
func (q BiQuaternion) Pow(exp interface{}) (r BiQuaternion, err error) {

	var n int64
	switch exp := exp.(type) {
	case int:
		n = int64(exp)
	case int8:
		n = int64(exp)
	case int16:
		n = int64(exp)
	case int32:
		n = int64(exp)
	case int64:
		n = exp
	case uint:
		n = int64(exp)
	case uint8:
		n = int64(exp)
	case uint16:
		n = int64(exp)
	case uint32:
		n = int64(exp)
	case uint64:
		if exp > math.MaxInt64 {
			return BiQuaternion{}, fmt.Errorf("cannot Pow: %w: exponent %d overflows int64", ErrArgument, exp)
		}
		n = int64(exp)
	default:
		return BiQuaternion{}, fmt.Errorf("cannot Pow: %w: %T", ErrExponentType, exp)
	}

	r = q.alg.One()

	if n >= 0 {
		for i := int64(0); i < n; i++ {
			r = r.Mul(q)
		}
		return
	}

	for i := n; i < 0; i++ {
		if r, err = r.Quo(q); err != nil {
			return BiQuaternion{}, fmt.Errorf("cannot Pow: %w", err)
		}
	}

	return
}

// Primal returns the primal part of q as a biquaternion with a zero dual part.
func (q BiQuaternion) Primal() BiQuaternion {
	r := BiQuaternion{alg: q.alg}
	copy(r.c[:4], q.c[:4])
	return r
}

// Dual returns the dual part of q shifted to the primal position.
func (q BiQuaternion) Dual() BiQuaternion {
	r := BiQuaternion{alg: q.alg}
	copy(r.c[:4], q.c[4:])
	return r
}

// ScalarPart returns the coefficients of 1 and e of q.
func (q BiQuaternion) ScalarPart() BiQuaternion {
	r := BiQuaternion{alg: q.alg}
	r.c[0], r.c[4] = q.c[0], q.c[4]
	return r
}

// VectorPart returns q - ScalarPart(q).
func (q BiQuaternion) VectorPart() BiQuaternion {
	r := q
	r.c[0], r.c[4] = scalar.Expr{}, scalar.Expr{}
	return r
}

// ApplyElementwise returns the biquaternion whose coefficients are fn applied to the coefficients of q.
func (q BiQuaternion) ApplyElementwise(fn func(scalar.Expr) scalar.Expr) BiQuaternion {
	r := BiQuaternion{alg: q.alg}
	for i := range q.c {
		r.c[i] = fn(q.c[i])
	}
	return r
}

// Coeff returns the biquaternion whose coefficients are the coefficients of sym^n
// in the coefficients of q.
func (q BiQuaternion) Coeff(sym scalar.Symbol, n int) BiQuaternion {
	return q.ApplyElementwise(func(x scalar.Expr) scalar.Expr { return x.Coeff(sym, n) })
}

// Degree returns the maximal degree in sym of the coefficients of q.
func (q BiQuaternion) Degree(sym scalar.Symbol) (d int) {
	for i := range q.c {
		d = utils.Max(d, q.c[i].Degree(sym))
	}
	return
}

// Subs substitutes v for sym in every coefficient of q.
func (q BiQuaternion) Subs(sym scalar.Symbol, v scalar.Expr) BiQuaternion {
	return q.ApplyElementwise(func(x scalar.Expr) scalar.Expr { return x.Subs(sym, v) })
}

// String returns q as a sum of basis elements, e.g. "1 + 2*i - e*k".
func (q BiQuaternion) String() string {

	var sb strings.Builder

	for i, c := range q.c {

		if c.IsZero() {
			continue
		}

		s := c.String()
		if _, ok := c.Rat(); !ok {
			s = "(" + s + ")"
		}

		neg := strings.HasPrefix(s, "-")
		if neg {
			s = s[1:]
		}

		switch {
		case sb.Len() > 0 && neg:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		case neg:
			sb.WriteString("-")
		}

		switch {
		case i == 0:
			sb.WriteString(s)
		case s == "1":
			sb.WriteString(basis[i])
		default:
			sb.WriteString(s + "*" + basis[i])
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
