package polynomial

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/tuneinsight/biquat/biquaternion"
	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils"
)

// Ring is the coefficient ring of a polynomial.
type Ring int

const (
	// Scalar polynomials have commuting rational coefficients.
	Scalar Ring = iota
	// BiQuaternion polynomials have biquaternion coefficients.
	BiQuaternion
)

func (r Ring) String() string {
	switch r {
	case Scalar:
		return "Scalar"
	case BiQuaternion:
		return "BiQuaternion"
	default:
		return fmt.Sprintf("Ring(%d)", int(r))
	}
}

// Poly is a polynomial in an ordered list of commuting indeterminates with
// coefficients in either the scalar ring or a biquaternion algebra.
// The indeterminates commute with the coefficients, the coefficients
// themselves do not commute if the ring is BiQuaternion.
// Poly is immutable.
type Poly struct {
	ring   Ring
	scal   scalar.Expr
	bq     biquaternion.BiQuaternion
	indets []scalar.Symbol
}

// New creates a new polynomial in the given indeterminates.
// Accepted types for x are *Poly (copied, its indeterminates are used if none are given),
// biquaternion.BiQuaternion and the scalar types accepted by scalar.Parse.
func New(x interface{}, indets ...scalar.Symbol) (*Poly, error) {
	switch x := x.(type) {
	case *Poly:
		if len(indets) == 0 {
			indets = x.indets
		}
		return &Poly{ring: x.ring, scal: x.scal, bq: x.bq, indets: dedup(indets)}, nil
	case biquaternion.BiQuaternion:
		return NewBiQuaternion(x, indets...), nil
	default:
		e, err := scalar.Parse(x)
		if err != nil {
			return nil, fmt.Errorf("cannot New: %w: %w", ErrArgument, err)
		}
		return NewScalar(e, indets...), nil
	}
}

// NewScalar returns the scalar polynomial e in the given indeterminates.
func NewScalar(e scalar.Expr, indets ...scalar.Symbol) *Poly {
	return &Poly{ring: Scalar, scal: e, indets: dedup(indets)}
}

// NewBiQuaternion returns the biquaternion polynomial q in the given indeterminates.
func NewBiQuaternion(q biquaternion.BiQuaternion, indets ...scalar.Symbol) *Poly {
	return &Poly{ring: BiQuaternion, bq: q, indets: dedup(indets)}
}

// Monomial returns the scalar polynomial v^n in v.
func Monomial(v scalar.Symbol, n int) *Poly {
	return NewScalar(v.Expr().Pow(n), v)
}

func dedup(indets []scalar.Symbol) []scalar.Symbol {
	return utils.GetDistincts(indets)
}

// union returns a followed by the indeterminates of b not in a.
func union(a, b []scalar.Symbol) []scalar.Symbol {
	return utils.GetDistincts(append(append([]scalar.Symbol{}, a...), b...))
}

// Ring returns the coefficient ring of p.
func (p *Poly) Ring() Ring {
	return p.ring
}

// Indets returns a copy of the indeterminates of p.
func (p *Poly) Indets() []scalar.Symbol {
	return append([]scalar.Symbol{}, p.indets...)
}

// Expr returns the expression of a scalar polynomial and false otherwise.
func (p *Poly) Expr() (scalar.Expr, bool) {
	return p.scal, p.ring == Scalar
}

// BQ returns the expression of a biquaternion polynomial and false otherwise.
func (p *Poly) BQ() (biquaternion.BiQuaternion, bool) {
	return p.bq, p.ring == BiQuaternion
}

// Lift returns p as a biquaternion polynomial of alg.
// Biquaternion polynomials are returned unchanged.
func (p *Poly) Lift(alg *biquaternion.Algebra) *Poly {
	if p.ring == BiQuaternion {
		return p
	}
	return &Poly{ring: BiQuaternion, bq: alg.NewScalar(p.scal), indets: p.indets}
}

// dualQuaternions is the algebra of the projections of scalar polynomials.
var dualQuaternions = biquaternion.DualQuaternions()

// lift lifts scalar polynomials to the dual quaternions.
func (p *Poly) lift() *Poly {
	return p.Lift(dualQuaternions)
}

// coerce brings p and q to a common ring.
func coerce(p, q *Poly) (*Poly, *Poly) {
	switch {
	case p.ring == q.ring:
		return p, q
	case p.ring == Scalar:
		return p.Lift(q.bq.Algebra()), q
	default:
		return p, q.Lift(p.bq.Algebra())
	}
}

// with returns the polynomial of the same ring as p with the given expressions.
func (p *Poly) with(scal scalar.Expr, bq biquaternion.BiQuaternion, indets []scalar.Symbol) *Poly {
	return &Poly{ring: p.ring, scal: scal, bq: bq, indets: indets}
}

// mapCoeffs applies fn to every scalar component of p.
func (p *Poly) mapCoeffs(fn func(scalar.Expr) scalar.Expr) *Poly {
	if p.ring == Scalar {
		return p.with(fn(p.scal), biquaternion.BiQuaternion{}, p.indets)
	}
	return p.with(scalar.Expr{}, p.bq.ApplyElementwise(fn), p.indets)
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	a, b := coerce(p, q)
	indets := union(p.indets, q.indets)
	if a.ring == Scalar {
		return a.with(a.scal.Add(b.scal), biquaternion.BiQuaternion{}, indets)
	}
	return a.with(scalar.Expr{}, a.bq.Add(b.bq), indets)
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	return p.mapCoeffs(scalar.Expr.Neg)
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	a, b := coerce(p, q)
	indets := union(p.indets, q.indets)
	if a.ring == Scalar {
		return a.with(a.scal.Mul(b.scal), biquaternion.BiQuaternion{}, indets)
	}
	return a.with(scalar.Expr{}, a.bq.Mul(b.bq), indets)
}

// Pow returns p^n, with p^0 = 1.
func (p *Poly) Pow(n uint) *Poly {
	if p.ring == Scalar {
		return p.with(p.scal.Pow(int(n)), biquaternion.BiQuaternion{}, p.indets)
	}
	r := p.with(scalar.Expr{}, p.bq.Algebra().One(), p.indets)
	for i := uint(0); i < n; i++ {
		r = r.Mul(p)
	}
	return r
}

// IsZero returns true if p is the zero polynomial.
func (p *Poly) IsZero() bool {
	if p.ring == Scalar {
		return p.scal.IsZero()
	}
	return p.bq.IsZero()
}

// Equal returns true if p and q have the same expanded expression and the same set of
// indeterminates. A scalar polynomial is equal to its lift.
func (p *Poly) Equal(q *Poly) bool {

	if len(p.indets) != len(q.indets) {
		return false
	}

	for _, s := range p.indets {
		if !slices.Contains(q.indets, s) {
			return false
		}
	}

	a, b := coerce(p, q)
	if a.ring == Scalar {
		return a.scal.Equal(b.scal)
	}

	return a.bq.Equal(b.bq)
}

// Deg returns the degree of p in v, 0 for constants.
func (p *Poly) Deg(v scalar.Symbol) int {
	if p.ring == Scalar {
		return p.scal.Degree(v)
	}
	return p.bq.Degree(v)
}

// Coeff returns the coefficient of v^n in p.
func (p *Poly) Coeff(v scalar.Symbol, n int) *Poly {
	return p.mapCoeffs(func(x scalar.Expr) scalar.Expr { return x.Coeff(v, n) })
}

// LCoeff returns the leading coefficient of p in v.
func (p *Poly) LCoeff(v scalar.Symbol) *Poly {
	return p.Coeff(v, p.Deg(v))
}

// AllIndetCoeffs returns the coefficients of p in v in ascending order of powers.
func (p *Poly) AllIndetCoeffs(v scalar.Symbol) (coeffs []*Poly) {
	coeffs = make([]*Poly, p.Deg(v)+1)
	for i := range coeffs {
		coeffs[i] = p.Coeff(v, i)
	}
	return
}

// CoeffTree is the recursive decomposition of a polynomial along its indeterminates.
// The children of a node at depth d are the coefficients of ascending powers of the
// d-th indeterminate. Leaves carry the coefficients, which no longer depend on any
// indeterminate.
type CoeffTree struct {
	Coeff    *Poly
	Children []*CoeffTree
}

// IsLeaf returns true if the node has no children.
func (t *CoeffTree) IsLeaf() bool {
	return len(t.Children) == 0
}

// AllCoeffs returns the coefficients of p along all its indeterminates, in order.
func (p *Poly) AllCoeffs() *CoeffTree {
	return p.coeffTree(0)
}

func (p *Poly) coeffTree(level int) *CoeffTree {

	if level == len(p.indets) {
		return &CoeffTree{Coeff: p}
	}

	coeffs := p.AllIndetCoeffs(p.indets[level])

	node := &CoeffTree{Children: make([]*CoeffTree, len(coeffs))}
	for i, c := range coeffs {
		node.Children[i] = c.coeffTree(level + 1)
	}

	return node
}

// Term is a non-zero coefficient with the exponents of the indeterminates of its monomial.
type Term struct {
	Exponents []int
	Coeff     *Poly
}

// Terms returns the non-zero terms of p in descending lexicographic order of exponents.
func (p *Poly) Terms() (terms []Term) {

	var walk func(node *CoeffTree, exps []int)
	walk = func(node *CoeffTree, exps []int) {

		if node.IsLeaf() {
			if !node.Coeff.IsZero() {
				terms = append(terms, Term{Exponents: append([]int{}, exps...), Coeff: node.Coeff})
			}
			return
		}

		for i := len(node.Children) - 1; i >= 0; i-- {
			walk(node.Children[i], append(exps, i))
		}
	}

	walk(p.AllCoeffs(), make([]int, 0, len(p.indets)))

	return
}

// Eval substitutes vals[i] for the i-th indeterminate of p. If right is true the values
// are multiplied to the right of the coefficients, otherwise to the left.
// The indeterminates of the result are those of the values.
func (p *Poly) Eval(vals []*Poly, right bool) (*Poly, error) {

	if len(vals) != len(p.indets) {
		return nil, fmt.Errorf("cannot Eval: %w: %d values for %d indeterminates", ErrArgument, len(vals), len(p.indets))
	}

	var indets []scalar.Symbol
	for _, v := range vals {
		indets = union(indets, v.indets)
	}

	var eval func(node *CoeffTree, level int) *Poly
	eval = func(node *CoeffTree, level int) *Poly {

		if node.IsLeaf() {
			return node.Coeff.with(node.Coeff.scal, node.Coeff.bq, indets)
		}

		out := NewScalar(scalar.Zero(), indets...)
		pw := NewScalar(scalar.One(), indets...)

		for i, child := range node.Children {

			if i > 0 {
				pw = pw.Mul(vals[level])
			}

			if right {
				out = out.Add(eval(child, level+1).Mul(pw))
			} else {
				out = out.Add(pw.Mul(eval(child, level+1)))
			}
		}

		return out
	}

	return eval(p.AllCoeffs(), 0), nil
}

// Primal returns the primal part of p.
func (p *Poly) Primal() *Poly {
	q := p.lift()
	return q.with(scalar.Expr{}, q.bq.Primal(), q.indets)
}

// Dual returns the dual part of p.
func (p *Poly) Dual() *Poly {
	q := p.lift()
	return q.with(scalar.Expr{}, q.bq.Dual(), q.indets)
}

// Conjugate returns the coefficient-wise conjugate of p.
func (p *Poly) Conjugate() *Poly {
	q := p.lift()
	return q.with(scalar.Expr{}, q.bq.Conjugate(), q.indets)
}

// EpsConjugate returns the coefficient-wise e-conjugate of p.
func (p *Poly) EpsConjugate() *Poly {
	q := p.lift()
	return q.with(scalar.Expr{}, q.bq.EpsConjugate(), q.indets)
}

// Norm returns p * Conjugate(p).
func (p *Poly) Norm() *Poly {
	return p.Mul(p.Conjugate())
}

// Scal returns the scalar polynomial given by the coefficient of 1 of p.
func (p *Poly) Scal() *Poly {
	if p.ring == Scalar {
		return p
	}
	return NewScalar(p.bq.Component(0), p.indets...)
}

// QuoExact divides every coefficient of p by the univariate polynomial c in v.
// It fails with scalar.ErrNotDivisible if the division is not exact.
func (p *Poly) QuoExact(c scalar.Expr, v scalar.Symbol) (*Poly, error) {

	var err error
	div := func(x scalar.Expr) scalar.Expr {
		if err != nil {
			return x
		}
		var q scalar.Expr
		if q, err = scalar.QuoExact(x, c, v); err != nil {
			return x
		}
		return q
	}

	q := p.mapCoeffs(div)
	if err != nil {
		return nil, fmt.Errorf("cannot QuoExact: %w", err)
	}

	return q, nil
}

// String returns the expression of p followed by its indeterminates.
func (p *Poly) String() string {

	names := make([]string, len(p.indets))
	for i := range p.indets {
		names[i] = string(p.indets[i])
	}

	var expr string
	if p.ring == Scalar {
		expr = p.scal.String()
	} else {
		expr = p.bq.String()
	}

	return fmt.Sprintf("Poly(%s, [%s])", expr, strings.Join(names, " "))
}
