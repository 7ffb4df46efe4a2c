package polynomial_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/biquat/biquaternion"
	"github.com/tuneinsight/biquat/polynomial"
	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils/sampling"
)

var (
	t = scalar.Symbol("t")
	s = scalar.Symbol("s")
	a = symbols("a", 8)
	b = symbols("b", 8)
)

func symbols(prefix string, n int) (e []scalar.Expr) {
	e = make([]scalar.Expr, n)
	for i := range e {
		e[i] = scalar.Symbol(fmt.Sprintf("%s%d", prefix, i)).Expr()
	}
	return
}

// ascending returns sum_i coeffs[i] * v^i.
func ascending(coeffs []scalar.Expr, v scalar.Symbol) (e scalar.Expr) {
	for i, c := range coeffs {
		e = e.Add(c.Mul(v.Expr().Pow(i)))
	}
	return
}

// randPoly returns a polynomial in v of degree n with random biquaternion coefficients.
func randPoly(alg *biquaternion.Algebra, prng sampling.PRNG, v scalar.Symbol, n int) *polynomial.Poly {
	p := polynomial.NewScalar(scalar.Zero(), v)
	for i := 0; i <= n; i++ {
		p = p.Add(polynomial.NewBiQuaternion(alg.RandBQ(prng, 10), v).Mul(polynomial.Monomial(v, i)))
	}
	return p
}

func TestPoly(tt *testing.T) {

	// p = a0 t^2 s + a1 t + a2 s^2 + a3 s + a4 in (t, s)
	T, S := t.Expr(), s.Expr()
	p := polynomial.NewScalar(a[0].Mul(T.Pow(2)).Mul(S).Add(a[1].Mul(T)).Add(a[2].Mul(S.Pow(2))).Add(a[3].Mul(S)).Add(a[4]), t, s)

	// q = sum_i a_i t^i
	q := polynomial.NewScalar(ascending(a, t), t)

	tt.Run("New", func(tt *testing.T) {

		r, err := polynomial.New(q)
		require.NoError(tt, err)
		require.True(tt, r.Equal(q))

		r, err = polynomial.New(3, t)
		require.NoError(tt, err)
		require.Equal(tt, polynomial.Scalar, r.Ring())

		alg := biquaternion.DualQuaternions()
		r, err = polynomial.New(alg.I(), t)
		require.NoError(tt, err)
		require.Equal(tt, polynomial.BiQuaternion, r.Ring())

		_, err = polynomial.New(struct{}{}, t)
		require.ErrorIs(tt, err, polynomial.ErrArgument)
	})

	tt.Run("Indets", func(tt *testing.T) {
		r := q.Add(p)
		require.Equal(tt, []scalar.Symbol{t, s}, r.Indets())
		r = polynomial.NewScalar(S, s).Mul(q)
		require.Equal(tt, []scalar.Symbol{s, t}, r.Indets())

		// Equality is insensitive to the order of the indeterminates but not to the set.
		require.True(tt, polynomial.NewScalar(T, t, s).Equal(polynomial.NewScalar(T, s, t)))
		require.False(tt, polynomial.NewScalar(T, t, s).Equal(polynomial.NewScalar(T, t)))
	})

	tt.Run("Deg", func(tt *testing.T) {
		require.Equal(tt, 7, q.Deg(t))
		require.Equal(tt, 2, p.Deg(t))
		require.Equal(tt, 2, p.Deg(s))
		require.Equal(tt, 0, polynomial.NewScalar(scalar.NewInt(3), t).Deg(t))
		// Vanishing leading terms do not count.
		require.Equal(tt, 1, polynomial.NewScalar(T.Pow(2).Add(T), t).Sub(polynomial.NewScalar(T.Pow(2), t)).Deg(t))
	})

	tt.Run("AllIndetCoeffs", func(tt *testing.T) {
		coeffs := q.AllIndetCoeffs(t)
		require.Len(tt, coeffs, len(a))
		for i := range coeffs {
			require.True(tt, coeffs[i].Equal(polynomial.NewScalar(a[i], t)))
		}
		require.True(tt, q.LCoeff(t).Equal(polynomial.NewScalar(a[7], t)))
	})

	tt.Run("AllCoeffs", func(tt *testing.T) {

		want := [][]scalar.Expr{
			{a[4], a[3], a[2]},
			{a[1]},
			{{}, a[0]},
		}

		tree := p.AllCoeffs()
		require.Len(tt, tree.Children, len(want))
		for i := range want {
			require.Len(tt, tree.Children[i].Children, len(want[i]))
			for j := range want[i] {
				leaf := tree.Children[i].Children[j]
				require.True(tt, leaf.IsLeaf())
				e, ok := leaf.Coeff.Expr()
				require.True(tt, ok)
				require.True(tt, e.Equal(want[i][j]), "(%d, %d): %v", i, j, e)
			}
		}
	})

	tt.Run("Terms", func(tt *testing.T) {

		check := func(terms []polynomial.Term, exps [][]int, coeffs []scalar.Expr) {
			require.Len(tt, terms, len(exps))
			for i := range terms {
				require.Equal(tt, exps[i], terms[i].Exponents)
				e, _ := terms[i].Coeff.Expr()
				require.True(tt, e.Equal(coeffs[i]))
			}
		}

		check(q.Terms(),
			[][]int{{7}, {6}, {5}, {4}, {3}, {2}, {1}, {0}},
			[]scalar.Expr{a[7], a[6], a[5], a[4], a[3], a[2], a[1], a[0]})

		check(p.Terms(),
			[][]int{{2, 1}, {1, 0}, {0, 2}, {0, 1}, {0, 0}},
			[]scalar.Expr{a[0], a[1], a[2], a[3], a[4]})
	})

	tt.Run("Eval", func(tt *testing.T) {

		one := polynomial.NewScalar(scalar.One())

		sumA := ascending(a, t).Subs(t, scalar.One())
		sumB := ascending(b, t).Subs(t, scalar.One())

		for _, right := range []bool{true, false} {
			r, err := q.Eval([]*polynomial.Poly{one}, right)
			require.NoError(tt, err)
			require.True(tt, r.Equal(polynomial.NewScalar(sumA)))
		}

		pb := polynomial.NewScalar(ascending(b, s), s)
		r, err := q.Add(pb).Eval([]*polynomial.Poly{one, one}, false)
		require.NoError(tt, err)
		require.True(tt, r.Equal(polynomial.NewScalar(sumA.Add(sumB))))

		_, err = q.Eval(nil, true)
		require.ErrorIs(tt, err, polynomial.ErrArgument)
	})

	tt.Run("EvalNonCommutative", func(tt *testing.T) {
		alg := biquaternion.DualQuaternions()
		// (i t) evaluated at t = j is i*j = k on the right and j*i = -k on the left.
		r := polynomial.NewBiQuaternion(alg.I(), t).Mul(polynomial.Monomial(t, 1))
		j := polynomial.NewBiQuaternion(alg.J())

		right, err := r.Eval([]*polynomial.Poly{j}, true)
		require.NoError(tt, err)
		require.True(tt, right.Equal(polynomial.NewBiQuaternion(alg.K())))

		left, err := r.Eval([]*polynomial.Poly{j}, false)
		require.NoError(tt, err)
		require.True(tt, left.Equal(polynomial.NewBiQuaternion(alg.K().Neg())))
	})

	tt.Run("Projections", func(tt *testing.T) {

		alg := biquaternion.DualQuaternions()
		prng, err := sampling.NewKeyedPRNG([]byte("projections"))
		require.NoError(tt, err)

		r := randPoly(alg, prng, t, 2)

		require.True(tt, r.Primal().Add(polynomial.NewBiQuaternion(alg.E()).Mul(r.Dual())).Equal(r))
		require.True(tt, r.Conjugate().Conjugate().Equal(r))
		require.True(tt, r.EpsConjugate().EpsConjugate().Equal(r))

		n := r.Norm()
		bq, ok := n.BQ()
		require.True(tt, ok)
		require.True(tt, bq.VectorPart().IsZero())
		require.Equal(tt, 4, n.Scal().Deg(t))
		require.Equal(tt, polynomial.Scalar, n.Scal().Ring())

		// Projections of scalar polynomials are taken in the dual quaternions.
		require.True(tt, q.Primal().Equal(q))
		require.True(tt, q.Dual().IsZero())
	})

	tt.Run("QuoExact", func(tt *testing.T) {
		alg := biquaternion.DualQuaternions()
		c := T.Sub(scalar.One())
		r := polynomial.NewBiQuaternion(alg.I().Scale(c.Mul(T)).Add(alg.E().Scale(c)), t)
		quo, err := r.QuoExact(c, t)
		require.NoError(tt, err)
		require.True(tt, quo.Equal(polynomial.NewBiQuaternion(alg.I().Scale(T).Add(alg.E()), t)))

		_, err = r.QuoExact(T.Add(scalar.One()), t)
		require.ErrorIs(tt, err, scalar.ErrNotDivisible)
	})

	tt.Run("Pow", func(tt *testing.T) {
		alg := biquaternion.DualQuaternions()
		r := polynomial.NewBiQuaternion(alg.I(), t).Add(polynomial.Monomial(t, 1))
		require.True(tt, r.Pow(0).Equal(polynomial.NewBiQuaternion(alg.One(), t)))
		require.True(tt, r.Pow(3).Equal(r.Mul(r).Mul(r)))
		require.True(tt, q.Pow(2).Equal(q.Mul(q)))
	})
}
