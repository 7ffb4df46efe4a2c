package biquaternion_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/biquat/biquaternion"
	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils/sampling"
)

func newPRNG(t *testing.T) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG([]byte{'b', 'i', 'q', 'u', 'a', 't'})
	require.NoError(t, err)
	return prng
}

func symbolic(alg *biquaternion.Algebra, name string) (q biquaternion.BiQuaternion, c [8]scalar.Expr) {
	for i := range c {
		c[i] = scalar.Symbol(name + string(rune('1'+i))).Expr()
	}
	return alg.FromCoeffs(c), c
}

func TestMultiplicationTable(t *testing.T) {

	alg := biquaternion.DualQuaternions()

	x, xc := symbolic(alg, "x")
	y, yc := symbolic(alg, "y")

	sum := func(terms ...scalar.Expr) (r scalar.Expr) {
		for _, t := range terms {
			r = r.Add(t)
		}
		return
	}

	m := func(a, b int) scalar.Expr { return xc[a-1].Mul(yc[b-1]) }
	n := func(a, b int) scalar.Expr { return m(a, b).Neg() }

	want := [8]scalar.Expr{
		sum(m(1, 1), n(2, 2), n(3, 3), n(4, 4)),
		sum(m(1, 2), m(2, 1), m(3, 4), n(4, 3)),
		sum(m(1, 3), n(2, 4), m(3, 1), m(4, 2)),
		sum(m(1, 4), m(2, 3), n(3, 2), m(4, 1)),
		sum(m(1, 5), n(2, 6), n(3, 7), n(4, 8), m(5, 1), n(6, 2), n(7, 3), n(8, 4)),
		sum(m(1, 6), m(2, 5), m(3, 8), n(4, 7), m(5, 2), m(6, 1), m(7, 4), n(8, 3)),
		sum(m(1, 7), n(2, 8), m(3, 5), m(4, 6), m(5, 3), n(6, 4), m(7, 1), m(8, 2)),
		sum(m(1, 8), m(2, 7), n(3, 6), m(4, 5), m(5, 4), m(6, 3), n(7, 2), m(8, 1)),
	}

	require.True(t, cmp.Equal(want, x.Mul(y).Coeffs()))
}

func TestBiQuaternion(t *testing.T) {

	alg := biquaternion.DualQuaternions()
	prng := newPRNG(t)

	x := alg.RandBQ(prng, 10)
	y := alg.RandBQ(prng, 10)
	z := alg.RandBQ(prng, 10)

	t.Run("NewBiQuaternion", func(t *testing.T) {

		q, err := alg.NewBiQuaternion(1, 2, 3)
		require.NoError(t, err)
		require.True(t, q.Equal(alg.One().Add(alg.I().Scale(scalar.NewInt(2))).Add(alg.J().Scale(scalar.NewInt(3)))))

		p, err := alg.NewBiQuaternion([]int{1, 2, 3})
		require.NoError(t, err)
		require.True(t, p.Equal(q))

		p, err = alg.NewBiQuaternion(q)
		require.NoError(t, err)
		require.True(t, p.Equal(q))

		p, err = alg.NewBiQuaternion()
		require.NoError(t, err)
		require.True(t, p.IsZero())

		_, err = alg.NewBiQuaternion(1, 2, 3, 4, 5, 6, 7, 8, 9)
		require.ErrorIs(t, err, biquaternion.ErrArgument)

		_, err = alg.NewBiQuaternion(1, q)
		require.ErrorIs(t, err, biquaternion.ErrArgument)

		_, err = alg.NewBiQuaternion(1, struct{}{})
		require.ErrorIs(t, err, biquaternion.ErrArgument)
		require.ErrorIs(t, err, scalar.ErrInvalidType)
	})

	t.Run("RingLaws", func(t *testing.T) {
		require.True(t, x.Add(y).Equal(y.Add(x)))
		require.True(t, x.Mul(y.Mul(z)).Equal(x.Mul(y).Mul(z)))
		require.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))))
		require.True(t, x.Sub(x).IsZero())
		require.True(t, x.Add(x.Neg()).IsZero())
		require.True(t, x.Sub(y).Equal(y.Sub(x).Neg()))
		require.True(t, x.Mul(alg.One()).Equal(x))
		require.False(t, alg.I().Mul(alg.J()).Equal(alg.J().Mul(alg.I())))
	})

	t.Run("Units", func(t *testing.T) {
		minusOne := alg.One().Neg()
		require.True(t, alg.I().Mul(alg.I()).Equal(minusOne))
		require.True(t, alg.J().Mul(alg.J()).Equal(minusOne))
		require.True(t, alg.K().Mul(alg.K()).Equal(minusOne))
		require.True(t, alg.E().Mul(alg.E()).IsZero())
		require.True(t, alg.I().Mul(alg.J()).Equal(alg.K()))
		require.True(t, alg.E().Mul(alg.I()).Equal(alg.I().Mul(alg.E())))
	})

	t.Run("Conjugation", func(t *testing.T) {
		c := x.Coeffs()
		require.True(t, x.Conjugate().Equal(alg.FromCoeffs([8]scalar.Expr{c[0], c[1].Neg(), c[2].Neg(), c[3].Neg(), c[4], c[5].Neg(), c[6].Neg(), c[7].Neg()})))
		require.True(t, x.EpsConjugate().Equal(alg.FromCoeffs([8]scalar.Expr{c[0], c[1], c[2], c[3], c[4].Neg(), c[5].Neg(), c[6].Neg(), c[7].Neg()})))
		require.True(t, x.Conjugate().Conjugate().Equal(x))
		require.True(t, x.EpsConjugate().EpsConjugate().Equal(x))
		require.True(t, x.Mul(y).Conjugate().Equal(y.Conjugate().Mul(x.Conjugate())))
	})

	t.Run("Norm", func(t *testing.T) {
		n := x.Norm()
		require.True(t, n.VectorPart().IsZero())
		require.True(t, n.Equal(x.Conjugate().Mul(x)))
	})

	t.Run("Inverse", func(t *testing.T) {

		inv, err := x.Inv()
		require.NoError(t, err)
		require.True(t, x.Mul(inv).Equal(alg.One()))
		require.True(t, inv.Mul(x).Equal(alg.One()))

		q, err := x.Quo(y)
		require.NoError(t, err)
		require.True(t, q.Mul(y).Equal(x))
	})

	t.Run("NonInvertible", func(t *testing.T) {

		q, err := alg.NewBiQuaternion(0, 0, 0, 0, 1, 2, 3, 4)
		require.NoError(t, err)
		_, err = q.Inv()
		require.ErrorIs(t, err, biquaternion.ErrNonInvertible)

		_, err = x.Quo(alg.Zero())
		require.ErrorIs(t, err, biquaternion.ErrNonInvertible)

		s, _ := symbolic(alg, "s")
		_, err = s.Inv()
		require.ErrorIs(t, err, biquaternion.ErrNonInvertible)

		_, err = biquaternion.BiQuaternion{}.Inv()
		require.ErrorIs(t, err, biquaternion.ErrArgument)
	})

	t.Run("InverseRadical", func(t *testing.T) {

		sqrt2, err := scalar.Sqrt(big.NewInt(2))
		require.NoError(t, err)

		// (1 + sqrt(2)) + sqrt(2)*i + e*j
		q, err := alg.NewBiQuaternion(scalar.One().Add(sqrt2), sqrt2, 0, 0, 0, 0, 1, 0)
		require.NoError(t, err)

		inv, err := q.Inv()
		require.NoError(t, err)
		require.True(t, q.Mul(inv).Equal(alg.One()))
		require.True(t, inv.Mul(q).Equal(alg.One()))
	})

	t.Run("Pow", func(t *testing.T) {

		p, err := x.Pow(3)
		require.NoError(t, err)
		require.True(t, p.Equal(x.Mul(x).Mul(x)))

		p, err = x.Pow(uint8(0))
		require.NoError(t, err)
		require.True(t, p.Equal(alg.One()))

		p, err = x.Pow(uint64(3))
		require.NoError(t, err)
		require.True(t, p.Equal(x.Mul(x).Mul(x)))

		_, err = x.Pow(uint64(math.MaxInt64) + 1)
		require.ErrorIs(t, err, biquaternion.ErrArgument)

		p, err = x.Pow(-3)
		require.NoError(t, err)
		want := alg.One()
		for i := 0; i < 3; i++ {
			want, err = want.Quo(x)
			require.NoError(t, err)
		}
		require.True(t, p.Equal(want))

		_, err = x.Pow(0.5)
		require.ErrorIs(t, err, biquaternion.ErrExponentType)
	})

	t.Run("Parts", func(t *testing.T) {
		c := x.Coeffs()
		require.True(t, x.Primal().Add(alg.E().Mul(x.Dual())).Equal(x))
		require.True(t, x.ScalarPart().Add(x.VectorPart()).Equal(x))
		require.True(t, x.ScalarPart().Equal(alg.FromCoeffs([8]scalar.Expr{c[0], {}, {}, {}, c[4]})))
		require.True(t, x.Dual().Equal(alg.FromCoeffs([8]scalar.Expr{c[4], c[5], c[6], c[7]})))
	})

	t.Run("Coeff", func(t *testing.T) {
		s := scalar.Symbol("t")
		// q = x * t^2 + y
		q := x.Scale(s.Expr().Pow(2)).Add(y)
		require.Equal(t, 2, q.Degree(s))
		require.True(t, q.Coeff(s, 2).Equal(x))
		require.True(t, q.Coeff(s, 0).Equal(y))
		require.True(t, q.Subs(s, scalar.One()).Equal(x.Add(y)))
	})

	t.Run("String", func(t *testing.T) {
		q, err := alg.NewBiQuaternion(1, -2, 0, 1, 0, 0, "1/2", -1)
		require.NoError(t, err)
		require.Equal(t, "1 - 2*i + k + 1/2*e*j - e*k", q.String())
		require.Equal(t, "0", alg.Zero().String())
	})
}

func TestAlgebra(t *testing.T) {

	t.Run("Symbolic", func(t *testing.T) {

		y := scalar.Symbols("y1", "y2", "y3")

		alg, err := biquaternion.NewAlgebra(y[0], y[1], y[2])
		require.NoError(t, err)

		require.True(t, alg.I().Mul(alg.I()).Equal(alg.NewScalar(y[0].Expr())))
		require.True(t, alg.J().Mul(alg.J()).Equal(alg.NewScalar(y[1].Expr())))
		require.True(t, alg.E().Mul(alg.E()).Equal(alg.NewScalar(y[2].Expr())))
		require.True(t, alg.K().Mul(alg.K()).Equal(alg.NewScalar(y[0].Expr().Mul(y[1].Expr()).Neg())))

		x, _ := symbolic(alg, "x")
		z, _ := symbolic(alg, "z")
		w, _ := symbolic(alg, "w")
		require.True(t, x.Mul(z.Mul(w)).Equal(x.Mul(z).Mul(w)))
	})

	t.Run("InvalidParameter", func(t *testing.T) {
		_, err := biquaternion.NewAlgebra(-1, struct{}{}, 0)
		require.ErrorIs(t, err, biquaternion.ErrArgument)
	})

	t.Run("Mismatch", func(t *testing.T) {

		a := biquaternion.DualQuaternions()
		b, err := biquaternion.NewAlgebra(-1, -1, 1)
		require.NoError(t, err)

		require.True(t, a.Equal(biquaternion.DualQuaternions()))
		require.False(t, a.Equal(b))

		require.NotPanics(t, func() { a.I().Mul(biquaternion.DualQuaternions().J()) })

		require.PanicsWithError(t, biquaternion.ErrAlgebraMismatch.Error()+": "+a.String()+" and "+b.String(), func() {
			a.I().Mul(b.I())
		})

		q, err := b.NewBiQuaternion(a.E())
		require.NoError(t, err)
		require.True(t, q.Mul(q).Equal(b.One()))
	})
}

func TestTools(t *testing.T) {

	alg := biquaternion.DualQuaternions()
	prng := newPRNG(t)

	x := alg.RandBQ(prng, 10)
	y := alg.RandBQ(prng, 10)

	t.Run("Inner", func(t *testing.T) {
		require.True(t, biquaternion.Inner(x, y).Equal(biquaternion.Inner(y, x)))
		require.True(t, biquaternion.Inner(x, x).Equal(x.Norm()))
	})

	t.Run("Outer", func(t *testing.T) {
		require.True(t, biquaternion.Outer(x, y).Equal(biquaternion.Outer(y, x).Neg()))
		require.True(t, biquaternion.Outer(x, x).IsZero())
	})

	t.Run("FiberProject", func(t *testing.T) {
		// The projection satisfies the Study condition: the dual scalar part of its norm vanishes.
		q := biquaternion.FiberProject(x)
		require.True(t, q.Norm().Component(4).IsZero())
		// Points of the Study quadric with a unit primal part are fixed.
		l := alg.RandLine(prng, 10)
		r := alg.One().Add(alg.E().Mul(l))
		require.True(t, biquaternion.FiberProject(r).Equal(r))
	})

	t.Run("RandLine", func(t *testing.T) {
		l := alg.RandLine(prng, 10)
		require.True(t, l.ScalarPart().IsZero())
		require.True(t, l.Norm().VectorPart().IsZero())
		require.True(t, l.Norm().Component(4).IsZero())
	})
}
