package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/biquat/biquaternion"
	"github.com/tuneinsight/biquat/polynomial"
	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils/sampling"
)

func TestDiv(tt *testing.T) {

	alg := biquaternion.DualQuaternions()

	prng, err := sampling.NewKeyedPRNG([]byte("division"))
	require.NoError(tt, err)

	for _, right := range []bool{true, false} {

		name := map[bool]string{true: "Right", false: "Left"}[right]

		tt.Run(name, func(tt *testing.T) {

			for i := 0; i < 4; i++ {

				p1 := randPoly(alg, prng, t, 4)
				p2 := randPoly(alg, prng, t, 2)

				quo, rem, err := polynomial.Div(p1, p2, t, right)
				require.NoError(tt, err)

				require.Less(tt, rem.Deg(t), p2.Deg(t))

				var prod *polynomial.Poly
				if right {
					prod = p2.Mul(quo)
				} else {
					prod = quo.Mul(p2)
				}

				require.True(tt, prod.Add(rem).Equal(p1), "p1=%v p2=%v quo=%v rem=%v", p1, p2, quo, rem)
			}
		})
	}

	tt.Run("Exact", func(tt *testing.T) {
		a := polynomial.NewBiQuaternion(alg.RandBQ(prng, 10), t).Add(polynomial.Monomial(t, 1))
		b := polynomial.NewBiQuaternion(alg.RandBQ(prng, 10), t).Add(polynomial.Monomial(t, 1))
		p := a.Mul(b)

		quo, rem, err := polynomial.Div(p, b, t, false)
		require.NoError(tt, err)
		require.True(tt, rem.IsZero())
		require.True(tt, quo.Equal(a))

		quo, rem, err = polynomial.Div(p, a, t, true)
		require.NoError(tt, err)
		require.True(tt, rem.IsZero())
		require.True(tt, quo.Equal(b))
	})

	tt.Run("Scalar", func(tt *testing.T) {
		// t^3 - 1 = (2t - 2) * (t^2 + t + 1)/2
		T := t.Expr()
		p1 := polynomial.NewScalar(T.Pow(3).Sub(scalar.One()), t)
		p2 := polynomial.NewScalar(T.Mul(scalar.NewInt(2)).Sub(scalar.NewInt(2)), t)

		quo, rem, err := polynomial.Div(p1, p2, t, true)
		require.NoError(tt, err)
		require.True(tt, rem.IsZero())
		require.True(tt, quo.Equal(polynomial.NewScalar(T.Pow(2).Add(T).Add(scalar.One()).Mul(scalar.NewFrac(1, 2)), t)))
		require.Equal(tt, polynomial.Scalar, quo.Ring())
	})

	tt.Run("LowDegree", func(tt *testing.T) {
		p1 := randPoly(alg, prng, t, 1)
		p2 := randPoly(alg, prng, t, 3)

		quo, rem, err := polynomial.Div(p1, p2, t, true)
		require.NoError(tt, err)
		require.True(tt, quo.IsZero())
		require.True(tt, rem.Equal(p1))
	})

	tt.Run("ZeroDivisor", func(tt *testing.T) {
		_, _, err := polynomial.Div(randPoly(alg, prng, t, 2), polynomial.NewScalar(scalar.Zero(), t), t, true)
		require.ErrorIs(tt, err, polynomial.ErrZeroDivisor)
	})

	tt.Run("NonInvertible", func(tt *testing.T) {
		// e has quadrance zero.
		p2 := polynomial.NewBiQuaternion(alg.E(), t).Mul(polynomial.Monomial(t, 1)).Add(polynomial.NewBiQuaternion(alg.One(), t))
		_, _, err := polynomial.Div(randPoly(alg, prng, t, 2), p2, t, false)
		require.ErrorIs(tt, err, biquaternion.ErrNonInvertible)

		// Symbolic leading coefficients are not units of the coefficient ring.
		p2 = polynomial.NewScalar(s.Expr().Mul(t.Expr()), t, s)
		_, _, err = polynomial.Div(randPoly(alg, prng, t, 2), p2, t, true)
		require.ErrorIs(tt, err, biquaternion.ErrNonInvertible)
	})
}
