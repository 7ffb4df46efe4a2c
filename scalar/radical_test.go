package scalar

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sqrt(t *testing.T, n int64) Expr {
	e, err := Sqrt(big.NewInt(n))
	require.NoError(t, err)
	return e
}

func TestRadical(t *testing.T) {

	x := Symbol("x").Expr()

	t.Run("Sqrt", func(t *testing.T) {
		require.True(t, cmp.Equal(NewInt(3), sqrt(t, 9)))
		require.True(t, cmp.Equal(NewInt(2).Mul(sqrt(t, 2)), sqrt(t, 8)))
		require.True(t, sqrt(t, 0).IsZero())
		require.Equal(t, "2*sqrt(2)", sqrt(t, 8).String())

		_, err := Sqrt(big.NewInt(-2))
		require.Error(t, err)
	})

	t.Run("Arithmetic", func(t *testing.T) {

		s2, s3, s6 := sqrt(t, 2), sqrt(t, 3), sqrt(t, 6)

		require.True(t, cmp.Equal(NewInt(2), s2.Mul(s2)))
		require.True(t, cmp.Equal(s6, s2.Mul(s3)))
		require.True(t, cmp.Equal(NewInt(3).Mul(s2), s6.Mul(s3)))

		// (1 + sqrt(2))(1 - sqrt(2)) = -1
		require.True(t, cmp.Equal(NewInt(-1), One().Add(s2).Mul(One().Sub(s2))))

		// (x - sqrt(2))(x + sqrt(2)) = x^2 - 2
		require.True(t, cmp.Equal(x.Pow(2).Sub(NewInt(2)), x.Sub(s2).Mul(x.Add(s2))))

		require.True(t, s2.IsConstant())
		require.False(t, s2.IsRational())
		_, ok := s2.Rat()
		require.False(t, ok)
		require.False(t, s2.Add(s3).Equal(sqrt(t, 5)))
	})

	t.Run("Inv", func(t *testing.T) {

		s2, s3 := sqrt(t, 2), sqrt(t, 3)

		for _, e := range []Expr{
			NewFrac(-3, 4),
			s2,
			One().Add(s2),
			NewFrac(1, 2).Sub(s2).Add(s3),
			s2.Add(s3).Add(sqrt(t, 5)),
		} {
			inv, err := e.Inv()
			require.NoError(t, err, "%s", e)
			require.True(t, e.Mul(inv).IsOne(), "%s * %s", e, inv)
		}

		_, err := Zero().Inv()
		require.ErrorIs(t, err, ErrNotInvertible)

		_, err = x.Inv()
		require.ErrorIs(t, err, ErrNotInvertible)
	})

	t.Run("Univariate", func(t *testing.T) {

		_, err := x.Add(sqrt(t, 2)).ToUnivariate("x")
		require.ErrorIs(t, err, ErrIrrational)

		_, err = sqrt(t, 2).Eval(nil)
		require.ErrorIs(t, err, ErrIrrational)
	})
}
