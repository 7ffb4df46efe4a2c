package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {

	t.Run("NewFloat", func(t *testing.T) {
		require.Equal(t, uint(128), NewFloat(1, 128).Prec())
		f, _ := NewFloat(big.NewRat(3, 4), 64).Float64()
		require.Equal(t, 0.75, f)
		require.Panics(t, func() { NewFloat("1", 64) })
	})

	t.Run("Round", func(t *testing.T) {
		for _, tc := range []struct {
			x    float64
			want int64
		}{
			{0.4, 0}, {0.5, 1}, {1.5, 2}, {-0.5, -1}, {-1.4, -1}, {-2.6, -3},
		} {
			require.Equal(t, tc.want, Round(NewFloat(tc.x, 64)).Int64(), tc.x)
		}
	})

	t.Run("RoundToDenominator", func(t *testing.T) {
		r := RoundToDenominator(NewFloat(1.0/3.0, 64), big.NewInt(6))
		require.Zero(t, r.Cmp(big.NewRat(1, 3)))
	})

	t.Run("Root", func(t *testing.T) {
		y, _ := Root(NewFloat(8, 128), 3).Float64()
		require.InDelta(t, 2, y, 1e-15)
		y, _ = Root(NewFloat(2, 128), 2).Float64()
		require.InDelta(t, math.Sqrt2, y, 1e-15)
		require.Panics(t, func() { Root(NewFloat(-1, 64), 2) })
	})
}

func TestComplex(t *testing.T) {

	prec := uint(128)

	a := ToComplex(complex(1, 2), prec)
	b := ToComplex(complex(3, -1), prec)

	t.Run("Mul", func(t *testing.T) {
		require.Equal(t, complex(5, 5), NewComplex(prec).Mul(a, b).Complex128())
	})

	t.Run("Quo", func(t *testing.T) {
		c := NewComplex(prec).Quo(a, b)
		require.InDelta(t, 0.1, real(c.Complex128()), 1e-15)
		require.InDelta(t, 0.7, imag(c.Complex128()), 1e-15)
	})

	t.Run("Alias", func(t *testing.T) {
		c := a.Clone()
		c.Mul(c, c)
		require.Equal(t, complex(-3, 4), c.Complex128())
		c.Quo(c, c)
		require.Equal(t, complex(1, 0), c.Complex128())
	})

	t.Run("Abs", func(t *testing.T) {
		f, _ := ToComplex(complex(3, 4), prec).Abs().Float64()
		require.Equal(t, 5.0, f)
	})

	t.Run("IsReal", func(t *testing.T) {
		require.True(t, ToComplex(big.NewRat(1, 3), prec).IsReal())
		require.False(t, a.IsReal())
	})
}
