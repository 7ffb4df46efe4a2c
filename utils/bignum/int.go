package bignum

import (
	"errors"
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot Newint: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// NewRat allocates a new *big.Rat.
// Accepted types are: string, int, int64, uint64, *big.Int or *big.Rat.
func NewRat(x interface{}) (y *big.Rat) {

	y = new(big.Rat)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		if _, ok := y.SetString(x); !ok {
			panic(fmt.Sprintf("cannot NewRat: invalid rational literal %q", x))
		}
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewRat: accepted types are string, int, int64, uint64, *big.Int, *big.Rat, but is %T", x))
	}

	return
}

// ErrSquareFreePart is returned by SquareFreePart when the cofactor left by the
// trial division is too large to be classified.
var ErrSquareFreePart = errors.New("cannot determine the square-free part")

// trialBound is the largest trial divisor used by SquareFreePart.
const trialBound = 1 << 16

// SquareFreePart returns the square-free integer core and the integer root such
// that n = root^2 * core, for n > 0. Prime factors up to 2^16 are found by trial
// division and the remaining cofactor must either be a perfect square or be smaller
// than 2^48, in which case it is a prime, a product of two distinct primes or a square.
func SquareFreePart(n *big.Int) (core, root *big.Int, err error) {

	if n.Sign() <= 0 {
		return nil, nil, fmt.Errorf("cannot SquareFreePart: %w: %v is not positive", ErrSquareFreePart, n)
	}

	core, root = big.NewInt(1), big.NewInt(1)

	m := new(big.Int).Set(n)
	d, q, r, sq := new(big.Int), new(big.Int), new(big.Int), new(big.Int)

	for p := int64(2); p <= trialBound; p++ {

		d.SetInt64(p)

		if sq.Mul(d, d).Cmp(m) > 0 {
			break
		}

		k := 0
		for {
			if q.QuoRem(m, d, r); r.Sign() != 0 {
				break
			}
			m.Set(q)
			k++
		}

		for ; k >= 2; k -= 2 {
			root.Mul(root, d)
		}

		if k == 1 {
			core.Mul(core, d)
		}
	}

	if s := new(big.Int).Sqrt(m); sq.Mul(s, s).Cmp(m) == 0 {
		root.Mul(root, s)
		return
	}

	if m.BitLen() > 48 {
		return nil, nil, fmt.Errorf("cannot SquareFreePart: %w: cofactor %v of %v", ErrSquareFreePart, m, n)
	}

	core.Mul(core, m)

	return
}
