package scalar

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/biquat/utils/bignum"
)

// Sqrt returns the square root of the non-negative integer n as root * sqrt(core),
// where core is the square-free part of n.
func Sqrt(n *big.Int) (Expr, error) {

	if n.Sign() == 0 {
		return Expr{}, nil
	}

	core, root, err := bignum.SquareFreePart(n)
	if err != nil {
		return Expr{}, fmt.Errorf("cannot Sqrt: %w", err)
	}

	var rad *big.Int
	if core.Cmp(big.NewInt(1)) != 0 {
		rad = core
	}

	b := builder{}
	b.add(nil, rad, new(big.Rat).SetInt(root))
	return b.expr(), nil
}

// mulRadicals returns g and r such that sqrt(a) * sqrt(b) = g * sqrt(r) for the
// square-free integers a and b. nil stands for 1 in both inputs and outputs.
func mulRadicals(a, b *big.Int) (g, r *big.Int) {

	if a == nil {
		return nil, b
	}

	if b == nil {
		return nil, a
	}

	g = new(big.Int).GCD(nil, nil, a, b)

	r = new(big.Int).Quo(a, g)
	r.Mul(r, new(big.Int).Quo(b, g))

	if r.Cmp(big.NewInt(1)) == 0 {
		r = nil
	}

	return
}

// radicalBasis returns the square-free radicands spanning the field generated
// by the radicals of e, starting with nil for 1.
func (e Expr) radicalBasis() (basis []*big.Int, index map[string]int) {

	key := func(r *big.Int) string {
		if r == nil {
			return ""
		}
		return r.String()
	}

	basis = []*big.Int{nil}
	index = map[string]int{"": 0}

	insert := func(r *big.Int) {
		if _, ok := index[key(r)]; !ok {
			index[key(r)] = len(basis)
			basis = append(basis, r)
		}
	}

	for _, t := range e.terms {
		insert(t.rad)
	}

	for i := 0; i < len(basis); i++ {
		for j := 0; j <= i; j++ {
			_, r := mulRadicals(basis[i], basis[j])
			insert(r)
		}
	}

	return
}

// Inv returns 1/e for a non-zero constant e.
// The inverse is found by solving e * x = 1 over the field spanned by the radicals of e.
func (e Expr) Inv() (Expr, error) {

	if !e.IsConstant() || e.IsZero() {
		return Expr{}, fmt.Errorf("cannot Inv: %w: %s", ErrNotInvertible, e)
	}

	if r, ok := e.Rat(); ok {
		return NewRat(r.Inv(r)), nil
	}

	basis, index := e.radicalBasis()

	n := len(basis)

	// Column j holds the coordinates of e * sqrt(basis[j]).
	m := make([][]*big.Rat, n)
	for i := range m {
		m[i] = make([]*big.Rat, n+1)
		for j := range m[i] {
			m[i][j] = new(big.Rat)
		}
	}
	m[0][n].SetInt64(1)

	for j, rj := range basis {
		for _, t := range e.terms {
			g, r := mulRadicals(t.rad, rj)
			c := new(big.Rat).Set(t.coeff)
			if g != nil {
				c.Mul(c, new(big.Rat).SetInt(g))
			}
			key := ""
			if r != nil {
				key = r.String()
			}
			row := m[index[key]]
			row[j].Add(row[j], c)
		}
	}

	x, ok := solve(m)
	if !ok {
		return Expr{}, fmt.Errorf("cannot Inv: %w: %s", ErrNotInvertible, e)
	}

	b := builder{}
	for j, r := range basis {
		b.add(nil, r, x[j])
	}

	return b.expr(), nil
}

// solve returns the solution of the square linear system given as an augmented matrix,
// which it overwrites, and false if the system is singular.
func solve(m [][]*big.Rat) (x []*big.Rat, ok bool) {

	n := len(m)
	tmp := new(big.Rat)

	for col := 0; col < n; col++ {

		pivot := -1
		for row := col; row < n; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}

		if pivot < 0 {
			return nil, false
		}

		m[col], m[pivot] = m[pivot], m[col]

		inv := new(big.Rat).Inv(m[col][col])
		for k := col; k <= n; k++ {
			m[col][k].Mul(m[col][k], inv)
		}

		for row := 0; row < n; row++ {
			if row == col || m[row][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(m[row][col])
			for k := col; k <= n; k++ {
				m[row][k].Sub(m[row][k], tmp.Mul(f, m[col][k]))
			}
		}
	}

	x = make([]*big.Rat, n)
	for i := range x {
		x[i] = m[i][n]
	}

	return x, true
}
