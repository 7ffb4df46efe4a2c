package biquaternion

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/tuneinsight/biquat/scalar"
)

// product is the structure constant of the product of two basis elements:
// e_a * e_b = coeff * e_idx.
type product struct {
	idx   int
	coeff scalar.Expr
}

// Algebra stores the parameters of a biquaternion algebra:
// i^2 = ISq, j^2 = JSq, e^2 = ESq, ij = -ji = k, and e commutes with i, j and k.
// An Algebra is immutable and can be shared between goroutines.
type Algebra struct {
	iSq, jSq, eSq scalar.Expr
	table         [8][8]product
}

// NewAlgebra creates a new Algebra from the squares of i, j and e.
// Accepted types are those of scalar.Parse.
func NewAlgebra(iSq, jSq, eSq interface{}) (alg *Algebra, err error) {

	alg = new(Algebra)

	if alg.iSq, err = scalar.Parse(iSq); err != nil {
		return nil, fmt.Errorf("cannot NewAlgebra: i^2: %w: %w", ErrArgument, err)
	}

	if alg.jSq, err = scalar.Parse(jSq); err != nil {
		return nil, fmt.Errorf("cannot NewAlgebra: j^2: %w: %w", ErrArgument, err)
	}

	if alg.eSq, err = scalar.Parse(eSq); err != nil {
		return nil, fmt.Errorf("cannot NewAlgebra: e^2: %w: %w", ErrArgument, err)
	}

	alg.genTable()

	return
}

// DualQuaternions returns the algebra of dual quaternions: i^2 = j^2 = -1, e^2 = 0.
func DualQuaternions() *Algebra {
	alg, _ := NewAlgebra(-1, -1, 0)
	return alg
}

// genTable populates the structure constants.
// The basis is ordered as 1, i, j, k, e, ei, ej, ek.
func (alg *Algebra) genTable() {

	type entry struct {
		sign       int64
		useI, useJ bool
		idx        int
	}

	// Products of the quaternion units 1, i, j, k.
	quat := [4][4]entry{
		{{1, false, false, 0}, {1, false, false, 1}, {1, false, false, 2}, {1, false, false, 3}},
		{{1, false, false, 1}, {1, true, false, 0}, {1, false, false, 3}, {1, true, false, 2}},
		{{1, false, false, 2}, {-1, false, false, 3}, {1, false, true, 0}, {-1, false, true, 1}},
		{{1, false, false, 3}, {-1, true, false, 2}, {1, false, true, 1}, {-1, true, true, 0}},
	}

	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {

			q := quat[a&3][b&3]

			coeff := scalar.NewInt(q.sign)
			if q.useI {
				coeff = coeff.Mul(alg.iSq)
			}
			if q.useJ {
				coeff = coeff.Mul(alg.jSq)
			}

			idx := q.idx
			switch (a >> 2) + (b >> 2) {
			case 1:
				idx += 4
			case 2:
				coeff = coeff.Mul(alg.eSq)
			}

			alg.table[a][b] = product{idx: idx, coeff: coeff}
		}
	}
}

// ISq returns the square of i.
func (alg *Algebra) ISq() scalar.Expr {
	return alg.iSq
}

// JSq returns the square of j.
func (alg *Algebra) JSq() scalar.Expr {
	return alg.jSq
}

// ESq returns the square of e.
func (alg *Algebra) ESq() scalar.Expr {
	return alg.eSq
}

// Equal returns true if both algebras have the same parameters.
func (alg *Algebra) Equal(other *Algebra) bool {
	if alg == other {
		return true
	}
	if alg == nil || other == nil {
		return false
	}
	return cmp.Equal(alg.iSq, other.iSq) && cmp.Equal(alg.jSq, other.jSq) && cmp.Equal(alg.eSq, other.eSq)
}

// String returns the defining relations of the algebra.
func (alg *Algebra) String() string {
	return fmt.Sprintf("i^2 = %s, j^2 = %s, e^2 = %s", alg.iSq, alg.jSq, alg.eSq)
}

// FromCoeffs returns the biquaternion with the given coefficients
// in the order 1, i, j, k, e, ei, ej, ek.
func (alg *Algebra) FromCoeffs(c [8]scalar.Expr) BiQuaternion {
	return BiQuaternion{alg: alg, c: c}
}

// NewScalar returns the biquaternion s + 0i + 0j + ...
func (alg *Algebra) NewScalar(s scalar.Expr) BiQuaternion {
	return BiQuaternion{alg: alg, c: [8]scalar.Expr{s}}
}

func (alg *Algebra) unit(idx int) BiQuaternion {
	q := BiQuaternion{alg: alg}
	q.c[idx] = scalar.One()
	return q
}

// Zero returns the additive identity.
func (alg *Algebra) Zero() BiQuaternion {
	return BiQuaternion{alg: alg}
}

// One returns the multiplicative identity.
func (alg *Algebra) One() BiQuaternion {
	return alg.unit(0)
}

// I returns the unit i.
func (alg *Algebra) I() BiQuaternion {
	return alg.unit(1)
}

// J returns the unit j.
func (alg *Algebra) J() BiQuaternion {
	return alg.unit(2)
}

// K returns the unit k = ij.
func (alg *Algebra) K() BiQuaternion {
	return alg.unit(3)
}

// E returns the dual unit e.
func (alg *Algebra) E() BiQuaternion {
	return alg.unit(4)
}
