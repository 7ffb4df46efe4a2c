package biquaternion

import (
	"github.com/tuneinsight/biquat/scalar"
)

var half = scalar.NewFrac(1, 2)

// Inner returns the inner product (a * ~b + b * ~a) / 2.
func Inner(a, b BiQuaternion) BiQuaternion {
	return a.Mul(b.Conjugate()).Add(b.Mul(a.Conjugate())).Scale(half)
}

// Outer returns the outer product (a * b - b * a) / 2.
func Outer(a, b BiQuaternion) BiQuaternion {
	return a.Mul(b).Sub(b.Mul(a)).Scale(half)
}

// FiberProject projects q onto the Study quadric. The returned biquaternion
// describes the same transformation as q.
func FiberProject(q BiQuaternion) BiQuaternion {

	primal := q.Primal()
	dual := q.Dual()

	cross := primal.Mul(dual.Conjugate()).Sub(dual.Mul(primal.Conjugate()))

	return primal.Quadrance().Scale(scalar.NewInt(2)).
		Sub(q.alg.E().Mul(cross)).
		Mul(primal).
		Scale(half)
}
