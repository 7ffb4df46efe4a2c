package biquaternion

import (
	"io"

	"github.com/tuneinsight/biquat/scalar"
	"github.com/tuneinsight/biquat/utils/sampling"
)

// RandRational returns a random rational (-1)^s * a / (b + 1) with a, b in [0, max-1] read from r.
func RandRational(r io.Reader, max int64) scalar.Expr {
	return scalar.NewRat(sampling.RandRat(r, max))
}

// RandQuat returns a random quaternion of the algebra with rational coefficients.
func (alg *Algebra) RandQuat(r io.Reader, max int64) BiQuaternion {
	q := alg.Zero()
	for i := 0; i < 4; i++ {
		q.c[i] = RandRational(r, max)
	}
	return q
}

// RandBQ returns a random biquaternion of the algebra with rational coefficients.
func (alg *Algebra) RandBQ(r io.Reader, max int64) BiQuaternion {
	q := alg.Zero()
	for i := range q.c {
		q.c[i] = RandRational(r, max)
	}
	return q
}

// RandLine returns the Pluecker coordinates of the line joining two random
// projective points, embedded as a biquaternion with vanishing scalar part.
func (alg *Algebra) RandLine(r io.Reader, max int64) BiQuaternion {

	var p, q [4]scalar.Expr
	for i := range p {
		p[i] = RandRational(r, max)
	}
	for i := range q {
		q[i] = RandRational(r, max)
	}

	minor := func(a, b int) scalar.Expr {
		return p[a].Mul(q[b]).Sub(p[b].Mul(q[a]))
	}

	return alg.FromCoeffs([8]scalar.Expr{
		{},
		minor(0, 1),
		minor(0, 2),
		minor(0, 3),
		{},
		minor(2, 3),
		minor(3, 1),
		minor(1, 2),
	})
}
