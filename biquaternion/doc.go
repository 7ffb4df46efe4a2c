/*
Package biquaternion implements biquaternion algebras over the commutative ring of
rational multivariate polynomials.

An Algebra is defined by the squares of its units i, j and e, with ij = -ji = k and e
commuting with i, j and k. The default algebra, returned by DualQuaternions, is the
algebra of dual quaternions (i^2 = j^2 = -1, e^2 = 0) used to describe rigid body motions.

Every BiQuaternion is bound to the Algebra that created it. Combining biquaternions of
different algebras panics with ErrAlgebraMismatch.
*/
package biquaternion
