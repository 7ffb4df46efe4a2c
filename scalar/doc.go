// Package scalar implements exact multivariate polynomials in named symbols whose
// coefficients are rational or rational combinations of square roots of integers,
// see Sqrt. They are the coefficient ring of the biquaternion algebras.
//
// Expressions are always stored in expanded form, so that two expressions are equal
// if and only if they are structurally equal.
package scalar
