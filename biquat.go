/*
Package biquat is a pure Go library for exact computations with biquaternions and polynomials
with biquaternion coefficients. It provides the dual quaternion model of space kinematics,
left and right Euclidean division of non-commutative polynomials and the factorization of
rational motion polynomials into linear factors, enabling the synthesis of linkages from
rational motions with exact rational arithmetic.
*/
package biquat
