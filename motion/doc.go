/*
Package motion implements the factorization of motion polynomials, univariate polynomials
with biquaternion coefficients, into products of linear factors.

Let P be a monic polynomial in t over the biquaternions and N = P * ~P its norm polynomial.
The factorization proceeds as follows:
 1. N is split into real irreducible factors of degree one and two, with rational coefficients
    or coefficients in a real quadratic field, see IrreducibleFactors.
 2. For each factor M, processed from the last to the first, the remainder r1*t + r0 of the
    division of the current quotient Q by M yields the linear right factor t - h with
    h = -r1^-1 * r0, and Q is replaced by the quotient of Q by t - h, see SplitLinFactor.
 3. The linear factors are listed in the order in which their product is P.

The factorization exists for generic motion polynomials. Polynomials whose primal and dual
parts share a real factor (see IsReduced) may fail with biquaternion.ErrNonInvertible, and
norm polynomials whose quadratic factors need a field of degree larger than two over the
rationals fail with factorization.ErrNoFactor.
*/
package motion
