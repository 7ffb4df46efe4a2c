// Package polynomial implements polynomials in commuting indeterminates with
// coefficients in the scalar ring or in a biquaternion algebra, together with
// left and right division with remainder.
package polynomial
