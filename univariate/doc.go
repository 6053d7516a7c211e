// Package univariate implements dense univariate polynomials over the
// scalar field, used to carry sum-check round polynomials.
package univariate
