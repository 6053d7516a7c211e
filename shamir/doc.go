/*
Package shamir implements (t, n) Shamir secret sharing over the
scalar field, built on the univariate polynomial engine: a secret is
encoded as the free value of a random degree-(t-1) polynomial at a
fixed point, shares are evaluations of that polynomial at random
points, and any t shares recover it via Lagrange interpolation.

Like merkle, this package is a standalone collaborator: nothing in the
GKR or KZG pipeline depends on it.
*/
package shamir
