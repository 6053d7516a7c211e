/*
Package kzg implements a multilinear polynomial commitment scheme in
the style of KZG: a trusted-setup vector of random field elements
("taus", one per variable) is used to derive a structured reference
string that commits to a multilinear polynomial's evaluation-form
coefficients directly in the Lagrange basis, and to open that
commitment at any point with a succinct, pairing-checkable proof.

Setup fixes the variable arity the SRS supports. Commit takes a
multilinear.Poly of that arity and returns a single G1 point. Prove
produces, for a given opening point, one quotient commitment per
variable via the standard multilinear telescoping decomposition

	f(X) - f(z) = sum_i q_i(X_{i+1..n}) * (X_i - z_i)

and Verify checks the opening via a single multi-pairing product.
*/
package kzg
