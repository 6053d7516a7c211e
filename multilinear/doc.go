/*
Package multilinear implements multilinear polynomials in evaluation
form over the Boolean hypercube, and the composed ProductPoly / SumPoly
forms that the sum-check protocol and GKR drive their rounds over.

Every polynomial here is represented by its 2^n evaluations on {0,1}^n,
never by coefficients. Variables are bound MSB-first: evaluation index i
encodes the assignment (x_0, ..., x_{n-1}) with x_0 as the most
significant bit of i. Every partial evaluation, tensor lift, and full
evaluation in this package and its callers binds variables in that same
order; diverging from it anywhere breaks the selector-polynomial
packing the circuit package relies on.
*/
package multilinear
