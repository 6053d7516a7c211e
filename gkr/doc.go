/*
Package gkr implements the GKR interactive proof for correct evaluation
of a layered, fan-in-2 arithmetic circuit, Fiat-Shamir transformed into
a non-interactive argument via transcript.Transcript.

The prover walks the circuit from the output layer to the input layer.
At each layer it reduces a single claim about that layer's wire values
at a point to two claims about the next layer's wire values, via a
sum-check over a SumPoly combining the layer's add/mul selector
polynomials with the next layer's values. The two claims are folded
into one with verifier-chosen weights before moving to the next layer,
so the per-layer claim count stays constant instead of doubling.

The final layer's two claims are about the circuit's raw inputs; this
package does not verify them itself; it returns them as a FinalClaim
for the caller to check against however it commits to the input layer
(a multilinear KZG commitment, in this module's case).
*/
package gkr
