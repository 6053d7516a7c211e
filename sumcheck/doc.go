/*
Package sumcheck implements the sum-check protocol: an interactive proof
that a multilinear (or product-of-multilinears) polynomial sums to a
claimed value over the Boolean hypercube.

Two forms are provided. Prove/Verify operate on a multilinear.SumPoly,
the composed add_i/mul_i-weighted form GKR reduces one circuit layer's
claim to; its round polynomials have degree up to 2. ProveSingle/
VerifySingle operate on a bare multilinear.Poly, the simplified one-poly
sum-check used standalone (not as a GKR building block); its round
polynomials are always linear.

Both forms are driven by a transcript.Transcript so the round
challenges are derived non-interactively via Fiat-Shamir instead of
being supplied by an interactive verifier.
*/
package sumcheck
