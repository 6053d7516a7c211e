/*
Package gkrkzg binds the GKR circuit-evaluation argument to a
multilinear KZG commitment of the circuit's input layer, producing a
single succinct, non-interactive, publicly verifiable proof that a
committed input evaluates a fixed layered circuit to a claimed public
output.

GKR alone reduces a claim about the output layer to two claims about
the input layer at verifier-derived points; it does not say how those
claims get checked. This package closes that gap: the prover commits
to the input layer once with kzg.Commit, and answers the two final GKR
claims with two kzg.Prove openings. The verifier runs gkr.Verify to
obtain the same two points and claimed values, then checks both
against the input commitment with kzg.Verify.
*/
package gkrkzg
