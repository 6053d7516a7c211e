/*
Package circuit models a fixed, layered, fan-in-2 arithmetic circuit
over the scalar field and its selector polynomials.

A Circuit is built from a per-layer list of gate operations given in
input-to-output order (the natural way to describe a circuit: "first
these raw inputs combine into four values, then those combine into
two, then into one output"). Internally the circuit is stored with
layer 0 as the output-closest layer and the last layer as the
input-closest one, since that is the order the GKR prover and verifier
walk layers in; New reverses the caller's list once at construction so
every other method can assume that convention.
*/
package circuit
