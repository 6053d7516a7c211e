/*
Package transcript implements the Fiat-Shamir transcript used to turn the
GKR and sum-check interactive proofs into non-interactive arguments.

The transcript is a running Keccak-256 sponge. Appending bytes absorbs
them into the hash state. Squeezing finalizes the current state into a
challenge, then re-absorbs that digest so that two squeezes with no
intervening append diverge instead of repeating the same challenge.
Challenges are field elements obtained by reducing the digest, read as a
little-endian integer, modulo the scalar field order.
*/
package transcript
