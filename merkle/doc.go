/*
Package merkle implements a fixed-depth Merkle tree over field
elements, hashed with Keccak-256. It is a standalone collaborator: GKR
and the KZG commitment scheme in this module do not use it, but it
shares their field and hashing primitives and is kept alongside them
for building commit-and-prove data structures on top of the same
scalar field.
*/
package merkle
