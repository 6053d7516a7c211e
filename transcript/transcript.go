package transcript

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Transcript is an opaque absorbent state backed by Keccak-256. It is the
// verifier oracle that makes the GKR / sum-check interactive proofs
// non-interactive via Fiat-Shamir.
type Transcript struct {
	hasher hash.Hash
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{hasher: sha3.NewLegacyKeccak256()}
}

// Append absorbs preimage into the transcript state.
func (t *Transcript) Append(preimage []byte) {
	t.hasher.Write(preimage)
}

// AppendElements absorbs the canonical little-endian encoding of each
// field element, in order.
func (t *Transcript) AppendElements(elements []fr.Element) {
	for i := range elements {
		b := littleEndianBytes(&elements[i])
		t.Append(b[:])
	}
}

// AppendElement is a convenience wrapper around AppendElements for a
// single value.
func (t *Transcript) AppendElement(e fr.Element) {
	b := littleEndianBytes(&e)
	t.Append(b[:])
}

// Squeeze finalizes the current state into a challenge, re-absorbs the
// digest so that a second call without an intervening Append produces a
// different challenge, and returns the digest reduced modulo the scalar
// field order.
func (t *Transcript) Squeeze() fr.Element {
	digest := t.hasher.Sum(nil)
	t.hasher.Write(digest)
	return elementFromLEBytesModOrder(digest)
}

// littleEndianBytes returns the canonical little-endian encoding of e.
func littleEndianBytes(e *fr.Element) [fr.Bytes]byte {
	be := e.Bytes()
	var le [fr.Bytes]byte
	for i := range be {
		le[i] = be[fr.Bytes-1-i]
	}
	return le
}

// elementFromLEBytesModOrder interprets digest as the bytes of a
// little-endian unsigned integer and reduces it modulo the scalar field
// order, mirroring the from_le_bytes_mod_order contract of spec.md §6.
func elementFromLEBytesModOrder(digest []byte) fr.Element {
	be := make([]byte, len(digest))
	for i, b := range digest {
		be[len(digest)-1-i] = b
	}
	var e fr.Element
	e.SetBytes(be)
	return e
}
