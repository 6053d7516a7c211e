package merkle

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Side records which side of a hash pairing a proof's sibling sits on.
type Side int

const (
	Left Side = iota
	Right
)

// SiblingHash is one step of a Merkle proof: the sibling hash at that
// level and which side it sits on relative to the hash being carried
// up the tree.
type SiblingHash struct {
	Hash fr.Element
	Side Side
}

// Proof attests that Data hashes to a specific leaf of a tree of a
// given root.
type Proof struct {
	Data     fr.Element
	Siblings []SiblingHash
}

// Tree is a fixed-depth Merkle tree over field elements. Leaves are
// always stored as Keccak-256 hashes of their underlying data, never
// as raw data, so that New and NewWithLeaves agree on representation.
type Tree struct {
	Depth  int
	Leaves []fr.Element
	levels [][]fr.Element // levels[i] has 2^(Depth-1-i) entries; levels[Depth-1] is the root
}

// New builds an empty tree of the given depth, every leaf the hash of
// the zero element.
func New(depth int) Tree {
	if depth < 1 {
		panic("merkle: depth must be at least 1")
	}
	leaves := make([]fr.Element, 1<<depth)
	var zero fr.Element
	hashedZero := hashLeaf(zero)
	for i := range leaves {
		leaves[i] = hashedZero
	}
	return newFromLeaves(depth, leaves)
}

// NewWithLeaves builds a tree of the given depth with inputs hashed
// into the first len(inputs) leaves, and the hash of zero filling the
// rest. It returns an error if inputs does not fit in the tree.
func NewWithLeaves(depth int, inputs []fr.Element) (Tree, error) {
	if depth < 1 {
		return Tree{}, fmt.Errorf("merkle: depth must be at least 1")
	}
	numLeaves := 1 << depth
	if len(inputs) > numLeaves {
		return Tree{}, fmt.Errorf("merkle: %d inputs do not fit in a depth-%d tree (capacity %d)", len(inputs), depth, numLeaves)
	}

	var zero fr.Element
	hashedZero := hashLeaf(zero)
	leaves := make([]fr.Element, numLeaves)
	for i := range leaves {
		leaves[i] = hashedZero
	}
	for i, input := range inputs {
		leaves[i] = hashLeaf(input)
	}

	return newFromLeaves(depth, leaves), nil
}

func newFromLeaves(depth int, leaves []fr.Element) Tree {
	levels := make([][]fr.Element, depth)
	current := leaves
	for level := 0; level < depth; level++ {
		next := make([]fr.Element, len(current)/2)
		for i := range next {
			next[i] = hashPair(current[2*i], current[2*i+1])
		}
		levels[level] = next
		current = next
	}
	return Tree{Depth: depth, Leaves: leaves, levels: levels}
}

// Root returns the tree's root hash.
func (t *Tree) Root() fr.Element {
	return t.levels[t.Depth-1][0]
}

// UpdateLeaf sets leafID's value, hashing data first unless isHash
// indicates data is already a hash, and recomputes the path to the
// root.
func (t *Tree) UpdateLeaf(leafID int, data fr.Element, isHash bool) error {
	if leafID < 0 || leafID >= len(t.Leaves) {
		return fmt.Errorf("merkle: invalid leaf id %d", leafID)
	}

	newHash := data
	if !isHash {
		newHash = hashLeaf(data)
	}
	t.Leaves[leafID] = newHash
	t.recomputePath(leafID)
	return nil
}

func (t *Tree) recomputePath(leafID int) {
	currentHash := t.Leaves[leafID]
	index := leafID

	for level := 0; level < t.Depth; level++ {
		siblingIndex := index ^ 1

		var siblingHash fr.Element
		if level == 0 {
			siblingHash = t.Leaves[siblingIndex]
		} else {
			siblingHash = t.levels[level-1][siblingIndex]
		}

		var left, right fr.Element
		if index%2 == 0 {
			left, right = currentHash, siblingHash
		} else {
			left, right = siblingHash, currentHash
		}
		currentHash = hashPair(left, right)

		parentIndex := index / 2
		t.levels[level][parentIndex] = currentHash
		index = parentIndex
	}
}

// Proof builds a membership proof that dataToProve hashes to leaf
// leafID. It returns an error if the leaf does not currently hold
// dataToProve's hash.
func (t *Tree) Proof(dataToProve fr.Element, leafID int) (Proof, error) {
	if leafID < 0 || leafID >= len(t.Leaves) {
		return Proof{}, fmt.Errorf("merkle: invalid leaf id %d", leafID)
	}

	dataHash := hashLeaf(dataToProve)
	if !t.Leaves[leafID].Equal(&dataHash) {
		return Proof{}, fmt.Errorf("merkle: data does not match the leaf hash")
	}

	siblings := make([]SiblingHash, t.Depth)
	index := leafID

	for level := 0; level < t.Depth; level++ {
		siblingIndex := index ^ 1

		var siblingHash fr.Element
		if level == 0 {
			siblingHash = t.Leaves[siblingIndex]
		} else {
			siblingHash = t.levels[level-1][siblingIndex]
		}

		side := Right
		if index%2 != 0 {
			side = Left
		}

		siblings[level] = SiblingHash{Hash: siblingHash, Side: side}
		index /= 2
	}

	return Proof{Data: dataToProve, Siblings: siblings}, nil
}

// Verify checks proof against root.
func Verify(root fr.Element, proof Proof) bool {
	currentHash := hashLeaf(proof.Data)

	for _, s := range proof.Siblings {
		var left, right fr.Element
		if s.Side == Left {
			left, right = s.Hash, currentHash
		} else {
			right, left = s.Hash, currentHash
		}
		currentHash = hashPair(left, right)
	}

	return root.Equal(&currentHash)
}

func hashLeaf(data fr.Element) fr.Element {
	h := sha3.NewLegacyKeccak256()
	h.Write(leBytes(data))
	return elementFromLEBytesModOrder(h.Sum(nil))
}

func hashPair(left, right fr.Element) fr.Element {
	h := sha3.NewLegacyKeccak256()
	h.Write(leBytes(left))
	h.Write(leBytes(right))
	return elementFromLEBytesModOrder(h.Sum(nil))
}

func leBytes(e fr.Element) []byte {
	be := e.Bytes()
	le := make([]byte, len(be))
	for i := range be {
		le[i] = be[len(be)-1-i]
	}
	return le
}

func elementFromLEBytesModOrder(digest []byte) fr.Element {
	be := make([]byte, len(digest))
	for i, b := range digest {
		be[len(digest)-1-i] = b
	}
	var e fr.Element
	e.SetBytes(be)
	return e
}
