package multilinear

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Operation is the gate/selector operator: addition or multiplication.
type Operation int

const (
	Add Operation = iota
	Mul
)

// Apply computes a+b or a*b depending on the operation.
func (op Operation) Apply(a, b fr.Element) fr.Element {
	var result fr.Element
	switch op {
	case Add:
		result.Add(&a, &b)
	case Mul:
		result.Mul(&a, &b)
	default:
		panic("multilinear: unknown operation")
	}
	return result
}

func (op Operation) String() string {
	if op == Add {
		return "add"
	}
	return "mul"
}
