package multilinear

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Poly represents a multilinear polynomial p: F^n -> F by its 2^n
// evaluations on {0,1}^n. Evaluations is never empty and its length is
// always a power of two; NumVars is log2(len(Evaluations)).
type Poly struct {
	Evaluations []fr.Element
	NumVars     int
}

// New builds a Poly from its hypercube evaluations. It panics if the
// length is not a power of two, a fatal configuration error per
// spec.md §7.
func New(evaluations []fr.Element) Poly {
	n := bitLength(len(evaluations))
	if len(evaluations) != 1<<n {
		panic(fmt.Sprintf("multilinear: evaluation length %d is not a power of two", len(evaluations)))
	}
	return Poly{
		Evaluations: evaluations,
		NumVars:     n,
	}
}

func bitLength(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// insertBit inserts a zero bit into value at position bit (counted from
// the LSB), shifting higher bits up by one position.
func insertBit(value, bit int) int {
	high := value >> bit
	mask := (1 << bit) - 1
	low := value & mask
	return (high << (bit + 1)) | low
}

// pairIndices returns, for variable index `bit` (0 = first/MSB variable)
// among n total variables, the pairs of hypercube indices that differ
// only in that variable's bit.
func pairIndices(bit, numVars int) [][2]int {
	targetHC := numVars - 1
	invertedIndex := numVars - bit - 1
	total := 1 << targetHC
	pairs := make([][2]int, total)
	for val := 0; val < total; val++ {
		zero := insertBit(val, invertedIndex)
		one := zero | (1 << invertedIndex)
		pairs[val] = [2]int{zero, one}
	}
	return pairs
}

// PartialEvaluate binds variable `bit` to value, returning a polynomial
// over the remaining n-1 variables. bit must be in [0, NumVars).
func (p Poly) PartialEvaluate(bit int, value fr.Element) Poly {
	if bit < 0 || bit >= p.NumVars {
		panic(fmt.Sprintf("multilinear: bit %d out of range [0,%d)", bit, p.NumVars))
	}
	pairs := pairIndices(bit, p.NumVars)
	result := make([]fr.Element, len(pairs))
	for i, pr := range pairs {
		a := p.Evaluations[pr[0]]
		b := p.Evaluations[pr[1]]
		var diff, term fr.Element
		diff.Sub(&b, &a)
		term.Mul(&value, &diff)
		result[i].Add(&a, &term)
	}
	return New(result)
}

// MultiPartialEvaluate folds repeated PartialEvaluate(0, v) over values,
// binding the currently-first variable at each step. len(values) must
// be at most NumVars.
func (p Poly) MultiPartialEvaluate(values []fr.Element) Poly {
	if len(values) > p.NumVars {
		panic(fmt.Sprintf("multilinear: too many values (%d) for %d variables", len(values), p.NumVars))
	}
	result := p
	for _, v := range values {
		result = result.PartialEvaluate(0, v)
	}
	return result
}

// Evaluate fully evaluates p at values, binding the i-th value to the
// currently-first variable. len(values) must equal NumVars.
func (p Poly) Evaluate(values []fr.Element) fr.Element {
	if len(values) != p.NumVars {
		panic(fmt.Sprintf("multilinear: expected %d values, got %d", p.NumVars, len(values)))
	}
	result := p.MultiPartialEvaluate(values)
	return result.Evaluations[0]
}

// Scale multiplies every evaluation by c.
func (p Poly) Scale(c fr.Element) Poly {
	result := make([]fr.Element, len(p.Evaluations))
	for i := range p.Evaluations {
		result[i].Mul(&p.Evaluations[i], &c)
	}
	return New(result)
}

// Add returns the pointwise sum of p and other. Both must have equal
// length.
func (p Poly) Add(other Poly) Poly {
	return p.pointwise(other, func(a, b fr.Element) fr.Element {
		var r fr.Element
		r.Add(&a, &b)
		return r
	})
}

// Sub returns the pointwise difference of p and other. Both must have
// equal length.
func (p Poly) Sub(other Poly) Poly {
	return p.pointwise(other, func(a, b fr.Element) fr.Element {
		var r fr.Element
		r.Sub(&a, &b)
		return r
	})
}

// Mul returns the pointwise product of p and other. Both must have
// equal length.
func (p Poly) Mul(other Poly) Poly {
	return p.pointwise(other, func(a, b fr.Element) fr.Element {
		var r fr.Element
		r.Mul(&a, &b)
		return r
	})
}

func (p Poly) pointwise(other Poly, op func(a, b fr.Element) fr.Element) Poly {
	if len(p.Evaluations) != len(other.Evaluations) {
		panic(fmt.Sprintf("multilinear: mismatched arities %d and %d", len(p.Evaluations), len(other.Evaluations)))
	}
	result := make([]fr.Element, len(p.Evaluations))
	for i := range p.Evaluations {
		result[i] = op(p.Evaluations[i], other.Evaluations[i])
	}
	return New(result)
}

// TensorAddMul is the Kronecker-style lift of a and b: the result has
// log|a|+log|b| variables and evaluates at (u,v) to op(a(u), b(v)).
func TensorAddMul(a, b Poly, op Operation) Poly {
	result := make([]fr.Element, len(a.Evaluations)*len(b.Evaluations))
	for i, av := range a.Evaluations {
		base := i * len(b.Evaluations)
		for j, bv := range b.Evaluations {
			result[base+j] = op.Apply(av, bv)
		}
	}
	return New(result)
}

// Blowup tensors poly with the all-ones vector of the given length,
// lifting it to additional leading variables whose binding leaves the
// value unchanged. Used by the KZG opening proof to lift a quotient
// polynomial back to the full committed arity.
func Blowup(poly Poly, factorLen int) Poly {
	if factorLen == 1 {
		return poly
	}
	ones := make([]fr.Element, factorLen)
	for i := range ones {
		ones[i].SetOne()
	}
	return TensorAddMul(New(ones), poly, Mul)
}
