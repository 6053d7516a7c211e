package multilinear

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ProductPoly is an ordered tuple of Poly of equal arity representing
// their pointwise product.
type ProductPoly struct {
	Factors []Poly
}

// NewProductPoly builds a ProductPoly, panicking if the factors'
// arities disagree.
func NewProductPoly(factors ...Poly) ProductPoly {
	if len(factors) == 0 {
		panic("multilinear: ProductPoly needs at least one factor")
	}
	n := factors[0].NumVars
	for _, f := range factors {
		if f.NumVars != n {
			panic(fmt.Sprintf("multilinear: ProductPoly factors have mismatched arities (%d vs %d)", n, f.NumVars))
		}
	}
	return ProductPoly{Factors: factors}
}

// NumVars returns the shared arity of the factors.
func (pp ProductPoly) NumVars() int {
	return pp.Factors[0].NumVars
}

// Degree returns the number of factors.
func (pp ProductPoly) Degree() int {
	return len(pp.Factors)
}

// Evaluate returns the product of every factor's evaluation at values.
func (pp ProductPoly) Evaluate(values []fr.Element) fr.Element {
	result := pp.Factors[0].Evaluate(values)
	for _, f := range pp.Factors[1:] {
		v := f.Evaluate(values)
		result.Mul(&result, &v)
	}
	return result
}

// PartialEvaluate binds variable 0 to value in every factor.
func (pp ProductPoly) PartialEvaluate(value fr.Element) ProductPoly {
	result := make([]Poly, len(pp.Factors))
	for i, f := range pp.Factors {
		result[i] = f.PartialEvaluate(0, value)
	}
	return ProductPoly{Factors: result}
}

// Reduce multiplies all factors together pointwise into a single
// evaluation vector.
func (pp ProductPoly) Reduce() []fr.Element {
	result := make([]fr.Element, len(pp.Factors[0].Evaluations))
	copy(result, pp.Factors[0].Evaluations)
	for _, f := range pp.Factors[1:] {
		for i := range result {
			result[i].Mul(&result[i], &f.Evaluations[i])
		}
	}
	return result
}

// SumPoly is an ordered collection of ProductPoly of equal arity
// representing their sum.
type SumPoly struct {
	Components []ProductPoly
}

// NewSumPoly builds a SumPoly, panicking if the components' arities
// disagree.
func NewSumPoly(components ...ProductPoly) SumPoly {
	if len(components) == 0 {
		panic("multilinear: SumPoly needs at least one component")
	}
	n := components[0].NumVars()
	for _, c := range components {
		if c.NumVars() != n {
			panic(fmt.Sprintf("multilinear: SumPoly components have mismatched arities (%d vs %d)", n, c.NumVars()))
		}
	}
	return SumPoly{Components: components}
}

// NumVars returns the shared arity of the components.
func (sp SumPoly) NumVars() int {
	return sp.Components[0].NumVars()
}

// Degree returns the maximum number of factors in any component.
func (sp SumPoly) Degree() int {
	max := 0
	for _, c := range sp.Components {
		if c.Degree() > max {
			max = c.Degree()
		}
	}
	return max
}

// Evaluate sums every component's evaluation at values.
func (sp SumPoly) Evaluate(values []fr.Element) fr.Element {
	var result fr.Element
	for _, c := range sp.Components {
		v := c.Evaluate(values)
		result.Add(&result, &v)
	}
	return result
}

// PartialEvaluate binds variable 0 to value in every component.
func (sp SumPoly) PartialEvaluate(value fr.Element) SumPoly {
	result := make([]ProductPoly, len(sp.Components))
	for i, c := range sp.Components {
		result[i] = c.PartialEvaluate(value)
	}
	return SumPoly{Components: result}
}

// Reduce sums every component's Reduce() pointwise into a single
// evaluation vector.
func (sp SumPoly) Reduce() []fr.Element {
	result := make([]fr.Element, 1<<sp.NumVars())
	for _, c := range sp.Components {
		reduced := c.Reduce()
		for i := range result {
			result[i].Add(&result[i], &reduced[i])
		}
	}
	return result
}

// ReduceSum is a convenience helper summing Reduce() over the full
// hypercube, the value sum-check round polynomials are built from.
func (sp SumPoly) ReduceSum() fr.Element {
	var sum fr.Element
	for _, v := range sp.Reduce() {
		sum.Add(&sum, &v)
	}
	return sum
}
