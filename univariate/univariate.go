package univariate

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Poly is a dense univariate polynomial in coefficient form, lowest
// degree term first: Coefficients[i] is the coefficient of x^i.
type Poly struct {
	Coefficients []fr.Element
}

// New wraps coefficients, low-to-high degree, into a Poly.
func New(coefficients []fr.Element) Poly {
	return Poly{Coefficients: append([]fr.Element(nil), coefficients...)}
}

// Evaluate computes p(x) via Horner's method.
func (p Poly) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coefficients[i])
	}
	return result
}

// Degree returns len(Coefficients)-1, -1 for an empty coefficient list.
// Trailing zero coefficients are not trimmed, so this is an upper bound
// on the true degree.
func (p Poly) Degree() int {
	return len(p.Coefficients) - 1
}

// Point is an (x, y) pair used for Lagrange interpolation.
type Point struct {
	X fr.Element
	Y fr.Element
}

// Interpolate returns the unique lowest-degree polynomial passing through
// points, in coefficient form, via Lagrange interpolation. It panics if
// two points share the same X, since that is a programmer invariant
// violation rather than a recoverable condition.
func Interpolate(points []Point) Poly {
	n := len(points)
	result := make([]fr.Element, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].X.Equal(&points[j].X) {
				panic(fmt.Sprintf("interpolation points must have distinct x values, got duplicate %s", points[i].X.String()))
			}
		}
	}

	for i := 0; i < n; i++ {
		// basis_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j)
		basis := []fr.Element{one()}
		var denom fr.Element
		denom.SetOne()

		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			basis = multiplyByLinear(basis, points[j].X)

			var diff fr.Element
			diff.Sub(&points[i].X, &points[j].X)
			denom.Mul(&denom, &diff)
		}

		var denomInv fr.Element
		denomInv.Inverse(&denom)

		var scale fr.Element
		scale.Mul(&points[i].Y, &denomInv)

		for k := range basis {
			var term fr.Element
			term.Mul(&basis[k], &scale)
			result[k].Add(&result[k], &term)
		}
	}

	return New(result)
}

// multiplyByLinear multiplies the dense polynomial coeffs by (x - root).
func multiplyByLinear(coeffs []fr.Element, root fr.Element) []fr.Element {
	result := make([]fr.Element, len(coeffs)+1)
	var negRoot fr.Element
	negRoot.Neg(&root)

	for i, c := range coeffs {
		var termX fr.Element
		termX.Mul(&c, &negRoot)
		result[i].Add(&result[i], &termX)

		result[i+1].Add(&result[i+1], &c)
	}
	return result
}

func one() fr.Element {
	var e fr.Element
	e.SetOne()
	return e
}
