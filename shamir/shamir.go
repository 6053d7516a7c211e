package shamir

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/univariate"
)

// CreatePolynomial builds a degree-(threshold-1) polynomial whose value
// at secretPoint is secretValue, with the remaining threshold-1 points
// chosen uniformly at random.
func CreatePolynomial(threshold int, secretValue, secretPoint fr.Element) (univariate.Poly, error) {
	if threshold < 1 {
		return univariate.Poly{}, fmt.Errorf("shamir: threshold must be at least 1")
	}

	points := make([]univariate.Point, threshold)
	points[0] = univariate.Point{X: secretPoint, Y: secretValue}

	for i := 1; i < threshold; i++ {
		x, err := randomElement()
		if err != nil {
			return univariate.Poly{}, err
		}
		y, err := randomElement()
		if err != nil {
			return univariate.Poly{}, err
		}
		points[i] = univariate.Point{X: x, Y: y}
	}

	return univariate.Interpolate(points), nil
}

// SharePoints evaluates poly at numShares random points, each a share.
// numShares must be at least threshold, the number of shares later
// required to recover the secret.
func SharePoints(numShares, threshold int, poly univariate.Poly) ([]univariate.Point, error) {
	if numShares < threshold {
		return nil, fmt.Errorf("shamir: %d shares is fewer than the threshold of %d", numShares, threshold)
	}

	shares := make([]univariate.Point, numShares)
	for i := range shares {
		x, err := randomElement()
		if err != nil {
			return nil, err
		}
		shares[i] = univariate.Point{X: x, Y: poly.Evaluate(x)}
	}
	return shares, nil
}

// RecoverPolynomial reconstructs the shared polynomial from at least
// threshold points via Lagrange interpolation.
func RecoverPolynomial(points []univariate.Point, threshold int) (univariate.Poly, error) {
	if len(points) < threshold {
		return univariate.Poly{}, fmt.Errorf("shamir: %d points is not enough to recover a threshold-%d secret", len(points), threshold)
	}
	return univariate.Interpolate(points[:threshold]), nil
}

// GetSecret evaluates poly at x, recovering whatever value was encoded
// there (typically the secret point used in CreatePolynomial).
func GetSecret(poly univariate.Poly, x fr.Element) fr.Element {
	return poly.Evaluate(x)
}

func randomElement() (fr.Element, error) {
	var e fr.Element
	_, err := e.SetRandom()
	if err != nil {
		return fr.Element{}, fmt.Errorf("shamir: failed to sample randomness: %w", err)
	}
	return e, nil
}
