package shamir

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/univariate"
)

func fe(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestCreatePolynomialEncodesSecret(t *testing.T) {
	threshold := 4
	secretValue := fe(40)
	secretPoint := fe(6)

	poly, err := CreatePolynomial(threshold, secretValue, secretPoint)
	if err != nil {
		t.Fatalf("CreatePolynomial: %v", err)
	}

	if poly.Degree() != threshold-1 {
		t.Fatalf("degree = %d, want %d", poly.Degree(), threshold-1)
	}

	got := GetSecret(poly, secretPoint)
	if !got.Equal(&secretValue) {
		t.Errorf("secret evaluation = %s, want %s", got.String(), secretValue.String())
	}
}

func TestRecoverPolynomialFromValidPoints(t *testing.T) {
	points := []univariate.Point{
		{X: fe(1), Y: fe(-1)},
		{X: fe(2), Y: fe(5)},
		{X: fe(3), Y: fe(13)},
	}

	poly, err := RecoverPolynomial(points, 3)
	if err != nil {
		t.Fatalf("RecoverPolynomial: %v", err)
	}

	want := []fr.Element{fe(-5), fe(3), fe(1)}
	if len(poly.Coefficients) != len(want) {
		t.Fatalf("got %d coefficients, want %d", len(poly.Coefficients), len(want))
	}
	for i := range want {
		if !poly.Coefficients[i].Equal(&want[i]) {
			t.Errorf("coefficient %d = %s, want %s", i, poly.Coefficients[i].String(), want[i].String())
		}
	}
}

func TestRecoverPolynomialRejectsTooFewPoints(t *testing.T) {
	points := []univariate.Point{
		{X: fe(1), Y: fe(-1)},
		{X: fe(2), Y: fe(5)},
	}
	if _, err := RecoverPolynomial(points, 3); err == nil {
		t.Fatal("expected an error with fewer points than the threshold")
	}
}

func TestSharePointsCount(t *testing.T) {
	poly := univariate.New([]fr.Element{fe(-5), fe(3), fe(1)})

	shares, err := SharePoints(10, 3, poly)
	if err != nil {
		t.Fatalf("SharePoints: %v", err)
	}
	if len(shares) != 10 {
		t.Fatalf("got %d shares, want 10", len(shares))
	}
}

func TestSharePointsRejectsTooFewShares(t *testing.T) {
	poly := univariate.New([]fr.Element{fe(-5), fe(3), fe(1)})
	if _, err := SharePoints(2, 3, poly); err == nil {
		t.Fatal("expected an error when shares requested is below the threshold")
	}
}

func TestEndToEndSharingRoundTrip(t *testing.T) {
	secretPoint := fe(0)
	secretData := fe(-5)

	secretPoly, err := CreatePolynomial(3, secretData, secretPoint)
	if err != nil {
		t.Fatalf("CreatePolynomial: %v", err)
	}

	shares, err := SharePoints(10, 3, secretPoly)
	if err != nil {
		t.Fatalf("SharePoints: %v", err)
	}

	collected := shares[2:6]
	recovered, err := RecoverPolynomial(collected, 3)
	if err != nil {
		t.Fatalf("RecoverPolynomial: %v", err)
	}

	recoveredSecret := GetSecret(recovered, secretPoint)
	if !recoveredSecret.Equal(&secretData) {
		t.Errorf("recovered secret = %s, want %s", recoveredSecret.String(), secretData.String())
	}
}
