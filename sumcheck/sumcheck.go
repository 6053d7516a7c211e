package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/multilinear"
	"github.com/obah/gkr-kzg/transcript"
	"github.com/obah/gkr-kzg/univariate"
)

// Proof is the list of round polynomials a sum-check prover sends, one
// per variable, in coefficient form.
type Proof struct {
	RoundPolynomials []univariate.Poly
}

// Prove runs the sum-check protocol over poly, claiming it sums to
// claimedSum across the full Boolean hypercube. It returns the proof,
// the challenge point the verifier will have derived, and poly's value
// at that point (which the verifier must be convinced of by other
// means, typically an oracle or a further sum-check).
func Prove(t *transcript.Transcript, poly multilinear.SumPoly, claimedSum fr.Element) (Proof, []fr.Element, fr.Element) {
	numVars := poly.NumVars()
	degree := poly.Degree()

	current := poly
	challenges := make([]fr.Element, 0, numVars)
	rounds := make([]univariate.Poly, 0, numVars)

	for round := 0; round < numVars; round++ {
		roundPoly := roundPolynomial(current, degree)
		t.AppendElements(roundPoly.Coefficients)
		rounds = append(rounds, roundPoly)

		r := t.Squeeze()
		challenges = append(challenges, r)
		current = current.PartialEvaluate(r)
	}

	finalEvaluation := current.Reduce()[0]
	return Proof{RoundPolynomials: rounds}, challenges, finalEvaluation
}

// roundPolynomial interpolates the univariate round polynomial for the
// currently-first variable of poly: for x in 0..=degree, the point
// (x, sum over the remaining hypercube of poly partially evaluated at
// variable 0 = x).
func roundPolynomial(poly multilinear.SumPoly, degree int) univariate.Poly {
	points := make([]univariate.Point, degree+1)
	for x := 0; x <= degree; x++ {
		var xe fr.Element
		xe.SetInt64(int64(x))
		partial := poly.PartialEvaluate(xe)
		points[x] = univariate.Point{X: xe, Y: partial.ReduceSum()}
	}
	return univariate.Interpolate(points)
}

// Verify checks proof against claimedSum for a numVars-variable,
// degree-bounded SumPoly, deriving challenges from t the same way Prove
// did. It returns the final challenge point and the claimed value of
// the underlying polynomial there; the caller is responsible for
// confirming that value against the actual oracle (the layer's
// combined add_i/mul_i-weighted polynomial, in GKR's case).
func Verify(t *transcript.Transcript, proof Proof, claimedSum fr.Element, numVars, degree int) ([]fr.Element, fr.Element, bool) {
	if len(proof.RoundPolynomials) != numVars {
		return nil, fr.Element{}, false
	}

	expected := claimedSum
	challenges := make([]fr.Element, 0, numVars)

	for _, roundPoly := range proof.RoundPolynomials {
		if roundPoly.Degree() > degree {
			return nil, fr.Element{}, false
		}

		var zero, onePt fr.Element
		onePt.SetOne()
		sum := roundPoly.Evaluate(zero)
		v1 := roundPoly.Evaluate(onePt)
		sum.Add(&sum, &v1)

		if !sum.Equal(&expected) {
			return nil, fr.Element{}, false
		}

		t.AppendElements(roundPoly.Coefficients)
		r := t.Squeeze()
		challenges = append(challenges, r)
		expected = roundPoly.Evaluate(r)
	}

	return challenges, expected, true
}

// ProveSingle runs the simplified single-multilinear sum-check over
// poly, claiming it sums to claimedSum. Round polynomials are always
// linear, determined by the sums over the zeros-half and ones-half of
// the hypercube.
func ProveSingle(t *transcript.Transcript, poly multilinear.Poly, claimedSum fr.Element) (Proof, []fr.Element, fr.Element) {
	numVars := poly.NumVars

	current := poly
	challenges := make([]fr.Element, 0, numVars)
	rounds := make([]univariate.Poly, 0, numVars)

	for round := 0; round < numVars; round++ {
		roundPoly := singleRoundPolynomial(current)
		t.AppendElements(roundPoly.Coefficients)
		rounds = append(rounds, roundPoly)

		r := t.Squeeze()
		challenges = append(challenges, r)
		current = current.PartialEvaluate(0, r)
	}

	return Proof{RoundPolynomials: rounds}, challenges, current.Evaluations[0]
}

func singleRoundPolynomial(poly multilinear.Poly) univariate.Poly {
	half := len(poly.Evaluations) / 2
	var zerosHalf, onesHalf fr.Element
	for i := 0; i < half; i++ {
		zerosHalf.Add(&zerosHalf, &poly.Evaluations[i])
	}
	for i := half; i < len(poly.Evaluations); i++ {
		onesHalf.Add(&onesHalf, &poly.Evaluations[i])
	}

	var zero, one fr.Element
	one.SetOne()
	return univariate.Interpolate([]univariate.Point{
		{X: zero, Y: zerosHalf},
		{X: one, Y: onesHalf},
	})
}

// VerifySingle checks proof against claimedSum for a numVars-variable
// bare multilinear polynomial, returning the final challenge point and
// the claimed evaluation there.
func VerifySingle(t *transcript.Transcript, proof Proof, claimedSum fr.Element, numVars int) ([]fr.Element, fr.Element, bool) {
	if len(proof.RoundPolynomials) != numVars {
		return nil, fr.Element{}, false
	}

	expected := claimedSum
	challenges := make([]fr.Element, 0, numVars)

	for _, roundPoly := range proof.RoundPolynomials {
		if roundPoly.Degree() > 1 {
			return nil, fr.Element{}, false
		}

		var zero, onePt fr.Element
		onePt.SetOne()
		sum := roundPoly.Evaluate(zero)
		v1 := roundPoly.Evaluate(onePt)
		sum.Add(&sum, &v1)

		if !sum.Equal(&expected) {
			return nil, fr.Element{}, false
		}

		t.AppendElements(roundPoly.Coefficients)
		r := t.Squeeze()
		challenges = append(challenges, r)
		expected = roundPoly.Evaluate(r)
	}

	return challenges, expected, true
}
