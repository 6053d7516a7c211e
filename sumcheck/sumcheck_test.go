package sumcheck

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/multilinear"
	"github.com/obah/gkr-kzg/transcript"
)

func fe(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func feSlice(vs ...int64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i] = fe(v)
	}
	return out
}

func sum(evals []fr.Element) fr.Element {
	var s fr.Element
	for _, e := range evals {
		s.Add(&s, &e)
	}
	return s
}

func TestSingleSumCheckRoundTrip(t *testing.T) {
	evals := feSlice(0, 0, 0, 2, 0, 10, 0, 17)
	poly := multilinear.New(evals)
	claimedSum := sum(evals)

	wantSum := fe(29)
	if !claimedSum.Equal(&wantSum) {
		t.Fatalf("claimed sum = %s, want 29", claimedSum.String())
	}

	proverTranscript := transcript.New()
	proof, challenges, finalEval := ProveSingle(proverTranscript, poly, claimedSum)

	verifierTranscript := transcript.New()
	vChallenges, vFinal, ok := VerifySingle(verifierTranscript, proof, claimedSum, poly.NumVars)
	if !ok {
		t.Fatal("expected honest proof to verify")
	}
	if len(vChallenges) != len(challenges) {
		t.Fatalf("challenge length mismatch")
	}
	for i := range challenges {
		if !vChallenges[i].Equal(&challenges[i]) {
			t.Errorf("challenge %d mismatch", i)
		}
	}
	if !vFinal.Equal(&finalEval) {
		t.Errorf("final evaluation mismatch: %s vs %s", vFinal.String(), finalEval.String())
	}

	want := poly.Evaluate(challenges)
	if !finalEval.Equal(&want) {
		t.Errorf("final evaluation should equal direct poly evaluation at challenge point")
	}
}

func TestSingleSumCheckRejectsTamperedSum(t *testing.T) {
	evals := feSlice(0, 0, 0, 2, 0, 10, 0, 17)
	poly := multilinear.New(evals)
	claimedSum := sum(evals)

	proverTranscript := transcript.New()
	proof, _, _ := ProveSingle(proverTranscript, poly, claimedSum)

	tamperedSum := fe(30)
	verifierTranscript := transcript.New()
	_, _, ok := VerifySingle(verifierTranscript, proof, tamperedSum, poly.NumVars)
	if ok {
		t.Fatal("expected tampered claimed sum to be rejected")
	}
}

func TestGKRStyleSumCheckRoundTrip(t *testing.T) {
	a := multilinear.New(feSlice(1, 2, 3, 4))
	b := multilinear.New(feSlice(5, 6, 7, 8))
	product := multilinear.NewSumPoly(multilinear.NewProductPoly(a, b))
	claimedSum := product.ReduceSum()

	proverTranscript := transcript.New()
	proof, challenges, finalEval := Prove(proverTranscript, product, claimedSum)

	verifierTranscript := transcript.New()
	vChallenges, vFinal, ok := Verify(verifierTranscript, proof, claimedSum, product.NumVars(), product.Degree())
	if !ok {
		t.Fatal("expected honest proof to verify")
	}
	for i := range challenges {
		if !vChallenges[i].Equal(&challenges[i]) {
			t.Errorf("challenge %d mismatch", i)
		}
	}
	want := product.Evaluate(challenges)
	if !finalEval.Equal(&want) {
		t.Errorf("final evaluation should equal direct poly evaluation at challenge point")
	}
	if !vFinal.Equal(&finalEval) {
		t.Errorf("verifier final claim should equal prover's")
	}
}

func TestGKRStyleSumCheckRejectsTamperedProof(t *testing.T) {
	a := multilinear.New(feSlice(1, 2, 3, 4))
	b := multilinear.New(feSlice(5, 6, 7, 8))
	product := multilinear.NewSumPoly(multilinear.NewProductPoly(a, b))
	claimedSum := product.ReduceSum()

	proverTranscript := transcript.New()
	proof, _, _ := Prove(proverTranscript, product, claimedSum)

	// tamper with the first round polynomial's constant coefficient
	one := fe(1)
	proof.RoundPolynomials[0].Coefficients[0].Add(
		&proof.RoundPolynomials[0].Coefficients[0], &one,
	)

	verifierTranscript := transcript.New()
	_, _, ok := Verify(verifierTranscript, proof, claimedSum, product.NumVars(), product.Degree())
	if ok {
		t.Fatal("expected tampered round polynomial to be rejected")
	}
}
