package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/multilinear"
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

func TestOpenMatchesDirectEvaluation(t *testing.T) {
	poly := multilinear.New(feSlice(0, 4, 0, 4, 0, 4, 3, 7))
	point := feSlice(6, 4, 0)

	value := Open(poly, point)
	want := fe(72)
	if !value.Equal(&want) {
		t.Fatalf("Open = %s, want 72", value.String())
	}
}

func TestProveVerifyRoundTrip(t *testing.T) {
	taus := feSlice(5, 2, 3)
	srs := Setup(taus)

	poly := multilinear.New(feSlice(0, 4, 0, 4, 0, 4, 3, 7))
	point := feSlice(6, 4, 0)

	commitment := Commit(srs, poly)
	value := Open(poly, point)
	proof := Prove(srs, poly, point)

	if !Verify(srs, commitment, point, value, proof) {
		t.Fatal("expected honest opening proof to verify")
	}
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	taus := feSlice(5, 2, 3)
	srs := Setup(taus)

	poly := multilinear.New(feSlice(0, 4, 0, 4, 0, 4, 3, 7))
	point := feSlice(6, 4, 0)

	commitment := Commit(srs, poly)
	proof := Prove(srs, poly, point)

	wrongValue := fe(73)
	if Verify(srs, commitment, point, wrongValue, proof) {
		t.Fatal("expected wrong claimed value to be rejected")
	}
}

func TestVerifyRejectsForgedProof(t *testing.T) {
	taus := feSlice(5, 2, 3)
	srs := Setup(taus)

	poly := multilinear.New(feSlice(0, 4, 0, 4, 0, 4, 3, 7))
	point := feSlice(6, 4, 0)

	commitment := Commit(srs, poly)
	value := Open(poly, point)

	forged := Proof{QuotientCommitments: []bn254.G1Affine{
		srs.G1Generator, srs.G1Generator, srs.G1Generator,
	}}

	if Verify(srs, commitment, point, value, forged) {
		t.Fatal("expected forged proof to be rejected")
	}
}

func TestCommitIsLinear(t *testing.T) {
	taus := feSlice(5, 2, 3)
	srs := Setup(taus)

	a := multilinear.New(feSlice(1, 2, 3, 4, 5, 6, 7, 8))
	b := multilinear.New(feSlice(8, 7, 6, 5, 4, 3, 2, 1))
	sum := a.Add(b)

	commitA := Commit(srs, a)
	commitB := Commit(srs, b)
	commitSum := Commit(srs, sum)

	var combined bn254.G1Affine
	combined.Add(&commitA, &commitB)

	if !combined.Equal(&commitSum) {
		t.Fatal("commitment should be additively homomorphic")
	}
}
