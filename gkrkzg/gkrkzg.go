package gkrkzg

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/circuit"
	"github.com/obah/gkr-kzg/gkr"
	"github.com/obah/gkr-kzg/kzg"
	"github.com/obah/gkr-kzg/multilinear"
)

// Proof is a complete succinct argument that a committed input evaluates
// c to a claimed public output.
type Proof struct {
	GKR             gkr.Proof
	InputCommitment bn254.G1Affine
	OpeningB        kzg.Proof
	OpeningC        kzg.Proof
}

// Prove evaluates c on inputs and builds a Proof binding the GKR
// argument to a KZG commitment of inputs. srs must support exactly
// log2(len(inputs)) variables. It returns the proof and the circuit's
// public output.
func Prove(c *circuit.Circuit, inputs []fr.Element, srs kzg.SRS) (Proof, []fr.Element, error) {
	inputPoly := multilinear.New(inputs)
	if inputPoly.NumVars != srs.NumVars {
		return Proof{}, nil, fmt.Errorf("gkrkzg: input has %d variables, SRS supports %d", inputPoly.NumVars, srs.NumVars)
	}

	gkrProof, finalClaim := gkr.Prove(c, inputs)

	commitment := kzg.Commit(srs, inputPoly)
	openingB := kzg.Prove(srs, inputPoly, finalClaim.PointB)
	openingC := kzg.Prove(srs, inputPoly, finalClaim.PointC)

	proof := Proof{
		GKR:             gkrProof,
		InputCommitment: commitment,
		OpeningB:        openingB,
		OpeningC:        openingC,
	}
	// OutputEvaluations may carry gkr's trailing zero pad for a
	// single-gate output layer; the public output is the unpadded prefix.
	output := gkrProof.OutputEvaluations[:len(c.Layers[0].Gates)]
	return proof, output, nil
}

// Verify checks proof against c, the claimed public output, and srs.
func Verify(c *circuit.Circuit, expectedOutput []fr.Element, srs kzg.SRS, proof Proof) bool {
	finalClaim, ok := gkr.Verify(c, expectedOutput, proof.GKR)
	if !ok {
		return false
	}

	if !kzg.Verify(srs, proof.InputCommitment, finalClaim.PointB, finalClaim.ValueB, proof.OpeningB) {
		return false
	}
	if !kzg.Verify(srs, proof.InputCommitment, finalClaim.PointC, finalClaim.ValueC, proof.OpeningC) {
		return false
	}
	return true
}
