package kzg

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/multilinear"
)

// SRS is the structured reference string for committing to and opening
// multilinear polynomials of a fixed arity, derived from a trusted
// setup vector of per-variable secrets ("taus").
type SRS struct {
	NumVars         int
	G1Generator     bn254.G1Affine
	G2Generator     bn254.G2Affine
	LagrangeBasisG1 []bn254.G1Affine // indexed by hypercube point, length 2^NumVars
	G2Taus          []bn254.G2Affine // indexed by variable, length NumVars
}

// Setup derives an SRS for polynomials of arity len(taus) from a
// trusted-setup secret vector. taus must never be reused or retained
// after this call in any real deployment; tests are free to construct
// them directly since nothing here is asked to be zero-knowledge.
func Setup(taus []fr.Element) SRS {
	numVars := len(taus)
	if numVars == 0 {
		panic("kzg: setup requires at least one variable")
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	g2Taus := make([]bn254.G2Affine, numVars)
	for i := range taus {
		var p bn254.G2Affine
		taubi := taus[i].BigInt(new(big.Int))
		p.ScalarMultiplication(&g2Gen, taubi)
		g2Taus[i] = p
	}

	basisCoeffs := lagrangeBasisAtTaus(taus)
	lagrangeBasisG1 := make([]bn254.G1Affine, len(basisCoeffs))
	for v, coeff := range basisCoeffs {
		var p bn254.G1Affine
		cbi := coeff.BigInt(new(big.Int))
		p.ScalarMultiplication(&g1Gen, cbi)
		lagrangeBasisG1[v] = p
	}

	return SRS{
		NumVars:         numVars,
		G1Generator:     g1Gen,
		G2Generator:     g2Gen,
		LagrangeBasisG1: lagrangeBasisG1,
		G2Taus:          g2Taus,
	}
}

// lagrangeBasisAtTaus returns, for every hypercube point v in
// {0,1}^numVars (MSB-first, matching multilinear.Poly's convention),
// the evaluation at taus of the Lagrange basis polynomial for v:
// product over variable i of taus[i] if v's i-th bit is 1, else
// (1 - taus[i]).
func lagrangeBasisAtTaus(taus []fr.Element) []fr.Element {
	numVars := len(taus)
	size := 1 << numVars
	result := make([]fr.Element, size)

	ones := make([]fr.Element, numVars)
	for i := range taus {
		var one fr.Element
		one.SetOne()
		ones[i].Sub(&one, &taus[i])
	}

	for v := 0; v < size; v++ {
		var coeff fr.Element
		coeff.SetOne()
		for i := 0; i < numVars; i++ {
			bit := (v >> (numVars - i - 1)) & 1
			if bit == 1 {
				coeff.Mul(&coeff, &taus[i])
			} else {
				coeff.Mul(&coeff, &ones[i])
			}
		}
		result[v] = coeff
	}
	return result
}

// Commit returns the Lagrange-basis commitment to poly: the inner
// product of poly's evaluations with the SRS's committed basis.
func Commit(srs SRS, poly multilinear.Poly) bn254.G1Affine {
	if poly.NumVars != srs.NumVars {
		panic(fmt.Sprintf("kzg: poly has %d vars, SRS supports %d", poly.NumVars, srs.NumVars))
	}

	var acc bn254.G1Jac
	for i, e := range poly.Evaluations {
		if e.IsZero() {
			continue
		}
		var term bn254.G1Jac
		ebi := e.BigInt(new(big.Int))
		term.FromAffine(&srs.LagrangeBasisG1[i])
		term.ScalarMultiplication(&term, ebi)
		acc.AddAssign(&term)
	}

	var result bn254.G1Affine
	result.FromJacobian(&acc)
	return result
}

// Open evaluates poly at point directly; it is the value a commitment
// opening proof attests to.
func Open(poly multilinear.Poly, point []fr.Element) fr.Element {
	return poly.Evaluate(point)
}

// Proof is an opening proof for a commitment at a point: one quotient
// commitment per variable, produced by the telescoping decomposition
// f(X) - f(z) = sum_i q_i(X) * (X_i - z_i).
type Proof struct {
	QuotientCommitments []bn254.G1Affine
}

// Prove builds an opening proof that poly evaluates to Open(poly,
// point) at point.
func Prove(srs SRS, poly multilinear.Poly, point []fr.Element) Proof {
	if poly.NumVars != srs.NumVars {
		panic(fmt.Sprintf("kzg: poly has %d vars, SRS supports %d", poly.NumVars, srs.NumVars))
	}
	if len(point) != poly.NumVars {
		panic(fmt.Sprintf("kzg: opening point has %d coordinates, poly has %d vars", len(point), poly.NumVars))
	}

	current := poly
	commitments := make([]bn254.G1Affine, poly.NumVars)

	for i := 0; i < poly.NumVars; i++ {
		half := len(current.Evaluations) / 2
		quotientEvals := make([]fr.Element, half)
		for j := 0; j < half; j++ {
			quotientEvals[j].Sub(&current.Evaluations[half+j], &current.Evaluations[j])
		}
		quotientPoly := liftQuotient(quotientEvals, i+1)
		commitments[i] = Commit(srs, quotientPoly)

		current = current.PartialEvaluate(0, point[i])
	}

	return Proof{QuotientCommitments: commitments}
}

// liftQuotient wraps quotientEvals (the natural evaluation vector for
// the i-th quotient, with poly.NumVars-i-1 remaining variables) into a
// Poly and tensors it with an all-ones vector of length 2^leadingVars,
// padding it with leadingVars leading dummy variables so it can be
// committed against the full-arity SRS.
func liftQuotient(quotientEvals []fr.Element, leadingVars int) multilinear.Poly {
	natural := multilinear.New(quotientEvals)
	if leadingVars == 0 {
		return natural
	}
	return multilinear.Blowup(natural, 1<<leadingVars)
}

// Verify checks that commitment opens to value at point via proof,
// using the pairing identity
//
//	e(C - [value]*G1, G2) * prod_i e(pi_i, [z_i]*G2 - [tau_i]*G2) == 1
func Verify(srs SRS, commitment bn254.G1Affine, point []fr.Element, value fr.Element, proof Proof) bool {
	if len(point) != srs.NumVars || len(proof.QuotientCommitments) != srs.NumVars {
		return false
	}

	var valueG1 bn254.G1Affine
	vbi := value.BigInt(new(big.Int))
	valueG1.ScalarMultiplication(&srs.G1Generator, vbi)

	var commitmentMinusValue bn254.G1Affine
	var valueG1Neg bn254.G1Affine
	valueG1Neg.Neg(&valueG1)
	commitmentMinusValue.Add(&commitment, &valueG1Neg)

	g1Points := make([]bn254.G1Affine, 0, srs.NumVars+1)
	g2Points := make([]bn254.G2Affine, 0, srs.NumVars+1)

	g1Points = append(g1Points, commitmentMinusValue)
	g2Points = append(g2Points, srs.G2Generator)

	for i := 0; i < srs.NumVars; i++ {
		var ziG2 bn254.G2Affine
		zbi := point[i].BigInt(new(big.Int))
		ziG2.ScalarMultiplication(&srs.G2Generator, zbi)

		var diff bn254.G2Affine
		var tauNeg bn254.G2Affine
		tauNeg.Neg(&srs.G2Taus[i])
		diff.Add(&ziG2, &tauNeg)

		g1Points = append(g1Points, proof.QuotientCommitments[i])
		g2Points = append(g2Points, diff)
	}

	ok, err := bn254.PairingCheck(g1Points, g2Points)
	if err != nil {
		return false
	}
	return ok
}
