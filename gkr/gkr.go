package gkr

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/circuit"
	"github.com/obah/gkr-kzg/multilinear"
	"github.com/obah/gkr-kzg/sumcheck"
	"github.com/obah/gkr-kzg/transcript"
)

// LayerProof is the sum-check proof reducing one layer's claim to two
// claims about the next layer's wire values.
type LayerProof struct {
	SumcheckProof sumcheck.Proof
	ValueAtB      fr.Element
	ValueAtC      fr.Element
}

// Proof is a complete non-interactive GKR argument for one circuit
// evaluation.
type Proof struct {
	OutputEvaluations []fr.Element
	LayerProofs       []LayerProof
}

// FinalClaim holds the two evaluation claims the last layer's sum-check
// reduces to, about the circuit's raw input layer. Verifying them is
// left to the caller, since how the input layer is bound (a polynomial
// commitment, a direct check, or nothing at all) is outside GKR's
// concern.
type FinalClaim struct {
	PointB []fr.Element
	ValueB fr.Element
	PointC []fr.Element
	ValueC fr.Element
}

// weightedClaim is a claimed evaluation point carrying the scalar
// weight it contributes to a folded selector polynomial.
type weightedClaim struct {
	point  []fr.Element
	weight fr.Element
}

func foldSelector(selector multilinear.Poly, claims []weightedClaim) multilinear.Poly {
	result := selector.MultiPartialEvaluate(claims[0].point).Scale(claims[0].weight)
	for _, c := range claims[1:] {
		term := selector.MultiPartialEvaluate(c.point).Scale(c.weight)
		result = result.Add(term)
	}
	return result
}

// padOutputValues pads a single-value wire vector with a trailing zero
// so the output polynomial always has at least one variable, matching
// the width-3 selector packing circuit.AddMulPoly uses for a
// single-gate layer.
func padOutputValues(values []fr.Element) []fr.Element {
	if len(values) != 1 {
		return values
	}
	var zero fr.Element
	return []fr.Element{values[0], zero}
}

func onesPoly(numVars int) multilinear.Poly {
	ones := make([]fr.Element, 1<<numVars)
	for i := range ones {
		ones[i].SetOne()
	}
	return multilinear.New(ones)
}

// widenLeading lifts next (a function of b or c alone) to the full
// (b,c) variable space, with next occupying the leading variables and
// the trailing variables dummy.
func widenLeading(next multilinear.Poly, trailingVars int) multilinear.Poly {
	return multilinear.TensorAddMul(next, onesPoly(trailingVars), multilinear.Mul)
}

// widenTrailing lifts next to the full (b,c) variable space with next
// occupying the trailing variables.
func widenTrailing(next multilinear.Poly, leadingVars int) multilinear.Poly {
	return multilinear.Blowup(next, 1<<leadingVars)
}

// Prove runs the GKR protocol over c on inputs, returning a
// non-interactive proof and the final claim about the input layer that
// the caller must independently verify.
func Prove(c *circuit.Circuit, inputs []fr.Element) (Proof, FinalClaim) {
	wireValues := c.WireValuesByLayer(inputs)
	numLayers := len(c.Layers)

	wirePolys := make([]multilinear.Poly, numLayers+1)
	for l := 1; l < numLayers; l++ {
		wirePolys[l] = multilinear.New(wireValues[l])
	}
	wirePolys[numLayers] = multilinear.New(inputs)

	t := transcript.New()
	outputPoly := multilinear.New(padOutputValues(wireValues[0]))
	t.AppendElements(outputPoly.Evaluations)

	var one fr.Element
	one.SetOne()

	r0 := make([]fr.Element, outputPoly.NumVars)
	for i := range r0 {
		r0[i] = t.Squeeze()
	}
	currentClaim := outputPoly.Evaluate(r0)
	t.AppendElement(currentClaim)

	claims := []weightedClaim{{point: r0, weight: one}}
	layerProofs := make([]LayerProof, numLayers)

	var lastRB, lastRC []fr.Element
	var lastO1, lastO2 fr.Element

	for l := 0; l < numLayers; l++ {
		layer := c.Layers[l]
		next := wirePolys[l+1]
		m := next.NumVars

		addSelector := foldSelector(layer.AddMulPoly(circuit.Add), claims)
		mulSelector := foldSelector(layer.AddMulPoly(circuit.Mul), claims)

		wB := widenLeading(next, m)
		wC := widenTrailing(next, m)

		wBPlusWC := wB.Add(wC)
		wBTimesWC := wB.Mul(wC)

		fbcPoly := multilinear.NewSumPoly(
			multilinear.NewProductPoly(addSelector, wBPlusWC),
			multilinear.NewProductPoly(mulSelector, wBTimesWC),
		)

		proof, challenges, _ := sumcheck.Prove(t, fbcPoly, currentClaim)

		rB := challenges[:m]
		rC := challenges[m:]
		o1 := next.Evaluate(rB)
		o2 := next.Evaluate(rC)

		t.AppendElement(o1)
		alpha := t.Squeeze()
		t.AppendElement(o2)
		beta := t.Squeeze()

		layerProofs[l] = LayerProof{SumcheckProof: proof, ValueAtB: o1, ValueAtC: o2}

		claims = []weightedClaim{{point: rB, weight: alpha}, {point: rC, weight: beta}}
		currentClaim = o1
		var weightedO2 fr.Element
		weightedO2.Mul(&beta, &o2)
		var weightedO1 fr.Element
		weightedO1.Mul(&alpha, &o1)
		currentClaim.Add(&weightedO1, &weightedO2)

		lastRB, lastRC = rB, rC
		lastO1, lastO2 = o1, o2
	}

	finalClaim := FinalClaim{PointB: lastRB, ValueB: lastO1, PointC: lastRC, ValueC: lastO2}
	return Proof{OutputEvaluations: outputPoly.Evaluations, LayerProofs: layerProofs}, finalClaim
}

// Verify checks proof against c and the publicly known circuit output,
// returning the final claim about the input layer the caller must
// independently verify, and whether every layer's sum-check succeeded.
func Verify(c *circuit.Circuit, expectedOutput []fr.Element, proof Proof) (FinalClaim, bool) {
	numLayers := len(c.Layers)
	if len(proof.LayerProofs) != numLayers {
		return FinalClaim{}, false
	}
	expected := padOutputValues(expectedOutput)
	if len(proof.OutputEvaluations) != len(expected) {
		return FinalClaim{}, false
	}
	for i := range expected {
		if !proof.OutputEvaluations[i].Equal(&expected[i]) {
			return FinalClaim{}, false
		}
	}

	outputPoly := multilinear.New(proof.OutputEvaluations)

	t := transcript.New()
	t.AppendElements(outputPoly.Evaluations)

	var one fr.Element
	one.SetOne()

	r0 := make([]fr.Element, outputPoly.NumVars)
	for i := range r0 {
		r0[i] = t.Squeeze()
	}
	currentClaim := outputPoly.Evaluate(r0)
	t.AppendElement(currentClaim)

	claims := []weightedClaim{{point: r0, weight: one}}

	var lastRB, lastRC []fr.Element
	var lastO1, lastO2 fr.Element

	for l := 0; l < numLayers; l++ {
		layer := c.Layers[l]
		layerProof := proof.LayerProofs[l]

		var m int
		if len(layerProof.SumcheckProof.RoundPolynomials) == 0 {
			return FinalClaim{}, false
		}
		m = len(layerProof.SumcheckProof.RoundPolynomials) / 2
		if 2*m != len(layerProof.SumcheckProof.RoundPolynomials) {
			return FinalClaim{}, false
		}

		addSelector := foldSelector(layer.AddMulPoly(circuit.Add), claims)
		mulSelector := foldSelector(layer.AddMulPoly(circuit.Mul), claims)

		degree := 2
		challenges, finalEval, ok := sumcheck.Verify(t, layerProof.SumcheckProof, currentClaim, 2*m, degree)
		if !ok {
			return FinalClaim{}, false
		}

		o1, o2 := layerProof.ValueAtB, layerProof.ValueAtC

		var sumO fr.Element
		sumO.Add(&o1, &o2)
		var prodO fr.Element
		prodO.Mul(&o1, &o2)

		addVal := addSelector.Evaluate(challenges)
		mulVal := mulSelector.Evaluate(challenges)

		var addTerm, mulTerm, expected fr.Element
		addTerm.Mul(&addVal, &sumO)
		mulTerm.Mul(&mulVal, &prodO)
		expected.Add(&addTerm, &mulTerm)

		if !expected.Equal(&finalEval) {
			return FinalClaim{}, false
		}

		rB := challenges[:m]
		rC := challenges[m:]

		t.AppendElement(o1)
		alpha := t.Squeeze()
		t.AppendElement(o2)
		beta := t.Squeeze()

		claims = []weightedClaim{{point: rB, weight: alpha}, {point: rC, weight: beta}}

		var weightedO1, weightedO2 fr.Element
		weightedO1.Mul(&alpha, &o1)
		weightedO2.Mul(&beta, &o2)
		currentClaim.Add(&weightedO1, &weightedO2)

		lastRB, lastRC = rB, rC
		lastO1, lastO2 = o1, o2
	}

	return FinalClaim{PointB: lastRB, ValueB: lastO1, PointC: lastRC, ValueC: lastO2}, true
}
