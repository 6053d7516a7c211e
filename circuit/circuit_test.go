package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
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

func TestCircuitEvaluate(t *testing.T) {
	// inputs: [1,2,3,4,5,6,7,8]
	// layer (input-closest, 4 gates): mul,mul,mul,mul -> [2,12,30,56]
	// layer (2 gates): add,add -> [14,86]
	// layer (1 gate, output): add -> [100]
	structure := [][]Operation{
		{Mul, Mul, Mul, Mul},
		{Add, Add},
		{Add},
	}
	c := New(structure)

	inputs := feSlice(1, 2, 3, 4, 5, 6, 7, 8)
	results := c.Evaluate(inputs)

	if len(results) != 3 {
		t.Fatalf("expected 3 layer results, got %d", len(results))
	}

	want0 := feSlice(2, 12, 30, 56)
	for i, w := range want0 {
		if !results[0][i].Equal(&w) {
			t.Errorf("layer0[%d] = %s, want %s", i, results[0][i].String(), w.String())
		}
	}

	want1 := feSlice(14, 86)
	for i, w := range want1 {
		if !results[1][i].Equal(&w) {
			t.Errorf("layer1[%d] = %s, want %s", i, results[1][i].String(), w.String())
		}
	}

	want2 := fe(100)
	if !results[2][0].Equal(&want2) {
		t.Errorf("output = %s, want %s", results[2][0].String(), want2.String())
	}
}

func TestCircuitNewPanicsOnBadStructure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched layer sizes")
		}
	}()
	New([][]Operation{
		{Mul, Mul, Mul},
		{Add},
	})
}

func TestAddMulPolySingleGateLayer(t *testing.T) {
	layer := Layer{Gates: []Gate{{Op: Add}}}

	addPoly := layer.AddMulPoly(Add)
	if addPoly.NumVars != 3 {
		t.Fatalf("expected 3 vars for single-gate layer (width-3 edge case), got %d", addPoly.NumVars)
	}
	var one fr.Element
	one.SetOne()
	if !addPoly.Evaluations[1].Equal(&one) {
		t.Errorf("add_0 selector expected 1 at index 1, got %s", addPoly.Evaluations[1].String())
	}
	for i, v := range addPoly.Evaluations {
		if i == 1 {
			continue
		}
		if !v.IsZero() {
			t.Errorf("add_0 selector expected 0 at index %d, got %s", i, v.String())
		}
	}

	mulPoly := layer.AddMulPoly(Mul)
	for i, v := range mulPoly.Evaluations {
		if !v.IsZero() {
			t.Errorf("mul_0 selector for add-only layer should be all zero, nonzero at %d: %s", i, v.String())
		}
	}
}

func TestAddMulPolyMultiGateLayer(t *testing.T) {
	// 4 gates: mul,mul,mul,mul. k = ceil(log2 4) = 2, widths (2,3,3).
	layer := Layer{Gates: []Gate{{Op: Mul}, {Op: Mul}, {Op: Mul}, {Op: Mul}}}
	mulPoly := layer.AddMulPoly(Mul)
	if mulPoly.NumVars != 8 {
		t.Fatalf("expected 8 vars (2+3+3), got %d", mulPoly.NumVars)
	}

	var one fr.Element
	one.SetOne()
	for i := 0; i < 4; i++ {
		label := (i << 6) | ((2 * i) << 3) | (2*i + 1)
		if !mulPoly.Evaluations[label].Equal(&one) {
			t.Errorf("mul_%d selector expected 1 at label %d, got %s", i, label, mulPoly.Evaluations[label].String())
		}
	}

	addPoly := layer.AddMulPoly(Add)
	for i, v := range addPoly.Evaluations {
		if !v.IsZero() {
			t.Errorf("add selector for mul-only layer should be all zero, nonzero at %d: %s", i, v.String())
		}
	}
}

func TestWireValuesByLayer(t *testing.T) {
	structure := [][]Operation{
		{Mul, Mul, Mul, Mul},
		{Add, Add},
		{Add},
	}
	c := New(structure)
	inputs := feSlice(1, 2, 3, 4, 5, 6, 7, 8)

	byLayer := c.WireValuesByLayer(inputs)
	if len(byLayer) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(byLayer))
	}
	want2 := fe(100)
	if !byLayer[0][0].Equal(&want2) {
		t.Errorf("output-closest layer 0 should be the final output, got %s", byLayer[0][0].String())
	}
	want0 := feSlice(2, 12, 30, 56)
	for i, w := range want0 {
		if !byLayer[2][i].Equal(&w) {
			t.Errorf("input-closest layer[%d] = %s, want %s", i, byLayer[2][i].String(), w.String())
		}
	}
}
