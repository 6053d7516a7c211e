package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/obah/gkr-kzg/multilinear"
)

// Operation re-exports multilinear.Operation so callers that only deal
// with circuits never need to import the multilinear package directly.
type Operation = multilinear.Operation

const (
	Add = multilinear.Add
	Mul = multilinear.Mul
)

// Gate is a single fan-in-2 add/mul gate.
type Gate struct {
	LInput, RInput, Output fr.Element
	Op                     Operation
}

// Layer is an ordered list of gates evaluated from the same input wire
// vector, gate i reading inputs[2i] and inputs[2i+1].
type Layer struct {
	Gates []Gate
}

// Evaluate fills in each gate's inputs and output from the given wire
// vector and returns the layer's output vector. current must have
// exactly 2*len(l.Gates) elements.
func (l *Layer) Evaluate(current []fr.Element) []fr.Element {
	if len(current) != 2*len(l.Gates) {
		panic(fmt.Sprintf("circuit: layer expects %d inputs, got %d", 2*len(l.Gates), len(current)))
	}
	outputs := make([]fr.Element, len(l.Gates))
	for i := range l.Gates {
		left, right := current[2*i], current[2*i+1]
		l.Gates[i].LInput = left
		l.Gates[i].RInput = right
		l.Gates[i].Output = l.Gates[i].Op.Apply(left, right)
		outputs[i] = l.Gates[i].Output
	}
	return outputs
}

// gateLabelWidths returns the bit widths (output, left, right) used to
// pack a gate's label for a layer of g gates. g = 1 is an explicit
// edge case: rather than letting the output index take zero bits, it
// is packed with one bit for each of output, left and right (width 3
// total), and callers
// building the corresponding wire vector must pad it to one variable
// to match (see gkr.padOutputValues).
func gateLabelWidths(g int) (outputBits, childBits int) {
	if g == 1 {
		return 1, 1
	}
	k := ceilLog2(g)
	return k, k + 1
}

func ceilLog2(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// gateLabel packs a gate's (output, left, right) index triple into a
// single integer using the widths gateLabelWidths returns.
func gateLabel(gateIndex, outputBits, childBits int) int {
	output := gateIndex
	left := 2 * gateIndex
	right := 2*gateIndex + 1
	return (output << (2 * childBits)) | (left << childBits) | right
}

// AddMulPoly returns the selector multilinear for op: 1 at the packed
// label of every gate whose operation matches op, 0 everywhere else.
func (l *Layer) AddMulPoly(op Operation) multilinear.Poly {
	g := len(l.Gates)
	if g == 0 {
		panic("circuit: layer must have at least one gate")
	}
	outputBits, childBits := gateLabelWidths(g)
	width := outputBits + 2*childBits
	evaluations := make([]fr.Element, 1<<width)

	var one fr.Element
	one.SetOne()

	for i, gate := range l.Gates {
		if gate.Op == op {
			evaluations[gateLabel(i, outputBits, childBits)] = one
		}
	}
	return multilinear.New(evaluations)
}

// Circuit is an ordered list of layers, layer 0 being output-closest
// and the last layer input-closest.
type Circuit struct {
	Layers []Layer
}

// New builds a Circuit from structure, a per-layer list of gate
// operations given in input-to-output order. Layer sizes must halve at
// every step toward the output (n_{l+1} = 2*n_l moving toward the
// input); New panics otherwise, a fatal configuration error.
func New(structure [][]Operation) Circuit {
	n := len(structure)
	layers := make([]Layer, n)
	for i, ops := range structure {
		gates := make([]Gate, len(ops))
		for j, op := range ops {
			gates[j] = Gate{Op: op}
		}
		// structure is input-to-output order; store output-closest first.
		layers[n-1-i] = Layer{Gates: gates}
	}
	for i := 1; i < n; i++ {
		if len(layers[i].Gates) != 2*len(layers[i-1].Gates) {
			panic(fmt.Sprintf("circuit: layer %d has %d gates, expected %d (2x layer %d's %d gates)",
				i, len(layers[i].Gates), 2*len(layers[i-1].Gates), i-1, len(layers[i-1].Gates)))
		}
	}
	return Circuit{Layers: layers}
}

// Evaluate runs the circuit on inputs and returns the per-layer output
// vectors ordered from the input-closest layer's result to the final
// output.
func (c *Circuit) Evaluate(inputs []fr.Element) [][]fr.Element {
	current := inputs
	results := make([][]fr.Element, 0, len(c.Layers))
	for i := len(c.Layers) - 1; i >= 0; i-- {
		current = c.Layers[i].Evaluate(current)
		results = append(results, current)
	}
	return results
}

// WireValuesByLayer evaluates the circuit and returns the per-layer
// output vectors indexed output-closest-first (WireValuesByLayer[l] is
// the output of Layers[l]), the order GKR walks layers in.
func (c *Circuit) WireValuesByLayer(inputs []fr.Element) [][]fr.Element {
	inputClosestFirst := c.Evaluate(inputs)
	outputClosestFirst := make([][]fr.Element, len(inputClosestFirst))
	for i, v := range inputClosestFirst {
		outputClosestFirst[len(inputClosestFirst)-1-i] = v
	}
	return outputClosestFirst
}
