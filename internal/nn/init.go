package nn

import (
	"math"
	"math/rand"
)

// Initializer produces the initial weight vector for one neuron.
//
// The returned slice must have length numInputs+1; index 0 is the bias.
// neuronIndex is the neuron's position within its layer, which lets
// deterministic initializers give each neuron distinct weights.
type Initializer interface {
	Init(numInputs, neuronIndex int) []float64
}

// InitializerFunc adapts an ordinary function to the Initializer interface.
type InitializerFunc func(numInputs, neuronIndex int) []float64

// Init calls f(numInputs, neuronIndex).
func (f InitializerFunc) Init(numInputs, neuronIndex int) []float64 {
	return f(numInputs, neuronIndex)
}

// Xavier (Glorot) initialization.
//
// Weights are drawn from U(-sqrt(6/(fan_in+fan_out)), sqrt(6/(fan_in+fan_out)))
// with fan_out taken as 1 per neuron. The bias starts at zero.
//
// A nil rng uses the math/rand global source.
func Xavier(rng *rand.Rand) Initializer {
	return InitializerFunc(func(numInputs, _ int) []float64 {
		bound := math.Sqrt(6.0 / float64(numInputs+1))
		w := make([]float64, numInputs+1)
		for i := 1; i < len(w); i++ {
			w[i] = (float64Of(rng)*2.0 - 1.0) * bound
		}
		return w
	})
}

// Uniform draws every weight, bias included, from U(-bound, bound).
//
// A nil rng uses the math/rand global source.
func Uniform(rng *rand.Rand, bound float64) Initializer {
	return InitializerFunc(func(numInputs, _ int) []float64 {
		w := make([]float64, numInputs+1)
		for i := range w {
			w[i] = (float64Of(rng)*2.0 - 1.0) * bound
		}
		return w
	})
}

// Constant sets every weight, bias included, to v.
func Constant(v float64) Initializer {
	return InitializerFunc(func(numInputs, _ int) []float64 {
		w := make([]float64, numInputs+1)
		for i := range w {
			w[i] = v
		}
		return w
	})
}

// Fixed hands out the given weight vectors by neuron index.
//
// Each row is [bias, w1, ..., wn]. Rows are copied, so the caller may reuse
// the table. A neuron index past the table, or a row of the wrong length,
// panics: a fixed table that does not fit the layer is a programming error.
func Fixed(rows [][]float64) Initializer {
	return InitializerFunc(func(numInputs, neuronIndex int) []float64 {
		if neuronIndex >= len(rows) {
			panic(&ShapeError{Op: "Fixed", What: "rows", Expected: neuronIndex + 1, Actual: len(rows)})
		}
		row := rows[neuronIndex]
		if len(row) != numInputs+1 {
			panic(&ShapeError{Op: "Fixed", What: "row", Expected: numInputs + 1, Actual: len(row)})
		}
		w := make([]float64, len(row))
		copy(w, row)
		return w
	})
}

func float64Of(rng *rand.Rand) float64 {
	if rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return rand.Float64()
	}
	return rng.Float64()
}
