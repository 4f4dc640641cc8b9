package nn

import (
	"github.com/born-ml/backprop/internal/optim"
	"gonum.org/v1/gonum/floats"
)

// Neuron is a single unit holding its own weights and bias.
//
// The weight vector has length numInputs+1: index 0 is the bias and
// indices 1..n are the per-input weights.
//
// A neuron caches the output of its last Activate call and the delta of its
// last CalculateGradient call. The caller must keep them in step:
//
//	out, _ := n.Activate(x)        // caches output
//	_ = n.CalculateGradient(sig)   // reads cached output, caches delta
//	_ = n.UpdateWeights(x, ...)    // reads cached delta
//
// Calling them out of order silently uses stale values.
type Neuron struct {
	weights    []float64
	activation Activation
	lastOutput float64
	gradient   float64
}

// NewNeuron creates a neuron sized for numInputs inputs plus bias.
//
// neuronIndex is passed through to initializer. A nil initializer uses
// Xavier with the global random source.
func NewNeuron(numInputs, neuronIndex int, activation Activation, initializer Initializer) *Neuron {
	if initializer == nil {
		initializer = Xavier(nil)
	}
	return &Neuron{
		weights:    initializer.Init(numInputs, neuronIndex),
		activation: activation,
	}
}

// Activate computes f(bias + Σ w_i * x_i), caches it and returns it.
func (n *Neuron) Activate(inputs []float64) (float64, error) {
	if err := checkLen("Neuron.Activate", "inputs", len(n.weights)-1, len(inputs)); err != nil {
		return 0, err
	}

	z := n.weights[0] + floats.Dot(n.weights[1:], inputs)
	n.lastOutput = n.activation.Forward(z)

	return n.lastOutput, nil
}

// CalculateGradient computes and caches the neuron's delta.
//
// The formula is chosen by the signal variant:
//   - OutputSignal: loss'(y, target) * f'(y)
//   - HiddenSignal: (Σ g_k * w_k) * f'(y)
//
// where y is the output cached by the last Activate call.
func (n *Neuron) CalculateGradient(signal GradientSignal) error {
	var upstream float64

	switch s := signal.(type) {
	case OutputSignal:
		if s.Loss == nil {
			return ErrInvalidSignal
		}
		upstream = s.Loss.Derivative(n.lastOutput, s.Target)
	case HiddenSignal:
		if err := checkLen("Neuron.CalculateGradient", "downstream weights", len(s.Gradients), len(s.Weights)); err != nil {
			return err
		}
		upstream = floats.Dot(s.Gradients, s.Weights)
	default:
		return ErrInvalidSignal
	}

	n.gradient = upstream * n.activation.Derivative(n.lastOutput)
	return nil
}

// UpdateWeights applies one optimizer step to every parameter of the neuron.
//
// inputs must be the same vector passed to the Activate call the cached
// delta was computed from. The bias gradient is delta; the gradient of
// weight j is delta * inputs[j-1].
func (n *Neuron) UpdateWeights(inputs []float64, learningRate float64, opt optim.Optimizer, layerIndex, neuronIndex int) error {
	if err := checkLen("Neuron.UpdateWeights", "inputs", len(n.weights)-1, len(inputs)); err != nil {
		return err
	}

	id := optim.ParamID{Layer: layerIndex, Neuron: neuronIndex}
	n.weights[0] += opt.Step(id, n.gradient, learningRate)

	for j := 1; j < len(n.weights); j++ {
		id.Weight = j
		n.weights[j] += opt.Step(id, n.gradient*inputs[j-1], learningRate)
	}

	return nil
}

// Weights returns a copy of the weight vector, bias first.
func (n *Neuron) Weights() []float64 {
	w := make([]float64, len(n.weights))
	copy(w, n.weights)
	return w
}

// Weight returns weights[j]; j == 0 is the bias.
func (n *Neuron) Weight(j int) float64 {
	return n.weights[j]
}

// SetWeight overwrites weights[j]; j == 0 is the bias.
func (n *Neuron) SetWeight(j int, v float64) {
	n.weights[j] = v
}

// NumInputs returns the number of inputs the neuron accepts.
func (n *Neuron) NumInputs() int {
	return len(n.weights) - 1
}

// Output returns the output cached by the last Activate call.
func (n *Neuron) Output() float64 {
	return n.lastOutput
}

// Gradient returns the delta cached by the last CalculateGradient call.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}
