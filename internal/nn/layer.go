// Package nn implements a per-neuron feed-forward network for backpropagation.
//
// This package provides:
//   - Neuron: weights with bias, cached output and delta
//   - Layer interface and the Dense variant
//   - Activations: Sigmoid, Tanh, ReLU, Identity
//   - Loss functions: SquaredError, BinaryCrossEntropy
//   - Network: forward, backward and update sweeps over layers
//
// Every neuron is its own object; nothing is vectorized.
package nn

import (
	"github.com/born-ml/backprop/internal/optim"
)

// GradientSignal selects how a single neuron computes its delta.
//
// It is a closed set: OutputSignal or HiddenSignal.
type GradientSignal interface {
	isGradientSignal()
}

// OutputSignal drives an output-layer neuron from its target.
type OutputSignal struct {
	Target float64
	Loss   Loss
}

// HiddenSignal drives a hidden neuron from the layer after it.
//
// Gradients[k] is the delta of downstream neuron k and Weights[k] is the
// weight downstream neuron k applies to this neuron's output.
type HiddenSignal struct {
	Gradients []float64
	Weights   []float64
}

func (OutputSignal) isGradientSignal() {}
func (HiddenSignal) isGradientSignal() {}

// GradientSource selects how a whole layer computes its gradients.
//
// It is a closed set: OutputTargets or HiddenDownstream.
type GradientSource interface {
	isGradientSource()
}

// OutputTargets marks the layer as the output layer.
// Values[i] is the target for neuron i.
type OutputTargets struct {
	Values []float64
	Loss   Loss
}

// HiddenDownstream marks the layer as hidden and names the layer after it.
//
// The reference is only used for the duration of the call. The downstream
// layer's gradients must already be computed and its weights must not yet
// be updated.
type HiddenDownstream struct {
	Layer Downstream
}

func (OutputTargets) isGradientSource() {}
func (HiddenDownstream) isGradientSource() {}

// Downstream is the read-only view a layer exposes to the layer before it
// during the backward pass.
type Downstream interface {
	// Gradients returns the cached delta of every neuron, in neuron order.
	Gradients() []float64

	// WeightsInto returns, for every neuron in order, the weight applied to
	// upstream output i (weight index i+1, skipping the bias).
	WeightsInto(i int) ([]float64, error)
}

// Layer is the interface for all layer variants.
//
// A layer owns an ordered collection of neurons sharing one activation.
// Every variant must implement the same contracts:
//   - Initialize: build neurons once the input width is known
//   - Activate: forward pass, one output per neuron
//   - CalculateGradients: backward pass for this layer only
//   - UpdateWeights: apply the optimizer to every neuron
//
// Network holds a slice of Layer values; the last layer is driven with
// OutputTargets and every other layer with HiddenDownstream.
type Layer interface {
	Downstream

	// Initialize builds the neurons for numInputs inputs each.
	// It must be called exactly once, before Activate.
	Initialize(numInputs int) error

	// Activate returns the layer output for inputs.
	Activate(inputs []float64) ([]float64, error)

	// CalculateGradients computes and caches every neuron's delta.
	CalculateGradients(src GradientSource) error

	// UpdateWeights updates every neuron using the layer's forward-pass inputs.
	UpdateWeights(inputs []float64, learningRate float64, opt optim.Optimizer, layerIndex int) error

	// Size returns the number of neurons (the output width).
	Size() int
}

// UnimplementedLayer can be embedded in a layer variant under construction.
// Every operation it provides fails with ErrNotImplemented.
type UnimplementedLayer struct{}

// Initialize returns ErrNotImplemented.
func (UnimplementedLayer) Initialize(int) error {
	return ErrNotImplemented
}

// Activate returns ErrNotImplemented.
func (UnimplementedLayer) Activate([]float64) ([]float64, error) {
	return nil, ErrNotImplemented
}

// CalculateGradients returns ErrNotImplemented.
func (UnimplementedLayer) CalculateGradients(GradientSource) error {
	return ErrNotImplemented
}

// UpdateWeights returns ErrNotImplemented.
func (UnimplementedLayer) UpdateWeights([]float64, float64, optim.Optimizer, int) error {
	return ErrNotImplemented
}

// Gradients returns nil.
func (UnimplementedLayer) Gradients() []float64 {
	return nil
}

// WeightsInto returns ErrNotImplemented.
func (UnimplementedLayer) WeightsInto(int) ([]float64, error) {
	return nil, ErrNotImplemented
}

// Size returns 0.
func (UnimplementedLayer) Size() int {
	return 0
}
