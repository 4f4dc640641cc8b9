// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/parallel"
)

// Errors

var (
	ErrShapeMismatch      = nn.ErrShapeMismatch
	ErrNotInitialized     = nn.ErrNotInitialized
	ErrAlreadyInitialized = nn.ErrAlreadyInitialized
	ErrNotImplemented     = nn.ErrNotImplemented
	ErrInvalidSignal      = nn.ErrInvalidSignal
	ErrNoGradients        = nn.ErrNoGradients
)

// ShapeError describes a vector of the wrong length.
type ShapeError = nn.ShapeError

// Neurons and Layers

// Neuron is a single unit holding its own weights and bias.
type Neuron = nn.Neuron

// NewNeuron creates a neuron sized for numInputs inputs plus bias.
func NewNeuron(numInputs, neuronIndex int, activation Activation, initializer Initializer) *Neuron {
	return nn.NewNeuron(numInputs, neuronIndex, activation, initializer)
}

// Layer is the interface for all layer variants.
type Layer = nn.Layer

// Downstream is the read-only view a layer exposes to the layer before it.
type Downstream = nn.Downstream

// UnimplementedLayer can be embedded in a layer variant under construction.
type UnimplementedLayer = nn.UnimplementedLayer

// Dense is a fully connected layer of independent neurons.
type Dense = nn.Dense

// DenseConfig holds configuration for a Dense layer.
type DenseConfig = nn.DenseConfig

// ParallelConfig controls per-neuron parallelism inside a Dense layer.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a ParallelConfig sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// NewDense creates a Dense layer of numNeurons neurons.
//
// Example:
//
//	hidden := nn.NewDense(8, nn.NewTanh(), nn.DenseConfig{})
func NewDense(numNeurons int, activation Activation, config DenseConfig) *Dense {
	return nn.NewDense(numNeurons, activation, config)
}

// Gradient sources

// GradientSignal selects how a single neuron computes its delta.
type GradientSignal = nn.GradientSignal

// OutputSignal drives an output-layer neuron from its target.
type OutputSignal = nn.OutputSignal

// HiddenSignal drives a hidden neuron from the layer after it.
type HiddenSignal = nn.HiddenSignal

// GradientSource selects how a whole layer computes its gradients.
type GradientSource = nn.GradientSource

// OutputTargets marks the layer as the output layer.
type OutputTargets = nn.OutputTargets

// HiddenDownstream marks the layer as hidden and names the layer after it.
type HiddenDownstream = nn.HiddenDownstream

// Activations

// Activation is a scalar activation function together with its derivative.
type Activation = nn.Activation

// Sigmoid is the logistic activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() Sigmoid {
	return nn.NewSigmoid()
}

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation.
func NewTanh() Tanh {
	return nn.NewTanh()
}

// ReLU is the rectified linear activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation.
func NewReLU() ReLU {
	return nn.NewReLU()
}

// Identity passes its input through unchanged.
type Identity = nn.Identity

// NewIdentity creates a new Identity activation.
func NewIdentity() Identity {
	return nn.NewIdentity()
}

// Loss Functions

// Loss is a scalar loss of a single prediction against its target.
type Loss = nn.Loss

// SquaredError computes ½(prediction - target)².
type SquaredError = nn.SquaredError

// NewSquaredError creates a new squared error loss.
func NewSquaredError() SquaredError {
	return nn.NewSquaredError()
}

// BinaryCrossEntropy computes the log loss of a probability prediction.
type BinaryCrossEntropy = nn.BinaryCrossEntropy

// NewBinaryCrossEntropy creates a new binary cross-entropy loss.
func NewBinaryCrossEntropy() BinaryCrossEntropy {
	return nn.NewBinaryCrossEntropy()
}

// Initialization

// Initializer produces the initial weight vector for one neuron.
type Initializer = nn.Initializer

// InitializerFunc adapts an ordinary function to the Initializer interface.
type InitializerFunc = nn.InitializerFunc

// Xavier returns a Glorot-uniform initializer with zero bias.
func Xavier(rng *rand.Rand) Initializer {
	return nn.Xavier(rng)
}

// Uniform returns an initializer drawing every weight from U(-bound, bound).
func Uniform(rng *rand.Rand, bound float64) Initializer {
	return nn.Uniform(rng, bound)
}

// Constant returns an initializer setting every weight to v.
func Constant(v float64) Initializer {
	return nn.Constant(v)
}

// Fixed returns an initializer handing out rows by neuron index.
//
// Example:
//
//	initializer := nn.Fixed([][]float64{
//	    {0.1, 0.8, -0.6}, // neuron 0: bias, w1, w2
//	    {-0.2, -0.5, 0.9},
//	})
func Fixed(rows [][]float64) Initializer {
	return nn.Fixed(rows)
}

// Network

// Network chains layers into a feed-forward network and drives training.
type Network = nn.Network

// NewNetwork creates a network from layers in forward order.
func NewNetwork(layers ...Layer) *Network {
	return nn.NewNetwork(layers...)
}

// Sample is one input vector with its target vector.
type Sample = nn.Sample

// TrainConfig holds configuration for Network.Train.
type TrainConfig = nn.TrainConfig

// TrainResult reports the mean loss of each epoch.
type TrainResult = nn.TrainResult
