// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a per-neuron feed-forward network trained by
// backpropagation.
//
// # Overview
//
// This package contains:
//   - Neuron: a weight vector with bias, its cached output and delta
//   - Layers: the Layer interface and the Dense variant
//   - Activations: Sigmoid, Tanh, ReLU, Identity
//   - Loss functions: SquaredError, BinaryCrossEntropy
//   - Network: forward, backward and update sweeps over a slice of layers
//   - Initialization: Xavier, Uniform, Constant, Fixed
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/backprop/nn"
//	    "github.com/born-ml/backprop/optim"
//	)
//
//	func main() {
//	    net := nn.NewNetwork(
//	        nn.NewDense(2, nn.NewSigmoid(), nn.DenseConfig{}),
//	        nn.NewDense(1, nn.NewSigmoid(), nn.DenseConfig{}),
//	    )
//	    if err := net.Build(2); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := net.Train(samples, nn.TrainConfig{
//	        Epochs:       2000,
//	        LearningRate: 0.5,
//	        Optimizer:    optim.NewGradientDescent(),
//	    })
//	}
//
// # Gradient Modes
//
// A layer computes its gradients in one of two modes, chosen by the
// GradientSource it is given:
//
//	// Output layer: targets and a loss.
//	out.CalculateGradients(nn.OutputTargets{Values: targets, Loss: nn.NewSquaredError()})
//
//	// Hidden layer: the layer after it, whose gradients are already computed.
//	hidden.CalculateGradients(nn.HiddenDownstream{Layer: out})
//
// # Ordering
//
// Hidden gradients read the downstream layer's weights. Every layer's
// gradients must therefore be computed before any layer is updated.
// Network.TrainStep and Network.Train always do this; callers driving layers
// by hand must do the same.
//
// # Errors
//
// Length mismatches fail with ErrShapeMismatch (as a *ShapeError), use
// before Initialize fails with ErrNotInitialized. NaN and Inf values are
// not checked.
package nn
