// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides per-parameter update rules for training neural networks.
//
// # Overview
//
// This package contains:
//   - GradientDescent: plain, stateless gradient descent
//   - SGD: gradient descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Parameter Identity
//
// Every scalar parameter is addressed by a ParamID of
// (layer index, neuron index, weight index), with weight 0 being the bias.
// Stateful optimizers key their state by ParamID, and the state belongs to
// the optimizer value: two networks trained with two optimizers never
// interfere.
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(optim.SGDConfig{Momentum: 0.9})
//
//	for epoch := range numEpochs {
//	    for _, s := range samples {
//	        if err := net.TrainStep(s.Inputs, s.Targets, loss, 0.1, optimizer); err != nil {
//	            return err
//	        }
//	    }
//	}
//
// # Custom Optimizers
//
// Any type with a Step method is an Optimizer:
//
//	type signSGD struct{}
//
//	func (signSGD) Step(_ optim.ParamID, g, lr float64) float64 {
//	    return -lr * math.Copysign(1, g)
//	}
package optim
