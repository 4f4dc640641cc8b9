// Package optim implements per-parameter update rules for training neural networks.
//
// This package provides:
//   - Optimizer interface: converts a raw gradient into the change to apply
//   - ParamID: stable identity of a single scalar parameter
//   - GradientDescent: plain stateless gradient descent
//   - SGD: gradient descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Stateful optimizers keep their state in maps keyed by ParamID and owned by
// the optimizer instance, so two networks trained with two optimizers never
// share anything.
package optim

import "fmt"

// ParamID addresses a single scalar parameter.
//
// Weight 0 is a neuron's bias; weights 1..n are its per-input weights.
type ParamID struct {
	Layer  int
	Neuron int
	Weight int
}

// String implements fmt.Stringer.
func (p ParamID) String() string {
	return fmt.Sprintf("layer%d.neuron%d.w%d", p.Layer, p.Neuron, p.Weight)
}

// Optimizer is the interface for all update rules.
//
// Implementations need not be safe for concurrent use. Callers that step
// parameters from several goroutines must check IsStateless first; every
// other optimizer, including user-defined ones, is stepped from one goroutine.
// Stateful implementations should also implement Resetter.
type Optimizer interface {
	// Step returns the delta to add to the parameter identified by id.
	//
	// Stateful optimizers update their per-parameter state as a side effect,
	// so Step must be called exactly once per parameter per training step.
	Step(id ParamID, gradient, learningRate float64) float64
}

// Resetter is implemented by optimizers that carry per-parameter state.
type Resetter interface {
	// Reset clears all accumulated state.
	Reset()
}

// IsStateless reports whether opt is known to keep no per-parameter state,
// which makes concurrent Step calls safe.
//
// Only GradientDescent qualifies. An unknown optimizer is treated as stateful.
func IsStateless(opt Optimizer) bool {
	switch opt.(type) {
	case GradientDescent, *GradientDescent:
		return true
	default:
		return false
	}
}
