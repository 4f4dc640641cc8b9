package nn

import "math"

// Activation is a scalar activation function together with its derivative.
//
// Derivative receives the activated output y = Forward(x), not the
// pre-activation x. Neurons cache only their output, so every activation
// must express its derivative in terms of y.
//
// Implementations must be pure and stateless.
type Activation interface {
	// Forward computes y = f(x).
	Forward(x float64) float64

	// Derivative computes f'(x) expressed through y = f(x).
	Derivative(y float64) float64
}

// Sigmoid is the logistic activation.
//
// Applies: f(x) = 1 / (1 + exp(-x))
//
// Derivative: f'(x) = y * (1 - y)
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() Sigmoid {
	return Sigmoid{}
}

// Forward applies the logistic function.
func (Sigmoid) Forward(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative returns y * (1 - y).
func (Sigmoid) Derivative(y float64) float64 {
	return y * (1.0 - y)
}

// Tanh is the hyperbolic tangent activation.
//
// Derivative: f'(x) = 1 - y²
type Tanh struct{}

// NewTanh creates a new Tanh activation.
func NewTanh() Tanh {
	return Tanh{}
}

// Forward applies tanh(x).
func (Tanh) Forward(x float64) float64 {
	return math.Tanh(x)
}

// Derivative returns 1 - y².
func (Tanh) Derivative(y float64) float64 {
	return 1.0 - y*y
}

// ReLU is the rectified linear activation: f(x) = max(0, x).
//
// The derivative at zero is taken as 0.
type ReLU struct{}

// NewReLU creates a new ReLU activation.
func NewReLU() ReLU {
	return ReLU{}
}

// Forward applies max(0, x).
func (ReLU) Forward(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for positive outputs, 0 otherwise.
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// Identity passes its input through unchanged.
// Useful for regression output layers.
type Identity struct{}

// NewIdentity creates a new Identity activation.
func NewIdentity() Identity {
	return Identity{}
}

// Forward returns x.
func (Identity) Forward(x float64) float64 {
	return x
}

// Derivative returns 1.
func (Identity) Derivative(float64) float64 {
	return 1
}
