package nn

import "math"

// Loss is a scalar loss of a single prediction against its target.
//
// Implementations must be pure and stateless.
type Loss interface {
	// Forward computes the loss value.
	Forward(prediction, target float64) float64

	// Derivative computes dLoss/dPrediction.
	Derivative(prediction, target float64) float64
}

// SquaredError computes half the squared difference.
//
// Loss = ½(prediction - target)²
//
// The ½ factor makes the derivative simply (prediction - target).
//
// Example:
//
//	loss := nn.NewSquaredError()
//	l := loss.Forward(0.8, 1.0) // 0.02
type SquaredError struct{}

// NewSquaredError creates a new squared error loss.
func NewSquaredError() SquaredError {
	return SquaredError{}
}

// Forward computes ½(p - t)².
func (SquaredError) Forward(prediction, target float64) float64 {
	d := prediction - target
	return 0.5 * d * d
}

// Derivative computes p - t.
func (SquaredError) Derivative(prediction, target float64) float64 {
	return prediction - target
}

// BinaryCrossEntropy computes the log loss of a probability prediction.
//
// Loss = -(t*log(p) + (1-t)*log(1-p))
//
// Predictions are clamped to [Eps, 1-Eps] so that saturated sigmoid
// outputs do not produce infinities.
type BinaryCrossEntropy struct {
	Eps float64 // Clamp margin (default: 1e-12)
}

// NewBinaryCrossEntropy creates a new binary cross-entropy loss.
func NewBinaryCrossEntropy() BinaryCrossEntropy {
	return BinaryCrossEntropy{Eps: 1e-12}
}

func (b BinaryCrossEntropy) clamp(p float64) float64 {
	eps := b.Eps
	if eps == 0 {
		eps = 1e-12
	}
	return math.Min(math.Max(p, eps), 1-eps)
}

// Forward computes -(t*log(p) + (1-t)*log(1-p)).
func (b BinaryCrossEntropy) Forward(prediction, target float64) float64 {
	p := b.clamp(prediction)
	return -(target*math.Log(p) + (1-target)*math.Log(1-p))
}

// Derivative computes (p - t) / (p * (1 - p)).
func (b BinaryCrossEntropy) Derivative(prediction, target float64) float64 {
	p := b.clamp(prediction)
	return (p - target) / (p * (1 - p))
}
