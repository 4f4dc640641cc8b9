package optim

// GradientDescent is plain, stateless gradient descent.
//
// Update rule:
//
//	delta = -lr * gradient
type GradientDescent struct{}

// NewGradientDescent creates a new stateless gradient descent optimizer.
func NewGradientDescent() GradientDescent {
	return GradientDescent{}
}

// Step returns -learningRate * gradient.
func (GradientDescent) Step(_ ParamID, gradient, learningRate float64) float64 {
	return -learningRate * gradient
}

// SGD implements Stochastic Gradient Descent with momentum.
//
// Update rule:
//
//	velocity = momentum * velocity + gradient
//	delta    = -lr * velocity
//
// With Momentum == 0 this reduces to GradientDescent, and no state is kept.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{Momentum: 0.9})
//	delta := optimizer.Step(optim.ParamID{Layer: 0, Neuron: 1, Weight: 2}, grad, 0.1)
type SGD struct {
	momentum   float64
	velocities map[ParamID]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return &SGD{
		momentum:   config.Momentum,
		velocities: make(map[ParamID]float64),
	}
}

// Step performs a single update for one parameter.
func (s *SGD) Step(id ParamID, gradient, learningRate float64) float64 {
	if s.momentum == 0 {
		return -learningRate * gradient
	}

	// Missing velocity reads as zero on the first step.
	v := s.momentum*s.velocities[id] + gradient
	s.velocities[id] = v

	return -learningRate * v
}

// Velocity returns the current momentum buffer for id.
func (s *SGD) Velocity(id ParamID) float64 {
	return s.velocities[id]
}

// Reset clears all velocities.
func (s *SGD) Reset() {
	clear(s.velocities)
}
