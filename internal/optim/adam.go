package optim

import "math"

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule, per parameter:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	delta = -lr * m_hat / (sqrt(v_hat) + eps)
//
// Parameters are stepped one at a time, so the timestep t is tracked per
// ParamID rather than once per optimizer step.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	beta1 float64
	beta2 float64
	eps   float64
	state map[ParamID]*adamState
}

type adamState struct {
	m float64 // First moment estimate
	v float64 // Second moment estimate
	t int     // Timestep for bias correction
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(config AdamConfig) *Adam {
	// Set defaults
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		state: make(map[ParamID]*adamState),
	}
}

// Step performs a single Adam update for one parameter.
func (a *Adam) Step(id ParamID, gradient, learningRate float64) float64 {
	s, ok := a.state[id]
	if !ok {
		s = &adamState{}
		a.state[id] = s
	}

	s.t++
	s.m = a.beta1*s.m + (1-a.beta1)*gradient
	s.v = a.beta2*s.v + (1-a.beta2)*gradient*gradient

	mHat := s.m / (1 - math.Pow(a.beta1, float64(s.t)))
	vHat := s.v / (1 - math.Pow(a.beta2, float64(s.t)))

	return -learningRate * mHat / (math.Sqrt(vHat) + a.eps)
}

// Reset clears all moment estimates and timesteps.
func (a *Adam) Reset() {
	clear(a.state)
}
