package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

// TestSigmoidForward tests known sigmoid values.
func TestSigmoidForward(t *testing.T) {
	s := NewSigmoid()

	// For x=0: 0.5
	// For x=2: 1 / (1 + e^-2) ≈ 0.8808
	// For x=-2: ≈ 0.1192
	assert.InDelta(t, 0.5, s.Forward(0), 1e-12)
	assert.InDelta(t, 0.8808, s.Forward(2), 1e-4)
	assert.InDelta(t, 0.1192, s.Forward(-2), 1e-4)
}

func TestTanhForward(t *testing.T) {
	a := NewTanh()
	assert.InDelta(t, 0.0, a.Forward(0), 1e-12)
	assert.InDelta(t, math.Tanh(0.7), a.Forward(0.7), 1e-12)
}

func TestReLUForward(t *testing.T) {
	r := NewReLU()

	inputs := []float64{-2, -0.5, 0, 0.5, 2}
	expected := []float64{0, 0, 0, 0.5, 2}
	for i, x := range inputs {
		assert.Equal(t, expected[i], r.Forward(x), "ReLU(%v)", x)
	}

	assert.Equal(t, 0.0, r.Derivative(0))
	assert.Equal(t, 1.0, r.Derivative(0.5))
}

func TestIdentity(t *testing.T) {
	a := NewIdentity()
	assert.Equal(t, -3.25, a.Forward(-3.25))
	assert.Equal(t, 1.0, a.Derivative(42))
}

// TestActivationDerivative checks Derivative(Forward(x)) against a central
// finite difference of Forward at x.
func TestActivationDerivative(t *testing.T) {
	tests := []struct {
		name string
		act  Activation
	}{
		{"sigmoid", NewSigmoid()},
		{"tanh", NewTanh()},
		{"relu", NewReLU()},
		{"identity", NewIdentity()},
	}

	// Stay away from 0 so ReLU's kink is not sampled.
	points := []float64{-1.7, -0.3, 0.4, 1.2, 2.5}
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range points {
				numerical := fd.Derivative(tt.act.Forward, x, settings)
				analytic := tt.act.Derivative(tt.act.Forward(x))
				assert.InDelta(t, numerical, analytic, 1e-6, "x=%v", x)
			}
		})
	}
}
