package nn

import (
	"errors"
	"testing"

	"github.com/born-ml/backprop/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOptimizer is plain gradient descent that remembers every call.
type recordingOptimizer struct {
	calls []recordedStep
}

type recordedStep struct {
	id       optim.ParamID
	gradient float64
	lr       float64
}

func (r *recordingOptimizer) Step(id optim.ParamID, gradient, learningRate float64) float64 {
	r.calls = append(r.calls, recordedStep{id: id, gradient: gradient, lr: learningRate})
	return -learningRate * gradient
}

func newTestNeuron(act Activation, weights ...float64) *Neuron {
	return NewNeuron(len(weights)-1, 0, act, Fixed([][]float64{weights}))
}

func TestNeuron_Activate(t *testing.T) {
	n := newTestNeuron(NewIdentity(), 0.5, 2.0, -1.0)

	// 0.5 + 2*3 - 1*4 = 2.5
	out, err := n.Activate([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, out)
	assert.Equal(t, 2.5, n.Output())
}

func TestNeuron_ActivateDeterministic(t *testing.T) {
	n := newTestNeuron(NewSigmoid(), 0.1, -0.4, 0.7)
	x := []float64{0.3, 0.9}

	first, err := n.Activate(x)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := n.Activate(x)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNeuron_ActivateShapeMismatch(t *testing.T) {
	n := newTestNeuron(NewSigmoid(), 0, 1, 1)

	_, err := n.Activate([]float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Expected)
	assert.Equal(t, 1, se.Actual)
}

func TestNeuron_OutputGradient(t *testing.T) {
	n := newTestNeuron(NewSigmoid(), 0, 1, 0)
	y, err := n.Activate([]float64{0.4, 0})
	require.NoError(t, err)

	require.NoError(t, n.CalculateGradient(OutputSignal{Target: 1, Loss: NewSquaredError()}))

	// (y - t) * y * (1 - y)
	assert.InDelta(t, (y-1)*y*(1-y), n.Gradient(), 1e-15)
}

func TestNeuron_HiddenGradient(t *testing.T) {
	n := newTestNeuron(NewTanh(), 0.2, 0.3)
	y, err := n.Activate([]float64{1.5})
	require.NoError(t, err)

	signal := HiddenSignal{
		Gradients: []float64{0.1, -0.2, 0.05},
		Weights:   []float64{0.7, 0.4, -1.0},
	}
	require.NoError(t, n.CalculateGradient(signal))

	sum := 0.1*0.7 + -0.2*0.4 + 0.05*-1.0
	assert.InDelta(t, sum*(1-y*y), n.Gradient(), 1e-15)
}

func TestNeuron_HiddenGradientShapeMismatch(t *testing.T) {
	n := newTestNeuron(NewTanh(), 0, 1)
	_, err := n.Activate([]float64{1})
	require.NoError(t, err)

	err = n.CalculateGradient(HiddenSignal{Gradients: []float64{1, 2}, Weights: []float64{1}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNeuron_InvalidSignal(t *testing.T) {
	n := newTestNeuron(NewSigmoid(), 0, 1)

	assert.ErrorIs(t, n.CalculateGradient(nil), ErrInvalidSignal)
	assert.ErrorIs(t, n.CalculateGradient(OutputSignal{Target: 1}), ErrInvalidSignal)
}

func TestNeuron_UpdateWeights(t *testing.T) {
	n := newTestNeuron(NewIdentity(), 0.5, 2.0, -1.0)
	x := []float64{3, 4}

	_, err := n.Activate(x) // 2.5
	require.NoError(t, err)
	require.NoError(t, n.CalculateGradient(OutputSignal{Target: 2.0, Loss: NewSquaredError()}))

	// delta = (2.5 - 2.0) * 1 = 0.5
	assert.InDelta(t, 0.5, n.Gradient(), 1e-15)

	opt := &recordingOptimizer{}
	require.NoError(t, n.UpdateWeights(x, 0.1, opt, 3, 7))

	// bias: 0.5 - 0.1*0.5; w1: 2 - 0.1*0.5*3; w2: -1 - 0.1*0.5*4
	expected := []float64{0.45, 1.85, -1.2}
	for j, w := range n.Weights() {
		assert.InDelta(t, expected[j], w, 1e-12, "weight %d", j)
	}

	require.Len(t, opt.calls, 3)
	for j, c := range opt.calls {
		assert.Equal(t, optim.ParamID{Layer: 3, Neuron: 7, Weight: j}, c.id)
		assert.Equal(t, 0.1, c.lr)
	}
	assert.InDelta(t, 0.5, opt.calls[0].gradient, 1e-15)
	assert.InDelta(t, 1.5, opt.calls[1].gradient, 1e-15)
	assert.InDelta(t, 2.0, opt.calls[2].gradient, 1e-15)
}

func TestNeuron_UpdateWeightsShapeMismatch(t *testing.T) {
	n := newTestNeuron(NewIdentity(), 0, 1, 1)
	err := n.UpdateWeights([]float64{1, 2, 3}, 0.1, optim.NewGradientDescent(), 0, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNeuron_WeightsIsCopy(t *testing.T) {
	n := newTestNeuron(NewIdentity(), 1, 2)
	w := n.Weights()
	w[0] = 100
	assert.Equal(t, 1.0, n.Weight(0))
}

func TestNewNeuron_DefaultInit(t *testing.T) {
	n := NewNeuron(5, 0, NewSigmoid(), nil)
	assert.Equal(t, 5, n.NumInputs())
	assert.Len(t, n.Weights(), 6)
}
