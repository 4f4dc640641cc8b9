// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"testing"

	"github.com/born-ml/backprop/nn"
	"github.com/born-ml/backprop/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI drives one training step through the public packages only.
func TestPublicAPI(t *testing.T) {
	net := nn.NewNetwork(
		nn.NewDense(3, nn.NewTanh(), nn.DenseConfig{Init: nn.Constant(0.1)}),
		nn.NewDense(1, nn.NewSigmoid(), nn.DenseConfig{Init: nn.Constant(-0.2)}),
	)
	require.NoError(t, net.Build(2))

	x := []float64{0.5, -1}
	y := []float64{1}
	loss := nn.NewSquaredError()

	before, err := net.MeanLoss([]nn.Sample{{Inputs: x, Targets: y}}, loss)
	require.NoError(t, err)

	opt := optim.NewAdam(optim.AdamConfig{})
	for i := 0; i < 50; i++ {
		require.NoError(t, net.TrainStep(x, y, loss, 0.05, opt))
	}

	after, err := net.MeanLoss([]nn.Sample{{Inputs: x, Targets: y}}, loss)
	require.NoError(t, err)
	assert.Less(t, after, before)
}

func TestPublicErrors(t *testing.T) {
	d := nn.NewDense(2, nn.NewReLU(), nn.DenseConfig{Parallel: nn.DefaultParallelConfig()})

	_, err := d.Activate([]float64{1})
	assert.True(t, errors.Is(err, nn.ErrNotInitialized))

	require.NoError(t, d.Initialize(1))
	_, err = d.Activate([]float64{1, 2})

	var se *nn.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Expected)
}
