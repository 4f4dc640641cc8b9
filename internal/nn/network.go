package nn

import (
	"fmt"
	"slices"

	"github.com/born-ml/backprop/internal/optim"
	"gonum.org/v1/gonum/floats"
)

// Network chains layers into a feed-forward network and drives training.
//
// A training step is three sweeps:
//  1. Forward: thread the input through every layer, caching each layer's input
//  2. Backward: compute gradients from the last layer to the first
//  3. Update: apply the optimizer to every layer using the cached inputs
//
// Backward always finishes before Update starts. Hidden gradients read the
// downstream layer's weights, and those must still be the weights the
// forward pass used.
//
// Example:
//
//	net := nn.NewNetwork(
//	    nn.NewDense(2, nn.NewSigmoid(), nn.DenseConfig{}),
//	    nn.NewDense(1, nn.NewSigmoid(), nn.DenseConfig{}),
//	)
//	if err := net.Build(2); err != nil {
//	    return err
//	}
//	err := net.TrainStep(x, y, nn.NewSquaredError(), 0.5, optim.NewGradientDescent())
type Network struct {
	layers []Layer
	inputs [][]float64 // Raw input of each layer from the last Forward
	ready  bool        // Gradients computed and not yet applied
}

// NewNetwork creates a network from layers in forward order.
//
// The layers are not initialized until Build is called.
func NewNetwork(layers ...Layer) *Network {
	return &Network{
		layers: layers,
		inputs: make([][]float64, len(layers)),
	}
}

// Build initializes every layer, feeding each the width of the one before.
func (n *Network) Build(numInputs int) error {
	width := numInputs
	for i, l := range n.layers {
		if err := l.Initialize(width); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		width = l.Size()
	}
	return nil
}

// Layers returns the layers in forward order.
func (n *Network) Layers() []Layer {
	return n.layers
}

// Forward runs inputs through every layer and returns the last layer's output.
//
// Each layer's input is cached for the next Update. The first layer caches a
// copy, so the caller may reuse inputs right away. Any gradients from an
// earlier Backward are discarded, even when Forward fails.
func (n *Network) Forward(inputs []float64) ([]float64, error) {
	n.ready = false

	out := slices.Clone(inputs)
	for i, l := range n.layers {
		n.inputs[i] = out
		next, err := l.Activate(out)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// Backward computes gradients for every layer, last to first.
//
// It must follow a Forward call on the same sample.
func (n *Network) Backward(targets []float64, loss Loss) error {
	if len(n.layers) == 0 {
		return nil
	}

	last := len(n.layers) - 1
	if err := checkLen("Network.Backward", "targets", n.layers[last].Size(), len(targets)); err != nil {
		return err
	}

	if err := n.layers[last].CalculateGradients(OutputTargets{Values: targets, Loss: loss}); err != nil {
		return fmt.Errorf("layer %d: %w", last, err)
	}
	for i := last - 1; i >= 0; i-- {
		if err := n.layers[i].CalculateGradients(HiddenDownstream{Layer: n.layers[i+1]}); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}

	n.ready = true
	return nil
}

// Update applies opt to every layer using the inputs cached by Forward.
//
// Fails with ErrNoGradients unless Backward has run since the last Forward
// or Update.
func (n *Network) Update(learningRate float64, opt optim.Optimizer) error {
	if !n.ready {
		return ErrNoGradients
	}

	for i, l := range n.layers {
		if err := l.UpdateWeights(n.inputs[i], learningRate, opt, i); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}

	n.ready = false
	return nil
}

// TrainStep runs Forward, Backward and Update for one sample.
func (n *Network) TrainStep(inputs, targets []float64, loss Loss, learningRate float64, opt optim.Optimizer) error {
	if _, err := n.Forward(inputs); err != nil {
		return err
	}
	if err := n.Backward(targets, loss); err != nil {
		return err
	}
	return n.Update(learningRate, opt)
}

// Sample is one input vector with its target vector.
type Sample struct {
	Inputs  []float64
	Targets []float64
}

// TrainConfig holds configuration for Train.
type TrainConfig struct {
	Epochs       int             // Passes over the samples (default: 1)
	LearningRate float64         // Step size handed to the optimizer (default: 0.01)
	Loss         Loss            // Loss function (default: SquaredError)
	Optimizer    optim.Optimizer // Update rule (default: GradientDescent)
}

// TrainResult reports the mean loss of each epoch.
//
// The loss of a sample is measured on its forward pass, before that
// sample's update.
type TrainResult struct {
	EpochLoss []float64
}

// Final returns the mean loss of the last epoch, or 0 if none ran.
func (r TrainResult) Final() float64 {
	if len(r.EpochLoss) == 0 {
		return 0
	}
	return r.EpochLoss[len(r.EpochLoss)-1]
}

// Train runs per-sample training over samples in their given order.
func (n *Network) Train(samples []Sample, config TrainConfig) (TrainResult, error) {
	// Set defaults
	if config.Epochs == 0 {
		config.Epochs = 1
	}
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	if config.Loss == nil {
		config.Loss = NewSquaredError()
	}
	if config.Optimizer == nil {
		config.Optimizer = optim.NewGradientDescent()
	}

	result := TrainResult{EpochLoss: make([]float64, 0, config.Epochs)}
	for epoch := 0; epoch < config.Epochs; epoch++ {
		var total float64
		for i, s := range samples {
			out, err := n.Forward(s.Inputs)
			if err != nil {
				return result, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
			l, err := sampleLoss(out, s.Targets, config.Loss)
			if err != nil {
				return result, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
			total += l

			if err := n.Backward(s.Targets, config.Loss); err != nil {
				return result, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
			if err := n.Update(config.LearningRate, config.Optimizer); err != nil {
				return result, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
		}
		result.EpochLoss = append(result.EpochLoss, total/float64(max(len(samples), 1)))
	}

	return result, nil
}

// MeanLoss returns the mean per-sample loss without changing any weights.
func (n *Network) MeanLoss(samples []Sample, loss Loss) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	var total float64
	for i, s := range samples {
		out, err := n.Forward(s.Inputs)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		l, err := sampleLoss(out, s.Targets, loss)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		total += l
	}
	return total / float64(len(samples)), nil
}

// sampleLoss averages the loss over the output vector.
func sampleLoss(outputs, targets []float64, loss Loss) (float64, error) {
	if err := checkLen("Network", "targets", len(outputs), len(targets)); err != nil {
		return 0, err
	}
	per := make([]float64, len(outputs))
	for i := range outputs {
		per[i] = loss.Forward(outputs[i], targets[i])
	}
	return floats.Sum(per) / float64(len(per)), nil
}
