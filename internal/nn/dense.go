package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/backprop/internal/optim"
	"github.com/born-ml/backprop/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

// Dense is a fully connected layer of independent neurons.
//
// Every neuron sees the whole input vector and all neurons share one
// activation. Output i is produced by neuron i, and downstream layers index
// their per-input weights by that same position.
//
// A Dense layer is created without neurons. Initialize builds them once the
// input width is known, which lets a network be described layer by layer:
//
//	hidden := nn.NewDense(2, nn.NewSigmoid(), nn.DenseConfig{})
//	if err := hidden.Initialize(2); err != nil {
//	    return err
//	}
//	out, err := hidden.Activate([]float64{0, 1})
type Dense struct {
	numNeurons  int
	activation  Activation
	initializer Initializer
	parallel    parallel.Config
	neurons     []*Neuron
}

// DenseConfig holds configuration for a Dense layer.
type DenseConfig struct {
	Init     Initializer     // Weight initializer (default: Xavier with the global source)
	Parallel parallel.Config // Per-neuron parallelism for Activate/UpdateWeights (default: sequential)
}

// NewDense creates a Dense layer of numNeurons neurons.
//
// The layer holds no neurons until Initialize is called.
func NewDense(numNeurons int, activation Activation, config DenseConfig) *Dense {
	if config.Init == nil {
		config.Init = Xavier(nil)
	}

	return &Dense{
		numNeurons:  numNeurons,
		activation:  activation,
		initializer: config.Init,
		parallel:    config.Parallel,
	}
}

// Initialize builds numNeurons fresh neurons with numInputs inputs each.
func (d *Dense) Initialize(numInputs int) error {
	if d.neurons != nil {
		return ErrAlreadyInitialized
	}
	if d.numNeurons <= 0 {
		return fmt.Errorf("Dense.Initialize: %w: numNeurons must be positive, got %d", ErrShapeMismatch, d.numNeurons)
	}
	if numInputs <= 0 {
		return fmt.Errorf("Dense.Initialize: %w: numInputs must be positive, got %d", ErrShapeMismatch, numInputs)
	}

	neurons := make([]*Neuron, d.numNeurons)
	for i := range neurons {
		neurons[i] = NewNeuron(numInputs, i, d.activation, d.initializer)
	}
	d.neurons = neurons

	return nil
}

// Activate returns [neuron_0(inputs), ..., neuron_n(inputs)].
func (d *Dense) Activate(inputs []float64) ([]float64, error) {
	if err := d.checkInputs("Dense.Activate", inputs); err != nil {
		return nil, err
	}

	outputs := make([]float64, len(d.neurons))
	errs := make([]error, len(d.neurons))
	parallel.For(len(d.neurons), func(i int) {
		outputs[i], errs[i] = d.neurons[i].Activate(inputs)
	}, d.parallel)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return outputs, nil
}

// CalculateGradients computes every neuron's delta.
//
// With OutputTargets, neuron i uses Values[i]. With HiddenDownstream,
// neuron i combines the downstream deltas with the downstream weights
// applied to output i.
func (d *Dense) CalculateGradients(src GradientSource) error {
	if len(d.neurons) == 0 {
		return ErrNotInitialized
	}

	switch s := src.(type) {
	case OutputTargets:
		if err := checkLen("Dense.CalculateGradients", "targets", len(d.neurons), len(s.Values)); err != nil {
			return err
		}
		for i, n := range d.neurons {
			if err := n.CalculateGradient(OutputSignal{Target: s.Values[i], Loss: s.Loss}); err != nil {
				return fmt.Errorf("neuron %d: %w", i, err)
			}
		}
	case HiddenDownstream:
		if s.Layer == nil {
			return ErrInvalidSignal
		}
		gradients := s.Layer.Gradients()
		for i, n := range d.neurons {
			weights, err := s.Layer.WeightsInto(i)
			if err != nil {
				return fmt.Errorf("neuron %d: %w", i, err)
			}
			if err := n.CalculateGradient(HiddenSignal{Gradients: gradients, Weights: weights}); err != nil {
				return fmt.Errorf("neuron %d: %w", i, err)
			}
		}
	default:
		return ErrInvalidSignal
	}

	return nil
}

// UpdateWeights updates every neuron with the same forward-pass inputs.
//
// Neuron i is addressed as (layerIndex, i, j) in the optimizer.
func (d *Dense) UpdateWeights(inputs []float64, learningRate float64, opt optim.Optimizer, layerIndex int) error {
	if err := d.checkInputs("Dense.UpdateWeights", inputs); err != nil {
		return err
	}

	// Optimizer state lives in plain maps; only known-stateless optimizers
	// may be stepped from several goroutines.
	cfg := d.parallel
	if !optim.IsStateless(opt) {
		cfg.Enabled = false
	}

	errs := make([]error, len(d.neurons))
	parallel.For(len(d.neurons), func(i int) {
		errs[i] = d.neurons[i].UpdateWeights(inputs, learningRate, opt, layerIndex, i)
	}, cfg)

	return errors.Join(errs...)
}

// Gradients returns the cached delta of every neuron.
func (d *Dense) Gradients() []float64 {
	g := make([]float64, len(d.neurons))
	for i, n := range d.neurons {
		g[i] = n.Gradient()
	}
	return g
}

// WeightsInto returns the weight every neuron applies to upstream output i.
func (d *Dense) WeightsInto(i int) ([]float64, error) {
	if len(d.neurons) == 0 {
		return nil, ErrNotInitialized
	}
	if i < 0 || i >= d.neurons[0].NumInputs() {
		return nil, fmt.Errorf("Dense.WeightsInto: %w: upstream index %d out of range [0, %d)",
			ErrShapeMismatch, i, d.neurons[0].NumInputs())
	}

	w := make([]float64, len(d.neurons))
	for k, n := range d.neurons {
		w[k] = n.Weight(i + 1)
	}
	return w, nil
}

// Size returns the number of neurons.
func (d *Dense) Size() int {
	return d.numNeurons
}

// Neurons returns the layer's neurons in output order.
//
// The slice is the layer's own; callers must not reorder it.
func (d *Dense) Neurons() []*Neuron {
	return d.neurons
}

// Activation returns the activation shared by all neurons.
func (d *Dense) Activation() Activation {
	return d.activation
}

// WeightMatrix returns a snapshot of all weights as a numNeurons × (numInputs+1)
// matrix. Column 0 holds the biases.
//
// Returns nil before Initialize.
func (d *Dense) WeightMatrix() *mat.Dense {
	if len(d.neurons) == 0 {
		return nil
	}

	cols := d.neurons[0].NumInputs() + 1
	data := make([]float64, 0, len(d.neurons)*cols)
	for _, n := range d.neurons {
		data = append(data, n.weights...)
	}
	return mat.NewDense(len(d.neurons), cols, data)
}

func (d *Dense) checkInputs(op string, inputs []float64) error {
	if len(d.neurons) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotInitialized)
	}
	return checkLen(op, "inputs", d.neurons[0].NumInputs(), len(inputs))
}
