package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXavier(t *testing.T) {
	ini := Xavier(rand.New(rand.NewSource(3)))
	w := ini.Init(4, 0)

	require.Len(t, w, 5)
	assert.Zero(t, w[0], "bias starts at zero")

	bound := math.Sqrt(6.0 / 5.0)
	for _, v := range w[1:] {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}

func TestXavier_Seeded(t *testing.T) {
	a := Xavier(rand.New(rand.NewSource(11))).Init(3, 0)
	b := Xavier(rand.New(rand.NewSource(11))).Init(3, 0)
	assert.Equal(t, a, b)
}

func TestUniform(t *testing.T) {
	w := Uniform(rand.New(rand.NewSource(5)), 0.1).Init(10, 0)
	require.Len(t, w, 11)
	for _, v := range w {
		assert.LessOrEqual(t, math.Abs(v), 0.1)
	}
}

func TestConstant(t *testing.T) {
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, Constant(0.25).Init(2, 9))
}

func TestFixed(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	ini := Fixed(rows)

	assert.Equal(t, []float64{3, 4}, ini.Init(1, 1))

	// Rows are copied.
	w := ini.Init(1, 0)
	w[0] = 100
	assert.Equal(t, 1.0, rows[0][0])

	assert.Panics(t, func() { ini.Init(1, 2) })
	assert.Panics(t, func() { ini.Init(3, 0) })
}
