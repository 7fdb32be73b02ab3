package linearmodel

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomSamples generates a noisy line y = 2.5 + 0.7x with distinct x values
func randomSamples(r *rand.Rand, n int) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = float64(i) + r.Float64()
		y[i] = 2.5 + 0.7*x[i] + r.NormFloat64()
	}
	return x, y
}

func TestOnes(t *testing.T) {
	assert.Equal(t, []float32{1, 1, 1}, ones[float32](3))
	assert.Equal(t, []float64{}, ones[float64](0))
}

func TestCopySlice(t *testing.T) {
	s := []float64{1, 2}
	c := copySlice(s)
	c[0] = 5
	assert.Equal(t, []float64{1, 2}, s)
}
