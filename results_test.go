package wls

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-wls/linearmodel"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSamples(t *testing.T) {
	testData := map[string]struct {
		samples  Samples
		opt      *linearmodel.WLSOptions
		err      error
		expected *Results
	}{
		"unweighted": {
			samples: Samples{
				X: []float64{1, 2, 3, 4},
				Y: []float64{3, 5, 7, 9},
			},
			expected: &Results{Samples: 4, Fitted: true, Intercept: 1, Slope: 2},
		},
		"weighted": {
			samples: Samples{
				X:       []float64{1, 2, 3, 4},
				Y:       []float64{3, 5, 7, 100},
				Weights: []float64{1, 1, 1, 0},
			},
			expected: &Results{Samples: 4, Fitted: true, Intercept: 1, Slope: 2},
		},
		"degenerate": {
			samples: Samples{
				X: []float64{2, 2, 2},
				Y: []float64{1, 2, 3},
			},
			expected: &Results{Samples: 3},
		},
		"two samples": {
			samples: Samples{
				X: []float64{0, 1},
				Y: []float64{0, 1},
			},
			opt:      &linearmodel.WLSOptions{MinSamples: 2},
			expected: &Results{Samples: 2, Fitted: true, Intercept: 0, Slope: 1},
		},
		"length mismatch": {
			samples: Samples{
				X: []float64{1, 2, 3},
				Y: []float64{1, 2},
			},
			err: linearmodel.ErrTargetLenMismatch,
		},
		"too few samples": {
			samples: Samples{
				X: []float64{0, 1},
				Y: []float64{0, 1},
			},
			err: linearmodel.ErrInsufficientSamples,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := FitSamples(td.samples, td.opt)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestResultsFit(t *testing.T) {
	var nilRes *Results
	_, ok := nilRes.Fit()
	assert.False(t, ok)

	_, ok = (&Results{Samples: 3}).Fit()
	assert.False(t, ok)

	fit, ok := (&Results{Samples: 3, Fitted: true, Intercept: 1, Slope: 2}).Fit()
	require.True(t, ok)
	assert.Equal(t, linearmodel.NewFit(1.0, 2.0), fit)
}

func TestResultsWriteJSON(t *testing.T) {
	res := &Results{Samples: 7, Fitted: true, Intercept: 2.5, Slope: -0.25}

	var buf bytes.Buffer
	require.Nil(t, res.WriteJSON(&buf))
	assert.JSONEq(t, `{"samples":7,"fitted":true,"intercept":2.5,"slope":-0.25}`, buf.String())

	var next Results
	require.NoError(t, json.Unmarshal(buf.Bytes(), &next))
	assert.Equal(t, *res, next)
}
