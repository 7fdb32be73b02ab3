package wls

import (
	"io"

	"github.com/aouyang1/go-wls/linearmodel"
	"github.com/goccy/go-json"
)

// Samples are index aligned x and y values with optional per sample weights
type Samples struct {
	X       []float64 `json:"x" yaml:"x"`
	Y       []float64 `json:"y" yaml:"y"`
	Weights []float64 `json:"weights,omitempty" yaml:"weights"`
}

// Results is the outcome of fitting a set of samples. Intercept and Slope are zero when Fitted is
// false.
type Results struct {
	Samples   int     `json:"samples"`
	Fitted    bool    `json:"fitted"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// Fit returns the fitted line and whether one exists
func (r *Results) Fit() (linearmodel.Fit[float64], bool) {
	if r == nil || !r.Fitted {
		return linearmodel.Fit[float64]{}, false
	}
	return linearmodel.NewFit(r.Intercept, r.Slope), true
}

// WriteJSON encodes the results as indented json
func (r *Results) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FitSamples fits a weighted least squares line through the samples. A degenerate fit is not an
// error and is reported through Results.Fitted.
func FitSamples(s Samples, opt *linearmodel.WLSOptions) (*Results, error) {
	model, err := linearmodel.NewWLSRegression(s.X, s.Y, s.Weights, opt)
	if err != nil {
		return nil, err
	}

	res := &Results{
		Samples: model.Len(),
	}
	if fit, ok := model.Fit(); ok {
		res.Fitted = true
		res.Intercept = fit.Intercept()
		res.Slope = fit.Slope()
	}
	return res, nil
}
