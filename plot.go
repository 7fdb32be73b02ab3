// Package wls fits weighted least squares lines to paired samples and renders the results
package wls

import (
	"io"

	"github.com/aouyang1/go-wls/linearmodel"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// LineFit generates an echart line chart of the observed samples and the fitted line evaluated at
// each sample, ordered by x.
func LineFit(title string, s Samples, fit linearmodel.Fit[float64]) (*charts.Line, error) {
	if len(s.X) != len(s.Y) || (s.Weights != nil && len(s.Weights) != len(s.X)) {
		return nil, ErrSampleLenMismatch
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: "x",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: "y",
			},
		),
	)

	xs := make([]float64, len(s.X))
	copy(xs, s.X)
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)

	lineDataActual := make([]opts.LineData, 0, len(xs))
	lineDataFit := make([]opts.LineData, 0, len(xs))
	for i, idx := range inds {
		lineDataActual = append(lineDataActual, opts.LineData{Value: s.Y[idx]})
		lineDataFit = append(lineDataFit, opts.LineData{Value: fit.Predict(xs[i])})
	}

	line.SetXAxis(xs).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fit", lineDataFit)
	return line, nil
}

// LineWeights generates an echart line chart of the weight applied to each sample ordered by x
func LineWeights(s Samples) (*charts.Line, error) {
	m, err := linearmodel.NewWLSRegression(s.X, s.Y, s.Weights, &linearmodel.WLSOptions{MinSamples: 2})
	if err != nil {
		return nil, err
	}

	xs := m.X()
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)

	weights := m.Weights()
	lineData := make([]opts.LineData, 0, len(xs))
	for _, idx := range inds {
		lineData = append(lineData, opts.LineData{Value: weights[idx]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Sample Weights",
			},
		),
	)
	line.SetXAxis(xs).AddSeries("Weight", lineData)
	return line, nil
}

// PlotFit renders an html page with the fitted line over the samples and the sample weights
func PlotFit(w io.Writer, s Samples, res *Results) error {
	fit, ok := res.Fit()
	if !ok {
		return ErrNoFit
	}

	fitLine, err := LineFit("Weighted Least Squares Fit", s, fit)
	if err != nil {
		return err
	}
	weightLine, err := LineWeights(s)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(fitLine, weightLine)
	return page.Render(w)
}
