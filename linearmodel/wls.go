// Package linearmodel computes a single predictor weighted least squares line fit
package linearmodel

// DefaultMinSamples is the fewest samples accepted by default options
const DefaultMinSamples = 3

// WLSOptions represents input options to construct a WLS Regression
type WLSOptions struct {
	// MinSamples is the fewest number of samples accepted at construction. Must be at least 2.
	MinSamples int
}

// Validate runs basic validation on WLS options
func (o *WLSOptions) Validate() (*WLSOptions, error) {
	if o == nil {
		o = NewDefaultWLSOptions()
	}
	if o.MinSamples < 2 {
		return nil, ErrMinSamplesTooLow
	}

	return o, nil
}

// NewDefaultWLSOptions returns a default set of WLS Regression options
func NewDefaultWLSOptions() *WLSOptions {
	return &WLSOptions{
		MinSamples: DefaultMinSamples,
	}
}

// WLSRegression computes a weighted least squares line through paired x and y samples using the
// closed form solution for a single predictor
type WLSRegression[T Float] struct {
	opt     *WLSOptions
	x       []T
	y       []T
	weights []T
}

// NewWLSRegression validates the samples and returns a regression ready for fitting. A nil weights
// slice weights every sample with 1.0, which reduces to ordinary least squares. Weights are not
// checked for sign; a zero weight removes the sample from the fit. Input slices are copied.
func NewWLSRegression[T Float](x, y, weights []T, opt *WLSOptions) (*WLSRegression[T], error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	if err := validateSameLen(len(x), len(y)); err != nil {
		return nil, err
	}
	if err := validateWeightsLen(len(x), len(weights), weights != nil); err != nil {
		return nil, err
	}
	if err := validateMinSamples(len(x), opt.MinSamples); err != nil {
		return nil, err
	}

	w := ones[T](len(x))
	if weights != nil {
		copy(w, weights)
	}

	return &WLSRegression[T]{
		opt:     opt,
		x:       copySlice(x),
		y:       copySlice(y),
		weights: w,
	}, nil
}

// MustNewWLSRegression is like NewWLSRegression but panics on invalid input
func MustNewWLSRegression[T Float](x, y, weights []T, opt *WLSOptions) *WLSRegression[T] {
	w, err := NewWLSRegression(x, y, weights, opt)
	if err != nil {
		panic(err)
	}
	return w
}

// Fit computes the intercept and slope minimizing the weighted squared residuals. Returns false if
// no unique line exists, e.g. every x is identical.
func (w *WLSRegression[T]) Fit() (Fit[T], bool) {
	var sumW, sumWX, sumWXY, sumWY, sumWXX T
	for i, xi := range w.x {
		wi := w.weights[i]
		yi := w.y[i]

		wx := xi * wi
		sumW += wi
		sumWX += wx
		sumWXY += wx * yi
		sumWY += yi * wi
		sumWXX += wx * xi
	}

	dividend := sumW*sumWXY - sumWX*sumWY
	divisor := sumW*sumWXX - sumWX*sumWX
	if divisor == 0 {
		return Fit[T]{}, false
	}

	slope := dividend / divisor
	intercept := (sumWY - slope*sumWX) / sumW
	return NewFit(intercept, slope), true
}

// MinSamples returns the fewest number of samples this regression was configured to accept
func (w *WLSRegression[T]) MinSamples() int {
	return w.opt.MinSamples
}

// Len returns the number of samples
func (w *WLSRegression[T]) Len() int {
	return len(w.x)
}

// X returns a copy of the training samples
func (w *WLSRegression[T]) X() []T {
	return copySlice(w.x)
}

// Y returns a copy of the target samples
func (w *WLSRegression[T]) Y() []T {
	return copySlice(w.y)
}

// Weights returns a copy of the sample weights, including materialized uniform weights
func (w *WLSRegression[T]) Weights() []T {
	return copySlice(w.weights)
}

// FitLinear constructs a regression with default options and fits it
func FitLinear[T Float](x, y, weights []T) (Fit[T], bool, error) {
	w, err := NewWLSRegression(x, y, weights, nil)
	if err != nil {
		return Fit[T]{}, false, err
	}
	fit, ok := w.Fit()
	return fit, ok, nil
}
