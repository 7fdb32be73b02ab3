package linearmodel

import "fmt"

// Float is the set of floating point precisions a fit can be computed in
type Float interface {
	~float32 | ~float64
}

// Fit is the intercept and slope of a fitted line
type Fit[T Float] struct {
	intercept T
	slope     T
}

// NewFit returns a fitted line with the given intercept and slope. Used to restore a previously
// computed fit.
func NewFit[T Float](intercept, slope T) Fit[T] {
	return Fit[T]{intercept: intercept, slope: slope}
}

// Intercept returns the value of the fitted line at x = 0
func (f Fit[T]) Intercept() T {
	return f.intercept
}

// Slope returns the change in y per unit of x along the fitted line
func (f Fit[T]) Slope() T {
	return f.slope
}

// Predict evaluates the fitted line at x
func (f Fit[T]) Predict(x T) T {
	return f.intercept + f.slope*x
}

func (f Fit[T]) String() string {
	return fmt.Sprintf("intercept: %v, slope: %v", f.intercept, f.slope)
}
