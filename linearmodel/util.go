package linearmodel

import "fmt"

func validateSameLen(xLen, yLen int) error {
	if xLen != yLen {
		return fmt.Errorf("training data has %d samples and target has %d samples, %w", xLen, yLen, ErrTargetLenMismatch)
	}
	return nil
}

// validateWeightsLen accepts a nil weights slice, which is later expanded to uniform weights
func validateWeightsLen(xLen, wLen int, hasWeights bool) error {
	if hasWeights && xLen != wLen {
		return fmt.Errorf("training data has %d samples and weights has %d samples, %w", xLen, wLen, ErrWeightsLenMismatch)
	}
	return nil
}

func validateMinSamples(xLen, minSamples int) error {
	if xLen < minSamples {
		return fmt.Errorf("got %d samples but need at least %d, %w", xLen, minSamples, ErrInsufficientSamples)
	}
	return nil
}

func ones[T Float](n int) []T {
	w := make([]T, n)
	for i := range w {
		w[i] = 1.0
	}
	return w
}

func copySlice[T Float](s []T) []T {
	c := make([]T, len(s))
	copy(c, s)
	return c
}
