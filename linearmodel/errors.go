package linearmodel

import (
	"errors"
)

var (
	ErrTargetLenMismatch   = errors.New("target length does not match training length")
	ErrWeightsLenMismatch  = errors.New("weights length does not match training length")
	ErrInsufficientSamples = errors.New("not enough samples to fit a line")
	ErrMinSamplesTooLow    = errors.New("minimum samples must be at least 2")
)
