package wls

import (
	"errors"
)

var (
	ErrNoFit             = errors.New("no line could be fit to the samples")
	ErrSampleLenMismatch = errors.New("sample x, y and weights lengths differ")
)
