package density

import "github.com/pkg/errors"

var (
	// ErrInvalidStdDev indicates a standard deviation that is not finite and positive.
	ErrInvalidStdDev = errors.New("density: standard deviation must be finite and > 0")

	// ErrInvalidMean indicates a NaN or infinite mean.
	ErrInvalidMean = errors.New("density: mean must be finite")

	// ErrInvalidDomain indicates domain bounds with min >= max or non-finite ends.
	ErrInvalidDomain = errors.New("density: domain min must be below domain max")

	// ErrInvalidSampleCount indicates a sample count below one.
	ErrInvalidSampleCount = errors.New("density: sample count must be >= 1")

	// ErrDegenerateDensity indicates a curve whose maximum is zero or non-finite.
	ErrDegenerateDensity = errors.New("density: maximum density is zero or non-finite")
)
