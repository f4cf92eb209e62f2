// Package density samples the Gaussian probability density over a fixed
// domain.
//
// The package is pure computation and holds no state between calls:
//
//   - [PDF]: density of N(mean, stdDev²) at a single point
//   - [ComputeSamples]: evenly spaced samples plus their maximum
//   - [Compute]: validated variant returning a [Curve]
//
// # Example
//
//	samples, maxY := density.ComputeSamples(0, 1, -4, 4, 200)
//	// len(samples) == 201, maxY ≈ 0.3989
//
// ComputeSamples does not validate its inputs. A non-positive standard
// deviation yields undefined values; use [Compute] when the parameters come
// from somewhere other than a clamped control.
package density
