// Package metrics summarises a sampled density curve.
//
// Metrics follow an observe/value/reset lifecycle so they can be fed one
// sample at a time by any loop that walks the curve:
//
//   - [Area]: trapezoidal integral of the samples
//   - [Peak]: x position of the highest sample
//   - [FWHM]: full width at half maximum
//   - [Mass], [MassError]: exact probability mass in the domain and the
//     trapezoidal rule's distance from it
package metrics
