// Package server exposes the density curve over HTTP.
//
// Every request builds its own view from the query parameters, so the
// handler keeps no state between requests:
//
//	GET /curve.svg?mean=0.5&sigma=1.2&theme=dark
//	GET /curve.json?mean=0.5&sigma=1.2
//	GET /curve.csv?mean=0.5&sigma=1.2
//	GET /metrics
//
// Query values go through the same parsing as the interactive controls: an
// unparseable sigma becomes 0.5 and out-of-range values are clamped.
package server
