// Package viz is the terminal front end for the density curve.
//
// [App] is a Bubble Tea model that subscribes to a [view.View] and redraws a
// braille [Canvas] on every frame:
//
//   - two sliders for μ and σ with the same range and step as the SVG controls
//   - readouts formatted to one decimal place
//   - a metrics panel (area, mass, FWHM) for the current curve
//
// # Key Bindings
//
//	Tab/j/k  - Select slider
//	h/l      - Decrease/increase by one step (H/L: five steps)
//	f        - Toggle area shading
//	r        - Reset to μ = 0, σ = 1
//	t        - Cycle color themes
//	e        - Export the current frame as SVG
//	?        - Show help overlay
package viz
