// Package view owns the two curve parameters and derives a render frame
// from them.
//
// A [View] is the reactive core between the controls and any presentation
// adapter:
//
//   - setters ([View.SetMean], [View.SetStdDevInput], [View.Step]) replace a
//     parameter and synchronously rebuild the [Frame]
//   - [Observer] implementations receive every new frame
//
// The frame is plain data (points, path strings, lines, labels), so the SVG
// writer, the terminal UI and the HTTP handler all render from the same
// derivation.
//
// # Thread Safety
//
// View instances are NOT thread-safe. Create one per UI session or request.
package view
