// Package viz renders the running simulation in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [Model]: the live view, with oscillators on the unit circle, the
//     mean-field vector, and the resonance trend chart
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset with a fresh random draw
//	Tab   - Cycle parameters
//	↑/↓   - Adjust the selected parameter
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
