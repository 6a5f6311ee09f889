// Package terminal adapts a tcell screen to the cell-buffer interface used by the render pipeline.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Row-major cell flush with per-cell style conversion
//   - Key, resize and synthetic interrupt events
//   - Clean terminal restoration on exit
package terminal
