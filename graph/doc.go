// Package graph renders real functions as character-cell line plots.
//
// Two coordinate spaces are used throughout:
//   - Terminal space: (0, 0) is the top-left cell, +x right, +y down
//   - Graph space: (0, 0) is the screen center shifted by the viewport offset, +x right, +y up
//
// A Canvas owns an ordered list of Drawable layers and a Viewport. Each frame it
// lets every layer prepare, then asks the layers front to back which rune occupies
// each cell. The package performs no terminal I/O; Render produces a Frame that a
// caller writes to whatever surface it owns.
package graph
