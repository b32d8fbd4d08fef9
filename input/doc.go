// Package input turns raybox configuration and ray files into values the
// grid package can consume.
//
// Text configuration:
//
//	# comment lines and blank lines are skipped
//	5            first line: side length N
//	3 3          row col            (1-indexed, strength 0)
//	2 4 10       row col strength   (1-indexed)
//
// JSON configuration:
//
//	{"size": 5, "mirrors": [{"row": 3, "column": 3}, {"row": 2, "column": 4, "strength": 10}]}
//
// Ray file: one token per line, e.g. "C1+", "R3-" (see package ray).
//
// Every error names the source and line and wraps a sentinel, so callers can
// test with errors.Is against ErrEmptyConfig, ErrMalformedLine,
// grid.ErrInvalidSize, grid.ErrInvalidCoordinate, grid.ErrInvalidStrength,
// grid.ErrDuplicateMirror or the ray package errors.
package input
