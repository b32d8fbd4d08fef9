// Package ray defines the moving point that travels through a raybox grid.
//
// What:
//
//   - Direction enumerates the four axis-aligned travel directions.
//   - Ray is a plain value: current row, column (0-indexed) and Direction.
//   - Enter and Parse build a Ray from an entry edge, a 1-indexed offset
//     and a sign, either from typed arguments or from a token like "C1+".
//
// Entry tokens:
//
//   - C<n>+  enters column n at the top edge, travelling TopToBottom.
//   - C<n>-  enters column n at the bottom edge, travelling BottomToTop.
//   - R<n>+  enters row n at the left edge, travelling LeftToRight.
//   - R<n>-  enters row n at the right edge, travelling RightToLeft.
//
// Errors:
//
//   - ErrInvalidEdge: edge letter is neither 'C' nor 'R'.
//   - ErrInvalidDirectionToken: token is malformed or its sign is not '+'/'-'.
//   - ErrInvalidCoordinate: offset is outside [1, size].
package ray
