// Package grid is the raybox simulation engine: an N×N board of mirrors, the
// row/column index that answers "which mirror does this ray reach next", and
// the traversal loop that drives a ray until it leaves the board or is absorbed.
//
// What:
//
//   - Grid owns every mirror in a dense row-major arena (row*N+col).
//   - Place inserts an explicit mirror and derives the four diagonal corner
//     deflectors: -90° on the two cells above it, +90° on the two cells below.
//     Contributions landing on an occupied cell are summed into its angle.
//   - BuildIndex freezes placement and builds the derived views: per-row sorted
//     column keys and per-column sorted row keys into the arena.
//   - NextMirrorAhead returns the nearest mirror at or ahead of a ray.
//   - Propagate runs one traversal and returns a single Observation.
//   - Remove clears a cell from the arena and both views at once.
//
// Lifecycle:
//
//	g, _ := grid.New(n)
//	_ = g.Place(mirror.New(r, c, strength)) // repeated
//	g.BuildIndex()
//	obs, _ := g.Propagate(ray)              // repeated; barriers may evaporate
//
// Reported coordinates:
//
//   - Hit / Evaporated: 1-indexed mirror cell.
//   - Exit towards increasing indices: the far boundary is reported as N.
//   - Exit towards decreasing indices: the near boundary is reported as 0.
//
// Complexity:
//
//   - Place:           O(1).
//   - BuildIndex:      O(N² + M), Memory O(N² + M) (M = mirrors).
//   - NextMirrorAhead: O(log M_line) by binary search on the line's keys.
//   - Remove:          O(M_line).
//   - Propagate:       O(S · log M_line), S ≤ 4M deflections before ErrCycleDetected.
//
// Concurrency:
//
//	All methods lock the Grid. A traversal holds the lock from entry to its
//	terminal observation, so concurrent Propagate calls are serialized and an
//	evaporation is never observed half-applied.
//
// Errors:
//
//   - ErrInvalidSize: side length below 1.
//   - ErrInvalidCoordinate: cell or ray start outside the board.
//   - ErrInvalidStrength: negative strength.
//   - ErrDuplicateMirror: second explicit placement on the same cell.
//   - ErrIndexFrozen: Place after BuildIndex.
//   - ErrIndexNotBuilt: Propagate before BuildIndex.
//   - ErrCycleDetected: traversal exceeded its step limit.
//   - mirror.ErrInvalidDeflectionState (wrapped): a mirror without a collision rule.
package grid
