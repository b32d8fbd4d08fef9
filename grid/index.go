package grid

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/katalvlaran/raybox/mirror"
	"github.com/katalvlaran/raybox/ray"
)

// BuildIndex freezes placement and builds the per-row and per-column key
// lists from the arena. Keys come out ascending because the arena is walked
// in row-major order.
// Complexity: O(N² + M).
func (g *Grid) BuildIndex() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rows = make([][]int, g.size)
	g.cols = make([][]int, g.size)
	for i, ok := range g.occupied {
		if !ok {
			continue
		}
		r, c := g.Coordinate(i)
		g.rows[r] = append(g.rows[r], c)
		g.cols[c] = append(g.cols[c], r)
	}
	g.indexed = true
}

// NextMirrorAhead returns the nearest mirror at or ahead of r along its
// direction of travel. A mirror on r's own cell counts as ahead.
// Returns false when the ray would leave the board, or before BuildIndex.
func (g *Grid) NextMirrorAhead(r ray.Ray) (mirror.Mirror, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.indexed {
		return mirror.Mirror{}, false
	}
	i, ok := g.nextAhead(r)
	if !ok {
		return mirror.Mirror{}, false
	}

	return g.cells[i], true
}

// nextAhead resolves the arena slot of the next mirror. Caller holds the lock.
func (g *Grid) nextAhead(r ray.Ray) (int, bool) {
	if r.Direction.Horizontal() {
		if r.Row < 0 || r.Row >= g.size {
			return 0, false
		}
		c, ok := seek(g.rows[r.Row], r.Column, r.Direction.Forward())
		if !ok {
			return 0, false
		}
		return g.index(r.Row, c), true
	}

	if r.Column < 0 || r.Column >= g.size {
		return 0, false
	}
	row, ok := seek(g.cols[r.Column], r.Row, r.Direction.Forward())
	if !ok {
		return 0, false
	}

	return g.index(row, r.Column), true
}

// seek finds the first key >= pos (forward) or the last key <= pos (backward)
// in an ascending key list.
func seek(keys []int, pos int, forward bool) (int, bool) {
	if forward {
		i := sort.SearchInts(keys, pos)
		if i == len(keys) {
			return 0, false
		}
		return keys[i], true
	}
	i := sort.SearchInts(keys, pos+1) - 1
	if i < 0 {
		return 0, false
	}

	return keys[i], true
}

// Remove clears (row,col) from the arena and, once indexed, from both key
// lists. Removing an empty or out-of-range cell is a no-op.
func (g *Grid) Remove(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.remove(row, col)
}

// remove is Remove without locking.
func (g *Grid) remove(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	i := g.index(row, col)
	if !g.occupied[i] {
		return
	}
	g.cells[i] = mirror.Mirror{}
	g.occupied[i] = false
	g.count--

	if !g.indexed {
		return
	}
	g.rows[row] = dropKey(g.rows[row], col)
	g.cols[col] = dropKey(g.cols[col], row)
	g.logger.Debug("mirror removed", slog.Int("row", row), slog.Int("column", col))
}

// dropKey deletes key from an ascending list, if present.
func dropKey(keys []int, key int) []int {
	if i, found := slices.BinarySearch(keys, key); found {
		return slices.Delete(keys, i, i+1)
	}

	return keys
}
