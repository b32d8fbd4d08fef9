package grid

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/raybox/mirror"
)

// New constructs an empty size×size Grid.
// Returns ErrInvalidSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	g := &Grid{
		size:     size,
		cells:    make([]mirror.Mirror, size*size),
		occupied: make([]bool, size*size),
		logger:   slog.Default().With(slog.String("component", "grid")),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of occupied cells, explicit and derived.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.count
}

// Indexed reports whether BuildIndex has run.
func (g *Grid) Indexed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexed
}

// InBounds reports whether (row,col) lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// index maps (row,col) to a row-major arena slot.
func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

// Coordinate converts an arena slot back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.size, idx % g.size
}

// Mirror returns a copy of the mirror at (row,col) and whether the cell is occupied.
func (g *Grid) Mirror(row, col int) (mirror.Mirror, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.InBounds(row, col) {
		return mirror.Mirror{}, false
	}
	i := g.index(row, col)

	return g.cells[i], g.occupied[i]
}

// Mirrors returns copies of all mirrors in row-major order.
func (g *Grid) Mirrors() []mirror.Mirror {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]mirror.Mirror, 0, g.count)
	for i, ok := range g.occupied {
		if ok {
			out = append(out, g.cells[i])
		}
	}

	return out
}

// Dump writes one "row,col,strength,angle" line (0-indexed) per occupied
// cell in row-major order.
func (g *Grid) Dump(w io.Writer) error {
	for _, m := range g.Mirrors() {
		if _, err := fmt.Fprintln(w, m.String()); err != nil {
			return err
		}
	}

	return nil
}
