package grid

import (
	"fmt"

	"github.com/katalvlaran/raybox/mirror"
)

// corner is a diagonal neighbour offset and the angle it receives.
type corner struct {
	dRow, dCol int
	angle      int
}

// corners lists the four diagonal neighbours of a placed mirror.
var corners = [4]corner{
	{-1, -1, mirror.CornerContribAbove},
	{-1, +1, mirror.CornerContribAbove},
	{+1, -1, mirror.CornerContribBelow},
	{+1, +1, mirror.CornerContribBelow},
}

// Place inserts m as an explicit mirror and derives its corner deflectors.
//
// Behavior:
//  1. Validate coordinates and strength; refuse once the index is built.
//  2. If the cell holds an explicit mirror, fail with ErrDuplicateMirror.
//     If it holds a derived deflector, m takes over the cell and its angle
//     is added to the accumulated one.
//  3. For each in-bounds diagonal neighbour, create a deflector carrying the
//     contribution (and m's strength), or add the contribution to the angle
//     of whatever already occupies it.
//
// Complexity: O(1).
func (g *Grid) Place(m mirror.Mirror) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.indexed {
		return ErrIndexFrozen
	}
	if !g.InBounds(m.Row, m.Column) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrInvalidCoordinate, m.Row, m.Column, g.size, g.size)
	}
	if m.Strength < 0 {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidStrength, m.Strength, m.Row, m.Column)
	}

	i := g.index(m.Row, m.Column)
	m.Explicit = true
	if g.occupied[i] {
		if g.cells[i].Explicit {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateMirror, m.Row, m.Column)
		}
		m.Angle += g.cells[i].Angle
		g.cells[i] = m
	} else {
		g.put(i, m)
	}

	for _, c := range corners {
		r, col := m.Row+c.dRow, m.Column+c.dCol
		if !g.InBounds(r, col) {
			continue
		}
		j := g.index(r, col)
		if g.occupied[j] {
			g.cells[j].Angle += c.angle
			continue
		}
		g.put(j, mirror.Mirror{Row: r, Column: col, Strength: m.Strength, Angle: c.angle})
	}

	return nil
}

// put stores m in an empty slot.
func (g *Grid) put(i int, m mirror.Mirror) {
	g.cells[i] = m
	g.occupied[i] = true
	g.count++
}
