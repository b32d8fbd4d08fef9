package mirror

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/raybox/ray"
)

// ErrInvalidDeflectionState indicates a mirror whose angle or strength has
// no collision rule. It is never coerced to a default outcome.
var ErrInvalidDeflectionState = errors.New("mirror: invalid deflection state")

// Angles with a defined collision rule.
const (
	AngleBarrier       = 0
	AngleQuarterNeg    = -90
	AngleQuarterPos    = 90
	AngleHalfNeg       = -180
	AngleHalfPos       = 180
	CornerContribAbove = AngleQuarterNeg // cells diagonally above a placed mirror
	CornerContribBelow = AngleQuarterPos // cells diagonally below a placed mirror
)

// Outcome is the result of a collision.
type Outcome int

const (
	// Deflected means the ray was turned and continues its traversal.
	Deflected Outcome = iota
	// Hit means the ray was absorbed; the mirror remains.
	Hit
	// Evaporated means the ray was absorbed and the mirror is exhausted.
	Evaporated
)

// String returns the Outcome name.
func (o Outcome) String() string {
	switch o {
	case Deflected:
		return "Deflected"
	case Hit:
		return "Hit"
	case Evaporated:
		return "Evaporated"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Mirror is the content of one occupied cell.
//
// Row and Column are 0-indexed. Explicit marks a user placement as opposed to
// a corner deflector derived from a diagonal neighbour.
type Mirror struct {
	Row      int
	Column   int
	Strength int
	Angle    int
	Explicit bool
}

// New returns an explicit barrier at (row, column) with the given strength.
func New(row, column, strength int) Mirror {
	return Mirror{Row: row, Column: column, Strength: strength, Explicit: true}
}

// IsBarrier reports whether m absorbs rays.
func (m Mirror) IsBarrier() bool { return m.Angle == AngleBarrier }

// Permanent reports whether m is a barrier that never evaporates.
func (m Mirror) Permanent() bool { return m.IsBarrier() && m.Strength == 0 }

// String formats m the way Grid.Dump prints it: row,col,strength,angle.
func (m Mirror) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", m.Row, m.Column, m.Strength, m.Angle)
}

// Per-direction turn tables, indexed by incoming ray.Direction.
var (
	turnNeg90 = [...]ray.Direction{
		ray.LeftToRight: ray.BottomToTop,
		ray.RightToLeft: ray.BottomToTop,
		ray.BottomToTop: ray.LeftToRight,
		ray.TopToBottom: ray.LeftToRight,
	}
	turnPos90 = [...]ray.Direction{
		ray.LeftToRight: ray.TopToBottom,
		ray.RightToLeft: ray.TopToBottom,
		ray.BottomToTop: ray.RightToLeft,
		ray.TopToBottom: ray.RightToLeft,
	}
	turn180 = [...]ray.Direction{
		ray.LeftToRight: ray.RightToLeft,
		ray.RightToLeft: ray.LeftToRight,
		ray.BottomToTop: ray.TopToBottom,
		ray.TopToBottom: ray.BottomToTop,
	}
)

// step returns the one-cell (row, column) offset of travelling in d.
func step(d ray.Direction) (dRow, dCol int) {
	switch d {
	case ray.LeftToRight:
		return 0, 1
	case ray.RightToLeft:
		return 0, -1
	case ray.BottomToTop:
		return -1, 0
	default:
		return 1, 0
	}
}

// Deflect applies the collision rule of m to r, which must already sit on
// m's cell. On Deflected, r is turned and stepped one cell out of the mirror.
// On Hit or Evaporated, r is left untouched and a finite barrier loses one
// unit of strength.
func (m *Mirror) Deflect(r *ray.Ray) (Outcome, error) {
	if !r.Direction.Valid() {
		return Hit, fmt.Errorf("%w: ray direction %s at (%d,%d)", ErrInvalidDeflectionState, r.Direction, m.Row, m.Column)
	}

	var table *[4]ray.Direction
	switch m.Angle {
	case AngleBarrier:
		return m.absorb()
	case AngleQuarterNeg:
		table = &turnNeg90
	case AngleQuarterPos:
		table = &turnPos90
	case AngleHalfNeg, AngleHalfPos:
		table = &turn180
	default:
		return Hit, fmt.Errorf("%w: angle %d at (%d,%d)", ErrInvalidDeflectionState, m.Angle, m.Row, m.Column)
	}

	r.Direction = table[r.Direction]
	dr, dc := step(r.Direction)
	r.Row += dr
	r.Column += dc

	return Deflected, nil
}

// absorb handles a barrier collision.
func (m *Mirror) absorb() (Outcome, error) {
	switch {
	case m.Strength < 0:
		return Hit, fmt.Errorf("%w: strength %d at (%d,%d)", ErrInvalidDeflectionState, m.Strength, m.Row, m.Column)
	case m.Strength == 0:
		return Hit, nil
	}
	m.Strength--
	if m.Strength == 0 {
		return Evaporated, nil
	}

	return Hit, nil
}
