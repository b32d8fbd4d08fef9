package ray

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for ray construction.
var (
	// ErrInvalidEdge indicates an entry edge other than EdgeColumn or EdgeRow.
	ErrInvalidEdge = errors.New("ray: invalid entry edge")

	// ErrInvalidDirectionToken indicates a malformed ray-injection token.
	ErrInvalidDirectionToken = errors.New("ray: invalid direction token")

	// ErrInvalidCoordinate indicates an entry offset outside the grid.
	ErrInvalidCoordinate = errors.New("ray: entry offset outside grid")
)

// Direction is the axis-aligned heading of a Ray.
type Direction int

const (
	// LeftToRight travels along a row towards increasing columns.
	LeftToRight Direction = iota
	// RightToLeft travels along a row towards decreasing columns.
	RightToLeft
	// BottomToTop travels along a column towards decreasing rows.
	BottomToTop
	// TopToBottom travels along a column towards increasing rows.
	TopToBottom
)

// String returns the Direction name.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case BottomToTop:
		return "BottomToTop"
	case TopToBottom:
		return "TopToBottom"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= LeftToRight && d <= TopToBottom
}

// Horizontal reports whether d travels along a row.
func (d Direction) Horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// Forward reports whether d travels towards increasing indices.
func (d Direction) Forward() bool {
	return d == LeftToRight || d == TopToBottom
}

// Ray is the transient state of a single traversal.
// Row and Column are 0-indexed and may step one cell outside the grid
// right after a deflection near the border.
type Ray struct {
	Row       int
	Column    int
	Direction Direction
}

// String formats the ray as "(row,col) Direction" using 0-indexed coordinates.
func (r Ray) String() string {
	return fmt.Sprintf("(%d,%d) %s", r.Row, r.Column, r.Direction)
}

// Edge selects the family of entry points.
type Edge byte

const (
	// EdgeColumn anchors the ray on a column; it travels vertically.
	EdgeColumn Edge = 'C'
	// EdgeRow anchors the ray on a row; it travels horizontally.
	EdgeRow Edge = 'R'
)

// Enter builds a Ray entering a size×size grid.
// offset is 1-indexed along the chosen edge; positive selects the '+' sign
// (TopToBottom or LeftToRight), otherwise the ray starts at the far edge
// heading back (BottomToTop or RightToLeft).
func Enter(edge Edge, offset int, positive bool, size int) (Ray, error) {
	if offset < 1 || offset > size {
		return Ray{}, fmt.Errorf("%w: offset %d not in [1,%d]", ErrInvalidCoordinate, offset, size)
	}
	switch edge {
	case EdgeColumn:
		if positive {
			return Ray{Row: 0, Column: offset - 1, Direction: TopToBottom}, nil
		}
		return Ray{Row: size - 1, Column: offset - 1, Direction: BottomToTop}, nil
	case EdgeRow:
		if positive {
			return Ray{Row: offset - 1, Column: 0, Direction: LeftToRight}, nil
		}
		return Ray{Row: offset - 1, Column: size - 1, Direction: RightToLeft}, nil
	}
	return Ray{}, fmt.Errorf("%w: %q", ErrInvalidEdge, rune(edge))
}

// Parse decodes a token of the form <edge><offset><sign>, e.g. "C1+" or "R12-".
func Parse(token string, size int) (Ray, error) {
	if len(token) < 3 {
		return Ray{}, fmt.Errorf("%w: %q", ErrInvalidDirectionToken, token)
	}
	edge := Edge(token[0])
	if edge != EdgeColumn && edge != EdgeRow {
		return Ray{}, fmt.Errorf("%w: %q", ErrInvalidEdge, token)
	}
	var positive bool
	switch token[len(token)-1] {
	case '+':
		positive = true
	case '-':
		positive = false
	default:
		return Ray{}, fmt.Errorf("%w: %q", ErrInvalidDirectionToken, token)
	}
	offset, err := strconv.Atoi(token[1 : len(token)-1])
	if err != nil {
		return Ray{}, fmt.Errorf("%w: %q", ErrInvalidDirectionToken, token)
	}

	return Enter(edge, offset, positive, size)
}
