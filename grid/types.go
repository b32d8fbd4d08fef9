package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/raybox/mirror"
	"github.com/katalvlaran/raybox/ray"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a side length below 1.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrInvalidCoordinate indicates a cell outside [0,N)×[0,N).
	ErrInvalidCoordinate = errors.New("grid: coordinate out of range")
	// ErrInvalidStrength indicates a negative mirror strength.
	ErrInvalidStrength = errors.New("grid: strength must be non-negative")
	// ErrDuplicateMirror indicates a second explicit placement on one cell.
	ErrDuplicateMirror = errors.New("grid: duplicate mirror")
	// ErrIndexFrozen indicates a placement after BuildIndex.
	ErrIndexFrozen = errors.New("grid: index already built, placement closed")
	// ErrIndexNotBuilt indicates a traversal before BuildIndex.
	ErrIndexNotBuilt = errors.New("grid: index not built")
	// ErrCycleDetected indicates a traversal that exceeded its step limit.
	ErrCycleDetected = errors.New("grid: reflection cycle detected")
)

// Termination tells how a traversal ended.
type Termination int

const (
	// Exited means the ray left the board.
	Exited Termination = iota
	// Hit means a barrier absorbed the ray and remains in place.
	Hit
	// Evaporated means a barrier absorbed the ray and was removed.
	Evaporated
)

// String returns the Termination name.
func (t Termination) String() string {
	switch t {
	case Exited:
		return "Exited"
	case Hit:
		return "Hit"
	case Evaporated:
		return "Evaporated"
	}
	return fmt.Sprintf("Termination(%d)", int(t))
}

// Observation is the single terminal report of a traversal.
// Row and Column use the reporting convention described in the package doc.
type Observation struct {
	Row         int
	Column      int
	Termination Termination
	// Deflections counts the deflectors passed on the way.
	Deflections int
}

// String formats the observation as "{row,col}".
func (o Observation) String() string {
	return fmt.Sprintf("{%d,%d}", o.Row, o.Column)
}

// Option configures a Grid at construction.
type Option func(g *Grid)

// WithMaxSteps caps the number of deflections a traversal may perform before
// it fails with ErrCycleDetected. n <= 0 keeps the default of 4·mirrors.
func WithMaxSteps(n int) Option {
	return func(g *Grid) {
		if n > 0 {
			g.maxSteps = n
		}
	}
}

// WithLogger sets the logger used for evaporation and cycle events.
// Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOnDeflect installs a hook invoked after every deflection with the
// updated ray and the deflecting mirror. The hook runs under the Grid lock
// and must not call back into the Grid.
func WithOnDeflect(fn func(r ray.Ray, m mirror.Mirror)) Option {
	return func(g *Grid) { g.onDeflect = fn }
}

// Grid is an N×N board of mirrors.
//
// cells is the only owner of mirror records; rows and cols hold integer keys
// into it and are populated by BuildIndex.
type Grid struct {
	mu sync.RWMutex

	size     int
	cells    []mirror.Mirror
	occupied []bool
	count    int

	indexed bool
	rows    [][]int // rows[r]: ascending columns of occupied cells in row r
	cols    [][]int // cols[c]: ascending rows of occupied cells in column c

	maxSteps  int
	logger    *slog.Logger
	onDeflect func(r ray.Ray, m mirror.Mirror)
}
