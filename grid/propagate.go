package grid

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/raybox/mirror"
	"github.com/katalvlaran/raybox/ray"
)

// Propagate drives r through the board and returns its terminal Observation.
//
// Behavior (one iteration per collision):
//  1. Find the next mirror at or ahead of the ray; if none, the ray exits.
//  2. Move the ray onto the mirror cell and apply mirror.Deflect.
//  3. Deflected: continue with the updated ray.
//     Hit: report the mirror cell.
//     Evaporated: report the mirror cell, then remove it from the board.
//
// A traversal that needs more deflections than the step limit (default
// 4·mirrors, see WithMaxSteps) fails with ErrCycleDetected. A mirror with
// no collision rule fails with mirror.ErrInvalidDeflectionState.
func (g *Grid) Propagate(r ray.Ray) (Observation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.indexed {
		return Observation{}, ErrIndexNotBuilt
	}
	if !g.InBounds(r.Row, r.Column) {
		return Observation{}, fmt.Errorf("%w: ray start (%d,%d)", ErrInvalidCoordinate, r.Row, r.Column)
	}
	if !r.Direction.Valid() {
		return Observation{}, fmt.Errorf("%w: ray direction %s", mirror.ErrInvalidDeflectionState, r.Direction)
	}

	start := r
	limit := g.stepLimit()
	deflections := 0
	for step := 0; step <= limit; step++ {
		i, ok := g.nextAhead(r)
		if !ok {
			obs := g.exit(r)
			obs.Deflections = deflections
			return obs, nil
		}

		m := &g.cells[i]
		r.Row, r.Column = m.Row, m.Column
		out, err := m.Deflect(&r)
		if err != nil {
			return Observation{}, fmt.Errorf("grid: ray %s: %w", start, err)
		}

		switch out {
		case mirror.Deflected:
			deflections++
			if g.onDeflect != nil {
				g.onDeflect(r, *m)
			}
			continue
		case mirror.Hit:
			return Observation{Row: m.Row + 1, Column: m.Column + 1, Termination: Hit, Deflections: deflections}, nil
		}

		obs := Observation{Row: m.Row + 1, Column: m.Column + 1, Termination: Evaporated, Deflections: deflections}
		g.logger.Debug("mirror evaporated", slog.Int("row", obs.Row), slog.Int("column", obs.Column))
		g.remove(m.Row, m.Column)

		return obs, nil
	}

	g.logger.Warn("traversal aborted",
		slog.String("ray", start.String()),
		slog.Int("limit", limit),
	)

	return Observation{}, fmt.Errorf("%w: ray %s exceeded %d deflections", ErrCycleDetected, start, limit)
}

// stepLimit returns the collision budget of one traversal. Without a cycle a
// ray enters each mirror at most once per direction.
func (g *Grid) stepLimit() int {
	if g.maxSteps > 0 {
		return g.maxSteps
	}

	return 4 * g.count
}

// exit reports the boundary a ray leaves through.
func (g *Grid) exit(r ray.Ray) Observation {
	obs := Observation{Termination: Exited}
	switch r.Direction {
	case ray.LeftToRight:
		obs.Row, obs.Column = r.Row+1, g.size
	case ray.RightToLeft:
		obs.Row, obs.Column = r.Row+1, 0
	case ray.TopToBottom:
		obs.Row, obs.Column = g.size, r.Column+1
	case ray.BottomToTop:
		obs.Row, obs.Column = 0, r.Column+1
	}

	return obs
}
