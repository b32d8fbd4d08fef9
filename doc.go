// Package raybox simulates light rays crossing a square board of mirrors.
//
// What is raybox?
//
//	A small, deterministic engine that answers one question per ray:
//	"where does this ray leave the board, or what absorbs it?"
//		• Barriers absorb rays; finite ones evaporate after their last hit
//		• Every placed mirror derives ±90° corner deflectors on its diagonals
//		• Deflector angles accumulate when corners are shared
//		• A sorted row/column index finds the next mirror in O(log n)
//		• Reflection cycles are cut off with a step limit, never looped forever
//
// Under the hood, everything is organized under these subpackages:
//
//	ray/        — Direction, Ray and entry-token parsing ("C1+", "R3-")
//	mirror/     — Mirror record and the collision (deflection) rule
//	grid/       — board arena, placement, row/column index, traversal
//	input/      — text/JSON configuration and ray-file adapters
//	cmd/raybox/ — command-line front end
//
// Quick ASCII example (3×3, barrier X at the centre, derived deflectors):
//
//	-90 . -90
//	 .  X  .
//	+90 . +90
//
// A ray fired down the middle column ("C2+") is absorbed at {2,2}.
//
//	go install github.com/katalvlaran/raybox/cmd/raybox@latest
package raybox
