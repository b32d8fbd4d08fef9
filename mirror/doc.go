// Package mirror models a single reflective cell of a raybox grid and the
// collision rule that decides what happens to a ray entering it.
//
// Kinds:
//
//   - Barrier (Angle == 0): absorbs the ray. Strength 0 means permanent;
//     Strength S > 0 absorbs S rays, the S-th evaporates the mirror.
//   - Deflector (Angle ∈ {-90, 90, -180, 180}): redirects the ray and is
//     never consumed.
//
// Deflection table (the ray is first moved onto the mirror cell, then
// turned, then stepped one cell in its new direction):
//
//	angle   incoming              outgoing
//	-90     LeftToRight/RightToLeft  BottomToTop
//	-90     TopToBottom/BottomToTop  LeftToRight
//	+90     LeftToRight/RightToLeft  TopToBottom
//	+90     TopToBottom/BottomToTop  RightToLeft
//	±180    any                      reversed
//
// Any other angle is an invariant violation and yields ErrInvalidDeflectionState.
package mirror
