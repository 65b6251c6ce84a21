package wheel

import "github.com/philipparndt/gowheel/pkg/geometry"

// NoSlot is returned by Locate when a point falls in no sector
const NoSlot = -1

// Locate maps a point, expressed relative to the wheel's center, to
// the slot whose angular sector contains it.
//
// The test is purely angular: only the direction of the point from the
// origin matters, never its distance. A point in sector i lies not
// clockwise of boundary i and clockwise of boundary i+1 (wrapping).
//
// With a single boundary there is no second direction to close the
// test, so a lone segment owns the whole circle and every non-origin
// point resolves to slot 0. The origin itself has no direction and
// resolves to NoSlot. A point exactly on a boundary direction ties to
// the sector ending there, except for half-circle sectors where both
// sign tests degenerate and the result is NoSlot.
func Locate(point geometry.Vector2, boundaries []geometry.Vector2) int {
	switch len(boundaries) {
	case 0:
		return NoSlot
	case 1:
		if point == (geometry.Vector2{}) {
			return NoSlot
		}
		return 0
	}

	for i, start := range boundaries {
		end := boundaries[(i+1)%len(boundaries)]
		if !start.Clockwise(point) && end.Clockwise(point) {
			return i
		}
	}
	return NoSlot
}
