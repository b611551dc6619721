package label

import "github.com/darrynten/imagick-scripts/internal/raster"

// point is a pixel coordinate on the flood-fill stack.
type point struct {
	x, y int
}

// fill flood-fills the white region containing the seed.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large regions. Every pixel reachable from the seed through same-valued
// (white) neighbors is recolored to black in the scratch bitmap, so the
// search never rediscovers the region, and to the label value in the output
// map. The fill stops at intensity boundaries.
//
// Returns the number of pixels filled; zero if the seed is not white.
func fill(scratch *raster.Bitmap, m *Map, seedX, seedY, label int, conn Connectivity) int {
	if !scratch.White(seedX, seedY) {
		return 0
	}

	offsets := conn.neighborOffsets()
	filled := 0
	stack := []point{{seedX, seedY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= scratch.W || p.y < 0 || p.y >= scratch.H {
			continue
		}
		if !scratch.White(p.x, p.y) {
			continue
		}

		scratch.Set(p.x, p.y, 0)
		m.Labels[p.y*m.W+p.x] = label
		filled++

		for _, d := range offsets {
			stack = append(stack, point{p.x + d[0], p.y + d[1]})
		}
	}

	return filled
}
