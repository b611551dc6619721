package label

import "errors"

// MaxShapes is the largest number of regions a Map can hold. Labels are
// written to 8-bit graylevels downstream, so label values above 255 are not
// representable.
const MaxShapes = 255

// Sentinel errors for labeling operations.
var (
	// ErrTooManyShapes indicates the input contains more than MaxShapes
	// disjoint regions.
	ErrTooManyShapes = errors.New("label: too many shapes (more than 255 disjoint regions)")
	// ErrGridSpacing indicates a grid spacing outside the valid 1..99
	// percent range.
	ErrGridSpacing = errors.New("label: grid spacing must be between 1 and 99 percent")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// neighborOffsets returns the (dx, dy) pairs for the connectivity.
func (c Connectivity) neighborOffsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Options contains tunable parameters for region discovery.
type Options struct {
	// GridSpacing selects grid-assisted search when nonzero: sample points
	// are spaced GridSpacing percent of the width horizontally and
	// GridSpacing percent of the height vertically. Valid range 1..99.
	// Zero selects exhaustive search.
	GridSpacing int

	// Conn chooses 4- or 8-directional region connectivity.
	Conn Connectivity
}

// Map is a grid of region labels with the same dimensions as the source
// bitmap. Label 0 is background; labels 1..N identify discovered regions in
// discovery order. A Map is built by Regions and read-only afterwards.
type Map struct {
	// W is the map width in pixels.
	W int

	// H is the map height in pixels.
	H int

	// Labels holds label values row-major; the label at (x, y) is
	// Labels[y*W+x].
	Labels []int
}

// NewMap creates an all-background label map of the given dimensions.
func NewMap(w, h int) *Map {
	return &Map{
		W:      w,
		H:      h,
		Labels: make([]int, w*h),
	}
}

// At returns the label at (x, y). No bounds checking is performed.
func (m *Map) At(x, y int) int {
	return m.Labels[y*m.W+x]
}

// Bounds returns the bounding box of the pixels carrying the given label as
// minX, minY, maxX, maxY (all inclusive). ok is false if no pixel carries
// the label.
func (m *Map) Bounds(label int) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = m.W, m.H
	maxX, maxY = -1, -1
	for y := 0; y < m.H; y++ {
		row := m.Labels[y*m.W : (y+1)*m.W]
		for x, v := range row {
			if v != label {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return minX, minY, maxX, maxY, maxX >= 0
}
