package label

import "github.com/darrynten/imagick-scripts/internal/raster"

// Regions discovers every isolated white region in a bitmap and assigns each
// a unique label.
//
// Parameters:
//   - bm: Source two-valued bitmap. It is not mutated; discovery works on an
//     internal scratch copy.
//   - opts: Search strategy and connectivity. See Options.
//
// Returns:
//   - *Map: Label map of the same dimensions; 0 = background, 1..count =
//     regions in discovery order.
//   - int: Number of regions discovered. Zero (with a valid all-background
//     map) if the bitmap contains no white pixels; this is not an error.
//   - error: ErrTooManyShapes if more than MaxShapes regions exist, or
//     ErrGridSpacing for an out-of-range GridSpacing.
//
// # Search Strategies
//
// Exhaustive mode rescans the whole scratch bitmap in row-major order for
// any remaining white pixel after each fill; running out of white pixels is
// the only termination condition. Grid-assisted mode probes only sample
// points spaced GridSpacing percent apart and may miss regions that no
// sample point lands on.
func Regions(bm *raster.Bitmap, opts Options) (*Map, int, error) {
	if opts.GridSpacing != 0 && (opts.GridSpacing < 1 || opts.GridSpacing > 99) {
		return nil, 0, ErrGridSpacing
	}

	scratch := bm.Clone()
	m := NewMap(bm.W, bm.H)

	if opts.GridSpacing > 0 {
		count, err := gridSearch(scratch, m, opts)
		return m, count, err
	}
	count, err := exhaustiveSearch(scratch, m, opts)
	return m, count, err
}

// exhaustiveSearch labels regions by repeated full-bitmap scanning.
//
// Loop invariant: before each iteration every previously discovered region
// is fully black in the scratch bitmap and fully labeled in the output map.
func exhaustiveSearch(scratch *raster.Bitmap, m *Map, opts Options) (int, error) {
	count := 0
	for {
		x, y, ok := firstWhite(scratch)
		if !ok {
			return count, nil
		}
		if count >= MaxShapes {
			return count, ErrTooManyShapes
		}
		count++
		fill(scratch, m, x, y, count, opts.Conn)
	}
}

// gridSearch labels regions seeded from a regular grid of sample points.
//
// Sample points are spaced GridSpacing percent of the width horizontally and
// GridSpacing percent of the height vertically, starting one step in so the
// border margin is excluded. Each sample point still white in the scratch
// bitmap seeds a fill exactly as in exhaustive mode.
func gridSearch(scratch *raster.Bitmap, m *Map, opts Options) (int, error) {
	stepX := scratch.W * opts.GridSpacing / 100
	if stepX < 1 {
		stepX = 1
	}
	stepY := scratch.H * opts.GridSpacing / 100
	if stepY < 1 {
		stepY = 1
	}

	count := 0
	for y := stepY; y < scratch.H; y += stepY {
		for x := stepX; x < scratch.W; x += stepX {
			if !scratch.White(x, y) {
				continue
			}
			if count >= MaxShapes {
				return count, ErrTooManyShapes
			}
			count++
			fill(scratch, m, x, y, count, opts.Conn)
		}
	}
	return count, nil
}

// firstWhite returns the row-major-first white pixel, if any.
func firstWhite(bm *raster.Bitmap) (int, int, bool) {
	for i, v := range bm.Pix {
		if v == 255 {
			return i % bm.W, i / bm.W, true
		}
	}
	return 0, 0, false
}
