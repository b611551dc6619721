package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/darrynten/imagick-scripts/internal/label"
)

// trim crops a per-label artifact to its region's bounding box plus the
// configured margin.
//
// The margin is padded with the background color, so a region flush against
// the frame edge still gets its full border. When virtual-canvas retention
// is enabled the artifact records its offset within the original frame;
// the offset of the top-left margin corner can be negative at frame edges.
func trim(a Artifact, m *label.Map, lbl int, cfg Config) Artifact {
	minX, minY, maxX, maxY, ok := m.Bounds(lbl)
	if !ok {
		// Nothing carries this label; leave the full frame untouched.
		return a
	}

	margin := cfg.margin()
	cropped := imaging.Crop(a.Image, image.Rect(minX, minY, maxX+1, maxY+1))

	padded := imaging.New(cropped.Rect.Dx()+2*margin, cropped.Rect.Dy()+2*margin, cfg.background())
	padded = imaging.Paste(padded, cropped, image.Pt(margin, margin))

	out := Artifact{
		Image:  padded,
		Label:  lbl,
		Width:  padded.Rect.Dx(),
		Height: padded.Rect.Dy(),
	}
	if cfg.KeepCanvas {
		out.OffsetX = minX - margin
		out.OffsetY = minY - margin
	}
	return out
}

// formatGeometry renders canvas geometry in the WIDTHxHEIGHT+XOFF+YOFF
// convention. Negative offsets keep their sign: 20x20+-2+3.
func formatGeometry(w, h, x, y int) string {
	return fmt.Sprintf("%dx%d+%d+%d", w, h, x, y)
}
